// seehuhn.de/go/pattern - deterministic seed patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pattern

import (
	"crypto/sha256"
	"encoding/hex"
	"image/color"
)

// DigestSize is the length of a Digest in bytes.
const DigestSize = sha256.Size

// Digest is the SHA-256 hash of a seed. All visual parameters of a pattern
// are read from it. Indices wrap around, see [Digest.At].
type Digest [DigestSize]byte

// DeriveDigest hashes the UTF-8 bytes of seed.
func DeriveDigest(seed string) Digest {
	return sha256.Sum256([]byte(seed))
}

// At returns the byte at position i modulo DigestSize.
// The index must be non-negative.
func (d Digest) At(i int) byte {
	return d[i%DigestSize]
}

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// colorAt returns the opaque colour made of the three digest bytes starting
// at position i.
func (d Digest) colorAt(i int) color.RGBA {
	return color.RGBA{R: d.At(i), G: d.At(i + 1), B: d.At(i + 2), A: 0xff}
}
