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
	"testing"

	"seehuhn.de/go/pattern/testcases"
)

func TestDeriveDigest(t *testing.T) {
	for _, tc := range testcases.Seeds {
		t.Run(tc.Name, func(t *testing.T) {
			if got := DeriveDigest(tc.Seed).String(); got != tc.Digest {
				t.Errorf("got %s, want %s", got, tc.Digest)
			}
		})
	}

	// the empty seed is valid
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := DeriveDigest("").String(); got != empty {
		t.Errorf("empty seed: got %s, want %s", got, empty)
	}
}

func TestDigestAt(t *testing.T) {
	d := DeriveDigest("hello")
	for i := range 3 * DigestSize {
		if got, want := d.At(i), d[i%DigestSize]; got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	if d.At(DigestSize) != 0x2c {
		t.Errorf("At(%d) = %#x, want 0x2c", DigestSize, d.At(DigestSize))
	}
}

func TestColorAt(t *testing.T) {
	d := DeriveDigest("hello")

	// position 31 wraps to the start of the digest
	c := d.colorAt(31)
	if c.R != d[31] || c.G != d[0] || c.B != d[1] || c.A != 0xff {
		t.Errorf("colorAt(31) = %v", c)
	}
}
