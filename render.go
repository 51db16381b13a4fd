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

//go:generate go run ./testcases/export

import (
	"bytes"
	"io"

	"seehuhn.de/go/pattern/raster"
	"seehuhn.de/go/pattern/svgdoc"
)

// Format selects the serialization of a rendered pattern.
type Format int

const (
	// FormatPNG rasterises the pattern and encodes it as PNG.
	FormatPNG Format = iota

	// FormatSVG writes the pattern as an SVG document.
	FormatSVG
)

// FormatFromExt maps a file name extension (without the dot) to a Format.
// Only "svg" selects vector output; everything else is rasterised.
func FormatFromExt(ext string) Format {
	if ext == "svg" {
		return FormatSVG
	}
	return FormatPNG
}

func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	default:
		return "png"
	}
}

// Render writes the design to w in the given format.
func Render(w io.Writer, d *Design, f Format) error {
	switch f {
	case FormatSVG:
		doc := svgdoc.New(w, CanvasWidth, CanvasHeight, d.Background)
		d.Draw(doc)
		return doc.Close()
	default:
		c := raster.NewCanvas(CanvasWidth, CanvasHeight, d.Background)
		d.Draw(c)
		return c.EncodePNG(w)
	}
}

// RenderSeed derives the design for seed and returns the encoded image.
func RenderSeed(seed string, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, NewDesign(DeriveDigest(seed)), f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
