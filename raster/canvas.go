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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas is an RGBA pixel buffer which paths can be painted onto.
// Device space has its origin in the top-left corner, with y pointing down.
type Canvas struct {
	img *image.RGBA
	r   *Rasteriser
}

// NewCanvas allocates a width×height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		img: img,
		r:   NewRasteriser(clip),
	}
}

// Fill paints the interior of p, using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	c.r.FillNonZero(p, c.painter(col))
}

// Stroke paints the outline of p with the given line width and butt caps.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	c.r.Width = width
	c.r.Stroke(p, c.painter(col))
}

// painter returns an EmitFunc which composites col over the canvas,
// using the coverage as an additional alpha factor.
func (c *Canvas) painter(col color.Color) EmitFunc {
	sr, sg, sb, sa := col.RGBA()
	src := [4]float32{
		float32(sr) / 257,
		float32(sg) / 257,
		float32(sb) / 257,
		float32(sa) / 257,
	}

	return func(y, xMin int, coverage []float32) {
		pix := c.img.Pix[c.img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			px := pix[4*i : 4*i+4 : 4*i+4]
			keep := 1 - cov*src[3]/255
			for k := range 4 {
				v := src[k]*cov + float32(px[k])*keep
				px[k] = uint8(min(max(v+0.5, 0), 255))
			}
		}
	}
}

// Image returns the pixel buffer. The canvas keeps ownership.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas contents as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	enc := &png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
