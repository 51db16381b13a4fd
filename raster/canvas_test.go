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
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestCanvasBackground(t *testing.T) {
	bg := color.RGBA{R: 172, G: 242, B: 205, A: 255}
	c := NewCanvas(8, 4, bg)

	img := c.Image()
	if got := img.Bounds().Dx(); got != 8 {
		t.Fatalf("width: got %d, want 8", got)
	}
	for y := range 4 {
		for x := range 8 {
			if got := img.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestCanvasFill(t *testing.T) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	fg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	c := NewCanvas(8, 8, bg)

	// covers pixels 2..4 fully and half of column 5
	box := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 5.5, Y: 2}).
		LineTo(vec.Vec2{X: 5.5, Y: 5}).
		LineTo(vec.Vec2{X: 2, Y: 5}).
		Close()
	c.Fill(box, fg)

	img := c.Image()
	if got := img.RGBAAt(3, 3); got != fg {
		t.Errorf("inside: got %v, want %v", got, fg)
	}
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("outside: got %v, want %v", got, bg)
	}

	half := img.RGBAAt(5, 3)
	want := color.RGBA{R: 133, G: 138, B: 143, A: 255}
	if half != want {
		t.Errorf("edge pixel: got %v, want %v", half, want)
	}
}

func TestCanvasStroke(t *testing.T) {
	bg := color.RGBA{A: 255}
	fg := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	c := NewCanvas(10, 10, bg)

	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 5}).
		LineTo(vec.Vec2{X: 9, Y: 5})
	c.Stroke(line, 2, fg)

	img := c.Image()
	for x := 1; x < 9; x++ {
		for _, y := range []int{4, 5} {
			if got := img.RGBAAt(x, y); got != fg {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, fg)
			}
		}
	}
	if got := img.RGBAAt(5, 2); got != bg {
		t.Errorf("pixel (5,2): got %v, want %v", got, bg)
	}
}

func TestEncodePNG(t *testing.T) {
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c := NewCanvas(5, 5, bg)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if got := color.RGBAModel.Convert(img.At(2, 2)); got != bg {
		t.Errorf("decoded pixel: got %v, want %v", got, bg)
	}
}
