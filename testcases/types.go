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


// Package testcases holds known-answer vectors shared by the package tests
// and by the export command, which writes them to JSON for checking other
// implementations.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Seed is the expected pattern for one seed string.
type Seed struct {
	Name         string     // lowercase a-z and _ only
	Seed         string     // the input text
	Digest       string     // SHA-256 of Seed, lowercase hex
	Background   color.RGBA // background colour
	Overlay      string     // "diagonal" or "grid"
	OverlayColor color.RGBA // colour of all overlay lines
	First, Last  Shape      // the first and the last generated shape

	// Counts gives the number of shapes of each kind.
	Counts map[string]int
}

// Shape describes a generated shape by its centre and extent.
// For lines, Size is the horizontal (and vertical) extent.
type Shape struct {
	Kind  string // "circle", "rectangle" or "line"
	X, Y  float64
	Size  float64
	Color color.RGBA
}

// Geometry defines a single rasteriser test.
type Geometry struct {
	Name     string     // lowercase a-z and _ only
	Path     *path.Data // the geometry to render
	Width    int        // canvas width in pixels
	Height   int        // canvas height in pixels
	Op       Operation  // fill or stroke
	Flatness float64    // curve tolerance, zero for the default

	// Area is the expected sum of all pixel coverage values.
	Area      float64
	Tolerance float64
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill with the nonzero winding rule.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width float64               // line width (>0)
	Cap   graphics.LineCapStyle // LineCapButt, LineCapRound, LineCapSquare
}

func (Stroke) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
