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


package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []Geometry{
	{
		Name:      "line_butt",
		Path:      horizontalLine(10, 32, 54),
		Width:     64,
		Height:    64,
		Op:        Stroke{Width: 4, Cap: graphics.LineCapButt},
		Area:      44 * 4,
		Tolerance: 0.01,
	},
	{
		Name:      "line_round",
		Path:      horizontalLine(10, 32, 54),
		Width:     64,
		Height:    64,
		Op:        Stroke{Width: 4, Cap: graphics.LineCapRound},
		Flatness:  0.001,
		Area:      44*4 + math.Pi*2*2,
		Tolerance: 0.1,
	},
	{
		Name:      "line_square",
		Path:      horizontalLine(10, 32, 54),
		Width:     64,
		Height:    64,
		Op:        Stroke{Width: 4, Cap: graphics.LineCapSquare},
		Area:      48 * 4,
		Tolerance: 0.01,
	},
	{
		Name:      "diagonal",
		Path:      (&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(50, 50)),
		Width:     64,
		Height:    64,
		Op:        Stroke{Width: 2, Cap: graphics.LineCapButt},
		Area:      2 * 40 * math.Sqrt2,
		Tolerance: 0.01,
	},
	{
		// Segments are outlined without joins: neighbouring outlines
		// overlap in a unit square and leave a notch at each outer corner.
		Name:      "closed_square",
		Path:      rectangle(10, 10, 50, 50),
		Width:     64,
		Height:    64,
		Op:        Stroke{Width: 2, Cap: graphics.LineCapButt},
		Area:      4*80 - 4,
		Tolerance: 0.01,
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y)).LineTo(pt(x2, y))
}
