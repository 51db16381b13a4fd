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
)

var fillCases = []Geometry{
	{
		Name:      "triangle",
		Path:      triangle(10, 50, 32, 10, 54, 50),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Area:      880,
		Tolerance: 0.01,
	},
	{
		Name:      "star",
		Path:      fivePointStar(32, 32, 25),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Area:      701.6062134056021,
		Tolerance: 2, // pixels on the inner corners mix winding 1 and 2
	},
	{
		Name:      "rectangle",
		Path:      rectangle(10, 10, 54, 54),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Area:      44 * 44,
		Tolerance: 0.01,
	},
	{
		Name: "rectangle_open",
		Path: (&path.Data{}).
			MoveTo(pt(10, 10)).
			LineTo(pt(54, 10)).
			LineTo(pt(54, 54)).
			LineTo(pt(10, 54)),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Area:      44 * 44,
		Tolerance: 0.01,
	},
	{
		Name:      "overlap_same_direction",
		Path:      overlapping(false),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Area:      700,
		Tolerance: 0.01,
	},
	{
		Name:      "overlap_opposite_direction",
		Path:      overlapping(true),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Area:      600,
		Tolerance: 0.01,
	},
	{
		Name:      "circle",
		Path:      circle(32, 32, 20),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Flatness:  0.01,
		Area:      math.Pi * 20 * 20,
		Tolerance: 12,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// overlapping builds two 20×20 squares which share a 10×10 corner.
// If reverse is set, the second square has the opposite orientation and
// the shared corner has winding number zero.
func overlapping(reverse bool) *path.Data {
	p := rectangle(10, 10, 30, 30)
	p.MoveTo(pt(20, 20))
	if reverse {
		p.LineTo(pt(20, 40)).LineTo(pt(40, 40)).LineTo(pt(40, 20))
	} else {
		p.LineTo(pt(40, 20)).LineTo(pt(40, 40)).LineTo(pt(20, 40))
	}
	return p.Close()
}

// circle approximates a circle by four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * 0.5522847498307936
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}
