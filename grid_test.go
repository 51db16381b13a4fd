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

	"seehuhn.de/go/geom/vec"
)

func TestCells(t *testing.T) {
	var all []vec.Vec2
	for c := range Cells(CanvasWidth, CanvasHeight, GridSpacing, 2*MaxShapes) {
		all = append(all, c)
	}
	if len(all) != 32*32 {
		t.Fatalf("got %d cells, want %d", len(all), 32*32)
	}

	// row-major order, coordinates built by repeated addition
	var ys []float64
	for y := 0.0; y < CanvasHeight; y += GridSpacing {
		ys = append(ys, y)
	}
	xs := ys
	for i, c := range all {
		want := vec.Vec2{X: xs[i%32], Y: ys[i/32]}
		if c != want {
			t.Fatalf("cell %d: got %v, want %v", i, c, want)
		}
	}
}

func TestCellsLimit(t *testing.T) {
	n := 0
	var last vec.Vec2
	for c := range Cells(CanvasWidth, CanvasHeight, GridSpacing, MaxShapes) {
		n++
		last = c
	}
	if n != MaxShapes {
		t.Fatalf("got %d cells, want %d", n, MaxShapes)
	}

	// cell 999 is in row 31, column 7
	x, y := 0.0, 0.0
	for range 7 {
		x += GridSpacing
	}
	for range 31 {
		y += GridSpacing
	}
	if last.X != x || last.Y != y {
		t.Errorf("last cell: got %v, want (%g, %g)", last, x, y)
	}
}

func TestCellsBreak(t *testing.T) {
	n := 0
	for range Cells(CanvasWidth, CanvasHeight, GridSpacing, MaxShapes) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("got %d iterations, want 5", n)
	}
}

func TestCellsEmpty(t *testing.T) {
	for c := range Cells(0, 100, 10, 100) {
		t.Errorf("unexpected cell %v", c)
	}
	for c := range Cells(100, 100, 10, 0) {
		t.Errorf("unexpected cell %v", c)
	}
}

func TestGridSpacing(t *testing.T) {
	const want = 15.811388300841896
	if GridSpacing != want {
		t.Errorf("got %.17g, want %.17g", GridSpacing, want)
	}
}
