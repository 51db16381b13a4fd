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
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Cells returns the candidate shape positions of a width×height canvas in
// row-major order, stopping after limit positions.
//
// Both coordinates start at 0 and advance by repeatedly adding spacing,
// while they stay below width (resp. height). The accumulated rounding of
// the repeated additions is part of the result.
func Cells(width, height, spacing float64, limit int) iter.Seq[vec.Vec2] {
	return func(yield func(vec.Vec2) bool) {
		n := 0
		for y := 0.0; y < height; y += spacing {
			for x := 0.0; x < width; x += spacing {
				if n >= limit || !yield(vec.Vec2{X: x, Y: y}) {
					return
				}
				n++
			}
		}
	}
}
