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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of the path using Width and Cap.
//
// Every flattened segment is outlined separately and the outlines are
// filled together with the nonzero rule, so overlaps are painted once.
// Corners between consecutive segments get no join geometry.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
	r.walk(p, false, r.outlineSegment)

	r.beginEdges()
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.sweep(emit)
}

// outlineSegment appends the stroke polygon of the segment a→b.
// The polygon runs along the +N side from a to b, around the end cap, back
// along the -N side and around the start cap.
func (r *Rasteriser) outlineSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	d := r.Width / 2

	start := len(r.outline)
	r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	r.addCap(b, t, d)
	r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
	r.addCap(a, t.Mul(-1), d)
	r.outlineOffsets = append(r.outlineOffsets, start)
}

// addCap adds the cap at the end point p of a segment. t points away from
// the segment and d is half the stroke width. Butt caps add no vertices.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		// half turn from +n through t to -n
		r.addArc(p, d, n, -math.Pi)
	}
}

// addArc appends the points of a circular arc around center, starting in
// direction from and sweeping by the given angle (radians, positive is
// counter-clockwise). The end points of the arc are included.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, from vec.Vec2, sweep float64) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle θ deviates from the circle by
	// radius*(1-cos(θ/2)); choose θ so that this equals the flatness.
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: from.X*cos - from.Y*sin,
			Y: from.X*sin + from.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
