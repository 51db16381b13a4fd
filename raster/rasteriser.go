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

// Package raster turns filled and stroked paths into anti-aliased pixels.
//
// The Rasteriser computes, for every pixel, the exact fraction of the pixel
// area covered by a path. A Canvas composites this coverage into an RGBA
// image and encodes the result as PNG.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. Coverage values range
// from 0 (pixel untouched) to 1 (pixel fully covered); coverage[i] belongs
// to pixel (xMin+i, y). The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (e *edge) yTop() float64    { return min(e.y0, e.y1) }
func (e *edge) yBottom() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to per-pixel coverage.
// One instance can be reused for many paths; internal buffers grow as
// needed and are kept between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the shape used at both ends of every stroked segment.
	Cap graphics.LineCapStyle

	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // area to the right of the crossing within a pixel
	edges     []edge
	activeIdx []int

	outline        []vec.Vec2 // stroke polygons, stored back to back
	outlineOffsets []int      // start of each polygon in outline

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle,
// with an identity CTM, unit stroke width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and installs a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
}

// linear applies the 2×2 part of the CTM, ignoring the translation.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 by line
// segments and passes each of them to emit.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier p0, ..., p3 by line segments
// and passes each of them to emit. The number of segments follows Wang's
// formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// walk calls seg for every line segment of the flattened path. Open
// subpaths are closed implicitly when close is true.
func (r *Rasteriser) walk(p *path.Data, close bool, seg func(a, b vec.Vec2)) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if close && open && current != start {
				seg(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			seg(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], seg)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], seg)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				seg(current, start)
			}
			current = start
			open = false
		}
	}
	if close && open && current != start {
		seg(current, start)
	}
}

// FillNonZero fills the path using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, true, r.addEdge)
	r.sweep(emit)
}

// beginEdges discards the edges of the previous path.
func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms a user-space segment to device space and appends it to
// the edge list. Horizontal edges carry no coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	x0 := r.CTM[0]*a.X + r.CTM[2]*a.Y + r.CTM[4]
	y0 := r.CTM[1]*a.X + r.CTM[3]*a.Y + r.CTM[5]
	x1 := r.CTM[0]*b.X + r.CTM[2]*b.Y + r.CTM[4]
	y1 := r.CTM[1]*b.X + r.CTM[3]*b.Y + r.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// pixelBounds returns the integer bounding box of the collected edges,
// intersected with the clip rectangle.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model
//
// Every pixel keeps two accumulators. cover holds the signed height of all
// edge pieces crossing the pixel; area holds the same height weighted by
// the fraction of the pixel lying to the right of the crossing. Walking a
// scanline from left to right, the coverage of pixel i is
//
//	sum(cover[0:i]) + area[i]
//
// which is the signed area enclosed by the path inside the pixel. Taking
// the absolute value and clamping to 1 implements the nonzero rule.

// accumulate adds the part of e inside scanline y to the accumulators.
// The buffers are indexed by x-xMin. Pieces to the left of xMin are folded
// into the first pixel; pieces right of xMax are ignored.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	top := max(float64(y), e.yTop())
	bot := min(float64(y+1), e.yBottom())
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	pixA := int(math.Floor(min(xa, xb)))
	pixB := int(math.Floor(max(xa, xb)))

	switch {
	case pixB < xMin:
		h := sign * float32(bot-top)
		cover[0] += h
		area[0] += h
		return
	case pixA >= xMax:
		return
	case pixA == pixB:
		r.accumulatePiece(e, top, bot, sign, pixA, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixA; pix <= pixB; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi <= lo {
			continue
		}
		r.accumulatePiece(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// accumulatePiece handles the part of e between top and bot, which lies
// inside pixel column pix.
func (r *Rasteriser) accumulatePiece(e *edge, top, bot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	h := sign * float32(bot-top)
	if pix < xMin {
		cover[0] += h
		area[0] += h
		return
	}
	if pix >= xMax {
		return
	}

	xMid := e.x0 + e.dxdy*((top+bot)/2-e.y0)
	frac := xMid - float64(pix)

	i := pix - xMin
	cover[i] += h
	area[i] += h * float32(1-frac)
}

// integrate turns the accumulators of one scanline into nonzero coverage.
// The result overwrites cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
// It returns nil if the whole scanline is empty.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// sweep rasterises the collected edges scanline by scanline, keeping a list
// of the edges which intersect the current scanline.
func (r *Rasteriser) sweep(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yTop(), b.yTop())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && r.edges[next].yTop() < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yBottom() <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for which an
	// edge still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest segment which is still stroked.
	zeroLengthThreshold = 1e-10
)
