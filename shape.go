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
	"image/color"
	"log/slog"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Shape is one primitive of a pattern.
// The implementations are Circle, Rectangle and LineSegment.
type Shape interface {
	// Kind returns "circle", "rectangle" or "line".
	Kind() string

	// Path returns the outline of the shape in canvas coordinates.
	Path() *path.Data

	slog.LogValuer

	paint(s Surface)
}

// Circle is a filled disc.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Color  color.RGBA
}

// Kind implements the Shape interface.
func (Circle) Kind() string { return "circle" }

// Path approximates the circle by four cubic Bézier curves.
func (c Circle) Path() *path.Data {
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

// LogValue implements the slog.LogValuer interface.
func (c Circle) LogValue() slog.Value {
	return shapeLogValue(c, c.Center, 2*c.Radius)
}

func (c Circle) paint(s Surface) {
	s.Fill(c.Path(), c.Color)
}

// Rectangle is a filled, axis-aligned square centred on Center.
type Rectangle struct {
	Center vec.Vec2
	Size   float64
	Color  color.RGBA
}

// Kind implements the Shape interface.
func (Rectangle) Kind() string { return "rectangle" }

// Path returns the four corners of the square.
func (r Rectangle) Path() *path.Data {
	x0, y0 := r.Center.X-r.Size/2, r.Center.Y-r.Size/2
	x1, y1 := x0+r.Size, y0+r.Size

	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// LogValue implements the slog.LogValuer interface.
func (r Rectangle) LogValue() slog.Value {
	return shapeLogValue(r, r.Center, r.Size)
}

func (r Rectangle) paint(s Surface) {
	s.Fill(r.Path(), r.Color)
}

// LineSegment is a straight stroked line with butt caps.
type LineSegment struct {
	From, To vec.Vec2
	Width    float64
	Color    color.RGBA
}

// Kind implements the Shape interface.
func (LineSegment) Kind() string { return "line" }

// Path returns the centre line of the segment.
func (l LineSegment) Path() *path.Data {
	return (&path.Data{}).MoveTo(l.From).LineTo(l.To)
}

// LogValue implements the slog.LogValuer interface.
func (l LineSegment) LogValue() slog.Value {
	mid := l.From.Add(l.To).Mul(0.5)
	return shapeLogValue(l, mid, l.To.X-l.From.X)
}

func (l LineSegment) paint(s Surface) {
	s.Stroke(l.Path(), l.Width, l.Color)
}

func shapeLogValue(s Shape, pos vec.Vec2, size float64) slog.Value {
	return slog.GroupValue(
		slog.String("kind", s.Kind()),
		slog.Float64("x", pos.X),
		slog.Float64("y", pos.Y),
		slog.Float64("size", size),
	)
}

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
