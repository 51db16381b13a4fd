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

// Package pattern derives identicon-style images from text seeds.
//
// A seed is hashed with SHA-256 and every drawing decision is read from the
// resulting digest: the background colour, up to MaxShapes circles,
// squares and lines placed on a jittered grid, and a line overlay on top.
// The same seed always gives the same image, in PNG as well as in SVG.
package pattern

import (
	"context"
	"image/color"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Fixed canvas parameters.
const (
	CanvasWidth  = 500
	CanvasHeight = 500
	MaxShapes    = 1000
)

// GridSpacing is the distance between neighbouring candidate positions,
// chosen so that MaxShapes cells cover the canvas.
var GridSpacing = math.Sqrt(float64(CanvasWidth*CanvasHeight) / MaxShapes)

// Surface is a drawing target for a Design.
type Surface interface {
	Fill(p *path.Data, col color.Color)
	Stroke(p *path.Data, width float64, col color.Color)
}

// Design holds all drawing decisions derived from one digest.
type Design struct {
	Digest     Digest
	Background color.RGBA
	Shapes     []Shape
	Overlay    Overlay
}

// NewDesign derives the design for a digest.
func NewDesign(d Digest) *Design {
	shapes := make([]Shape, 0, MaxShapes)
	counter := 0
	for cell := range Cells(CanvasWidth, CanvasHeight, GridSpacing, MaxShapes) {
		shapes = append(shapes, shapeAt(d, counter, cell))
		counter++
	}

	return &Design{
		Digest:     d,
		Background: BackgroundColor(d),
		Shapes:     shapes,
		Overlay:    NewOverlay(d, counter),
	}
}

// BackgroundColor maps the first three digest bytes into the upper half of
// the channel range, giving a light colour.
func BackgroundColor(d Digest) color.RGBA {
	return color.RGBA{
		R: d[0]%128 + 128,
		G: d[1]%128 + 128,
		B: d[2]%128 + 128,
		A: 0xff,
	}
}

// shapeAt derives shape number counter, placed near the grid position cell.
func shapeAt(d Digest, counter int, cell vec.Vec2) Shape {
	s := GridSpacing
	offX := math.Mod(float64(d.At(counter)), s) - s/2
	offY := math.Mod(float64(d.At(counter+1)), s) - s/2
	pos := vec.Vec2{
		X: min(max(0, cell.X+offX), CanvasWidth),
		Y: min(max(0, cell.Y+offY), CanvasHeight),
	}
	size := float64(d.At(counter+2)%50 + 10)
	col := d.colorAt(counter)

	switch d.At(counter+3) % 3 {
	case 0:
		return Circle{Center: pos, Radius: size / 2, Color: col}
	case 1:
		return Rectangle{Center: pos, Size: size, Color: col}
	default:
		half := vec.Vec2{X: size / 2, Y: size / 2}
		return LineSegment{From: pos.Sub(half), To: pos.Add(half), Width: 2, Color: col}
	}
}

// Draw paints the shapes and then the overlay onto s.
// The background is not drawn; surfaces are created with it.
func (d *Design) Draw(s Surface) {
	for _, shape := range d.Shapes {
		shape.paint(s)
	}
	for _, line := range d.Overlay.Lines() {
		line.paint(s)
	}
}

// LogShapes writes one debug record per shape, followed by a record for
// the overlay. Nothing is formatted unless the logger has debug output
// enabled.
func (d *Design) LogShapes(ctx context.Context, logger *slog.Logger) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for i, shape := range d.Shapes {
		logger.DebugContext(ctx, "generating shape", slog.Int("n", i+1), slog.Any("shape", shape))
	}
	logger.DebugContext(ctx, "pattern overlay added", slog.String("overlay", d.Overlay.Kind()))
}
