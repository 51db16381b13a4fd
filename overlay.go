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
)

// Overlay is the line pattern drawn on top of all shapes.
// The implementations are DiagonalOverlay and GridOverlay.
type Overlay interface {
	// Kind returns "diagonal" or "grid".
	Kind() string

	// Lines returns the overlay lines in drawing order.
	Lines() []LineSegment
}

// overlayWidth is the stroke width of all overlay lines.
const overlayWidth = 1

// DiagonalOverlay is a family of parallel lines. Line i runs from (x,0) to
// (x+Width, Height), where x = i*Spacing.
type DiagonalOverlay struct {
	Width, Height float64
	Spacing       float64
	Color         color.RGBA
}

// Kind implements the Overlay interface.
func (DiagonalOverlay) Kind() string { return "diagonal" }

// Lines implements the Overlay interface.
func (o DiagonalOverlay) Lines() []LineSegment {
	var lines []LineSegment
	for i := 0.0; i < o.Width; i += o.Spacing {
		lines = append(lines, LineSegment{
			From:  pt(i, 0),
			To:    pt(i+o.Width, o.Height),
			Width: overlayWidth,
			Color: o.Color,
		})
	}
	return lines
}

// GridOverlay is a square grid. For every offset it contains one vertical
// line across the full height and one horizontal line across the full width.
type GridOverlay struct {
	Width, Height float64
	Spacing       float64
	Color         color.RGBA
}

// Kind implements the Overlay interface.
func (GridOverlay) Kind() string { return "grid" }

// Lines implements the Overlay interface.
func (o GridOverlay) Lines() []LineSegment {
	var lines []LineSegment
	for i := 0.0; i < o.Width; i += o.Spacing {
		lines = append(lines,
			LineSegment{From: pt(i, 0), To: pt(i, o.Height), Width: overlayWidth, Color: o.Color},
			LineSegment{From: pt(0, i), To: pt(o.Width, i), Width: overlayWidth, Color: o.Color},
		)
	}
	return lines
}

// NewOverlay selects the overlay for a digest. The parity of the first
// digest byte chooses the kind; the colour is read at position counter,
// the number of shapes generated before the overlay.
func NewOverlay(d Digest, counter int) Overlay {
	col := d.colorAt(counter)
	if d.At(0)%2 == 0 {
		return DiagonalOverlay{Width: CanvasWidth, Height: CanvasHeight, Spacing: GridSpacing, Color: col}
	}
	return GridOverlay{Width: CanvasWidth, Height: CanvasHeight, Spacing: GridSpacing, Color: col}
}
