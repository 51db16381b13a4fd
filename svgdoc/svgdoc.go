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

// Package svgdoc writes filled and stroked paths as an SVG document.
package svgdoc

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/geom/path"
)

// Document is an SVG document under construction.
// Call Close to finish the document.
type Document struct {
	out    *errWriter
	canvas *svg.SVG
}

// New starts a width×height document on w and paints the background.
func New(w io.Writer, width, height int, bg color.Color) *Document {
	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+rgb(bg)+opacity("fill", bg))
	return &Document{out: out, canvas: canvas}
}

// Fill adds the interior of p, using the nonzero winding rule.
func (d *Document) Fill(p *path.Data, col color.Color) {
	if d.out.err != nil {
		return
	}
	d.canvas.Path(PathData(p), "fill:"+rgb(col)+opacity("fill", col))
}

// Stroke adds the outline of p with the given line width and butt caps.
func (d *Document) Stroke(p *path.Data, width float64, col color.Color) {
	if d.out.err != nil {
		return
	}
	style := "fill:none;stroke:" + rgb(col) +
		";stroke-width:" + num(width) +
		opacity("stroke", col)
	d.canvas.Path(PathData(p), style)
}

// Close ends the document and reports the first write error, if any.
func (d *Document) Close() error {
	d.canvas.End()
	if d.out.err != nil {
		return fmt.Errorf("write svg: %w", d.out.err)
	}
	return nil
}

// PathData converts p to the syntax of the SVG "d" attribute.
// Coordinates keep their full float64 precision.
func PathData(p *path.Data) string {
	var b strings.Builder
	k := 0
	for _, cmd := range p.Cmds {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
			n = 1
		case path.CmdLineTo:
			b.WriteByte('L')
			n = 1
		case path.CmdQuadTo:
			b.WriteByte('Q')
			n = 2
		case path.CmdCubeTo:
			b.WriteByte('C')
			n = 3
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for i, pt := range p.Coords[k : k+n] {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(num(pt.X))
			b.WriteByte(',')
			b.WriteString(num(pt.Y))
		}
		k += n
	}
	return b.String()
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// rgb formats the colour channels, ignoring alpha.
func rgb(col color.Color) string {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// opacity returns a style declaration for translucent colours and the
// empty string for opaque ones.
func opacity(prop string, col color.Color) string {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	if c.A == 0xff {
		return ""
	}
	return ";" + prop + "-opacity:" + num(float64(c.A)/255)
}

// errWriter remembers the first write error. svgo discards errors, so the
// document checks this before and after writing.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
