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

package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPathData(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 2.5}).
		LineTo(vec.Vec2{X: 4.471529247895259, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 6}, vec.Vec2{X: 7, Y: 8}).
		CubeTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 3, Y: 3}).
		Close()

	got := PathData(p)
	want := "M1,2.5 L4.471529247895259,0 Q5,6 7,8 C1,1 2,2 3,3 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocument(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 500, 500, color.RGBA{R: 172, G: 242, B: 205, A: 255})

	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		Close()
	doc.Fill(square, color.RGBA{R: 44, G: 242, B: 77, A: 255})

	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 500, Y: 500})
	doc.Stroke(line, 1, color.RGBA{R: 38, G: 232, B: 59, A: 255})

	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		`width="500" height="500"`,
		`style="fill:rgb(172,242,205)"`,
		`d="M10,10 L20,10 L20,20 Z" style="fill:rgb(44,242,77)"`,
		`d="M0,0 L500,500" style="fill:none;stroke:rgb(38,232,59);stroke-width:1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("document not terminated:\n%s", out)
	}

	// the document must be well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("invalid XML: %v", err)
			}
			break
		}
	}
}

func TestTranslucent(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 10, 10, color.White)
	doc.Fill((&path.Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{X: 1}).LineTo(vec.Vec2{Y: 1}).Close(),
		color.NRGBA{R: 255, A: 51})
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	if want := "fill:rgb(255,0,0);fill-opacity:0.2"; !strings.Contains(buf.String(), want) {
		t.Errorf("output lacks %s:\n%s", want, buf.String())
	}
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errDiskFull
	}
	f.after--
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	doc := New(&failingWriter{after: 1}, 10, 10, color.White)
	doc.Fill((&path.Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{X: 1}).Close(), color.Black)

	err := doc.Close()
	if !errors.Is(err, errDiskFull) {
		t.Errorf("got error %v, want %v", err, errDiskFull)
	}
}
