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


// Command export writes the known-answer vectors to JSON, for checking
// other implementations of the pattern generator and the rasteriser.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pattern/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	if err := run(outFile); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(fname string) error {
	var out struct {
		Seeds    []jsonSeed     `json:"seeds"`
		Geometry []jsonGeometry `json:"geometry"`
	}

	for _, s := range testcases.Seeds {
		out.Seeds = append(out.Seeds, seedToJSON(s))
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Geometry = append(out.Geometry, geometryToJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", fname, err)
	}
	return f.Close()
}

type jsonSeed struct {
	Name         string         `json:"name"`
	Seed         string         `json:"seed"`
	Digest       string         `json:"digest"`
	Background   [3]uint8       `json:"background"`
	Overlay      string         `json:"overlay"`
	OverlayColor [3]uint8       `json:"overlay_color"`
	First        jsonShape      `json:"first"`
	Last         jsonShape      `json:"last"`
	Counts       map[string]int `json:"counts"`
}

type jsonShape struct {
	Kind  string   `json:"kind"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Size  float64  `json:"size"`
	Color [3]uint8 `json:"color"`
}

type jsonGeometry struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Path      []jsonSegment `json:"path"`
	Op        string        `json:"op"`
	LineWidth float64       `json:"line_width,omitempty"`
	LineCap   string        `json:"line_cap,omitempty"`
	Flatness  float64       `json:"flatness,omitempty"`
	Area      float64       `json:"area"`
	Tolerance float64       `json:"tolerance"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func seedToJSON(s testcases.Seed) jsonSeed {
	return jsonSeed{
		Name:         s.Name,
		Seed:         s.Seed,
		Digest:       s.Digest,
		Background:   rgb(s.Background),
		Overlay:      s.Overlay,
		OverlayColor: rgb(s.OverlayColor),
		First:        shapeToJSON(s.First),
		Last:         shapeToJSON(s.Last),
		Counts:       s.Counts,
	}
}

func shapeToJSON(s testcases.Shape) jsonShape {
	return jsonShape{Kind: s.Kind, X: s.X, Y: s.Y, Size: s.Size, Color: rgb(s.Color)}
}

func rgb(c color.RGBA) [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

func geometryToJSON(category string, tc testcases.Geometry) jsonGeometry {
	jtc := jsonGeometry{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Path:      pathToJSON(tc.Path),
		Flatness:  tc.Flatness,
		Area:      tc.Area,
		Tolerance: tc.Tolerance,
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[k : k+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}
