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


package testcases

// All contains all rasteriser test cases, grouped by category.
// The category name is used as a prefix in exported case names.
var All = map[string][]Geometry{
	"fill":   fillCases,
	"stroke": strokeCases,
}

// Seeds lists the known-answer vectors for whole patterns.
var Seeds = []Seed{
	{
		Name:         "hello",
		Seed:         "hello",
		Digest:       "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Background:   rgb(172, 242, 205),
		Overlay:      "diagonal",
		OverlayColor: rgb(38, 232, 59),
		First:        Shape{Kind: "circle", X: 4.471529247895259, Y: 0, Size: 37, Color: rgb(44, 242, 77)},
		Last:         Shape{Kind: "line", X: 116.77402395547233, Y: 488.6245665739938, Size: 42, Color: rgb(14, 38, 232)},
		Counts:       map[string]int{"circle": 249, "rectangle": 281, "line": 470},
	},
	{
		Name:         "seed",
		Seed:         "seed",
		Digest:       "19b25856e1c150ca834cffc8b59b23adbd0ec0389e58eb22b3b64768098d002b",
		Background:   rgb(153, 178, 216),
		Overlay:      "grid",
		OverlayColor: rgb(131, 76, 255),
		First:        Shape{Kind: "line", X: 1.2829175487371556, Y: 0, Size: 48, Color: rgb(25, 178, 88)},
		Last:         Shape{Kind: "circle", X: 115.03736434536957, Y: 486.7562367689424, Size: 36, Color: rgb(202, 131, 76)},
		Counts:       map[string]int{"circle": 219, "rectangle": 344, "line": 437},
	},
	{
		Name:         "abc",
		Seed:         "abc",
		Digest:       "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		Background:   rgb(186, 248, 150),
		Overlay:      "diagonal",
		OverlayColor: rgb(65, 65, 64),
		First:        Shape{Kind: "line", X: 4.169034540318193, Y: 1.4145877436857779, Size: 32, Color: rgb(186, 120, 22)},
		Last:         Shape{Kind: "rectangle", X: 115.41458774368577, Y: 484.00178997231, Size: 25, Color: rgb(234, 65, 65)},
		Counts:       map[string]int{"circle": 436, "rectangle": 250, "line": 314},
	},
}
