// seehuhn.de/go/stardrift - a software-rendered star field
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

// Command export writes the test case definitions to JSON, so that
// other tools can reproduce them.
// Run from the stardrift module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string   `json:"name"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Background []uint8  `json:"background"`
	Ops        []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op      string       `json:"op"`
	Origin  []float64    `json:"origin,omitempty"`
	XCorner []float64    `json:"x_corner,omitempty"`
	YCorner []float64    `json:"y_corner,omitempty"`
	Width   int          `json:"width,omitempty"`
	Height  int          `json:"height,omitempty"`
	Radius  int          `json:"radius,omitempty"`
	Color   []uint8      `json:"color,omitempty"`
	Texture *jsonTexture `json:"texture,omitempty"`
}

type jsonTexture struct {
	Pattern  string `json:"pattern"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	RowOrder string `json:"row_order"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Background: rgba(tc.Background),
	}

	for _, op := range tc.Ops {
		var jop jsonOp
		switch op := op.(type) {
		case testcases.Rect:
			jop.Op = "rect"
			jop.Origin = point(op.Origin)
			jop.Width = op.Width
			jop.Height = op.Height
			jop.Color = rgba(op.Color)
		case testcases.SoftCircle:
			jop.Op = "soft_circle"
			jop.Origin = point(op.Center)
			jop.Radius = op.Radius
			jop.Color = rgba(op.Color)
		case testcases.Blit:
			jop.Op = "blit"
			jop.Origin = point(op.Origin)
			jop.XCorner = point(op.XCorner)
			jop.YCorner = point(op.YCorner)
			jop.Texture = &jsonTexture{
				Pattern:  op.Texture.Pattern.String(),
				Width:    op.Texture.Width,
				Height:   op.Texture.Height,
				RowOrder: op.Texture.Order.String(),
			}
		}
		jtc.Ops = append(jtc.Ops, jop)
	}
	return jtc
}

func point(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}

func rgba(c raster.Color) []uint8 {
	return []uint8{c.R, c.G, c.B, c.A}
}
