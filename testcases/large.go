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

package testcases

// largeCases fill big canvases, as in a full-screen frame.
var largeCases = []TestCase{
	{
		Name:       "large_background",
		Width:      512,
		Height:     512,
		Background: black,
		Ops:        []Operation{Rect{Origin: pt(0, 0), Width: 512, Height: 512, Color: purple}},
	},
	{
		Name:       "large_circle",
		Width:      512,
		Height:     512,
		Background: purple,
		Ops:        []Operation{SoftCircle{Center: pt(256, 256), Radius: 200, Color: yellow}},
	},
	{
		Name:       "large_field",
		Width:      512,
		Height:     384,
		Background: purple,
		Ops:        starGrid(512, 384, 64),
	},
}

// starGrid places stars of increasing size on a regular grid.
func starGrid(width, height, step int) []Operation {
	var ops []Operation
	i := 0
	for y := step / 2; y < height; y += step {
		for x := step / 2; x < width; x += step {
			ops = append(ops, SoftCircle{
				Center: pt(float64(x), float64(y)),
				Radius: 2 + i%10,
				Color:  yellow,
			})
			i++
		}
	}
	return ops
}
