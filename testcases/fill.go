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

import "seehuhn.de/go/stardrift/raster"

var fillCases = []TestCase{
	{
		Name:       "rectangle",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Rect{Origin: pt(10, 10), Width: 44, Height: 44, Color: white}},
	},
	{
		Name:       "rectangle_overlap",
		Width:      64,
		Height:     64,
		Background: purple,
		Ops: []Operation{
			Rect{Origin: pt(4, 4), Width: 30, Height: 20, Color: yellow},
			Rect{Origin: pt(20, 12), Width: 30, Height: 40, Color: white},
		},
	},
	{
		Name:       "rectangle_transparent",
		Width:      32,
		Height:     32,
		Background: white,
		Ops:        []Operation{Rect{Origin: pt(8, 8), Width: 16, Height: 16, Color: raster.Color{R: 200}}},
	},
	{
		Name:       "clip_left_top",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Rect{Origin: pt(-20, -10), Width: 40, Height: 30, Color: white}},
	},
	{
		Name:       "clip_right_bottom",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Rect{Origin: pt(40, 50), Width: 40, Height: 30, Color: white}},
	},
	{
		Name:       "clip_outside",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Rect{Origin: pt(70, 10), Width: 10, Height: 10, Color: white}},
	},
}

var circleCases = []TestCase{
	{
		Name:       "single",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{SoftCircle{Center: pt(32, 32), Radius: 20, Color: white}},
	},
	{
		Name:       "star",
		Width:      32,
		Height:     32,
		Background: purple,
		Ops:        []Operation{SoftCircle{Center: pt(16, 16), Radius: 11, Color: yellow}},
	},
	{
		Name:       "overlapping",
		Width:      64,
		Height:     64,
		Background: purple,
		Ops: []Operation{
			SoftCircle{Center: pt(24, 32), Radius: 14, Color: yellow},
			SoftCircle{Center: pt(40, 32), Radius: 14, Color: white},
		},
	},
	{
		Name:       "half_transparent",
		Width:      32,
		Height:     32,
		Background: black,
		Ops:        []Operation{SoftCircle{Center: pt(16, 16), Radius: 12, Color: raster.Color{R: 255, G: 255, B: 255, A: 128}}},
	},
	{
		Name:       "tiny",
		Width:      16,
		Height:     16,
		Background: black,
		Ops: []Operation{
			SoftCircle{Center: pt(4, 4), Radius: 1, Color: white},
			SoftCircle{Center: pt(10, 10), Radius: 2, Color: white},
		},
	},
	{
		Name:       "clip_top",
		Width:      100,
		Height:     100,
		Background: black,
		Ops:        []Operation{SoftCircle{Center: pt(50, -3), Radius: 5, Color: yellow}},
	},
	{
		Name:       "clip_corners",
		Width:      48,
		Height:     48,
		Background: purple,
		Ops: []Operation{
			SoftCircle{Center: pt(0, 0), Radius: 10, Color: yellow},
			SoftCircle{Center: pt(48, 0), Radius: 10, Color: yellow},
			SoftCircle{Center: pt(0, 48), Radius: 10, Color: yellow},
			SoftCircle{Center: pt(48, 48), Radius: 10, Color: yellow},
		},
	},
}
