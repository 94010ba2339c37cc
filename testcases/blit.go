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

var blitCases = []TestCase{
	{
		Name:       "checker_scaled",
		Width:      64,
		Height:     64,
		Background: purple,
		Ops: []Operation{Blit{
			Origin:  pt(8, 8),
			XCorner: pt(56, 8),
			YCorner: pt(8, 56),
			Texture: Texture{Pattern: Checker, Width: 4, Height: 4, Order: raster.BottomUp},
		}},
	},
	{
		Name:       "gradient_bottom_up",
		Width:      64,
		Height:     32,
		Background: black,
		Ops: []Operation{Blit{
			Origin:  pt(0, 0),
			XCorner: pt(63, 0),
			YCorner: pt(0, 31),
			Texture: Texture{Pattern: Gradient, Width: 16, Height: 8, Order: raster.BottomUp},
		}},
	},
	{
		Name:       "gradient_top_down",
		Width:      64,
		Height:     32,
		Background: black,
		Ops: []Operation{Blit{
			Origin:  pt(0, 0),
			XCorner: pt(63, 0),
			YCorner: pt(0, 31),
			Texture: Texture{Pattern: Gradient, Width: 16, Height: 8, Order: raster.TopDown},
		}},
	},
	{
		Name:       "clipped",
		Width:      32,
		Height:     32,
		Background: white,
		Ops: []Operation{Blit{
			Origin:  pt(-16.5, 20.25),
			XCorner: pt(24, 20.25),
			YCorner: pt(-16.5, 50),
			Texture: Texture{Pattern: Gradient, Width: 8, Height: 8, Order: raster.TopDown},
		}},
	},
	{
		Name:       "over_stars",
		Width:      64,
		Height:     64,
		Background: purple,
		Ops: []Operation{
			SoftCircle{Center: pt(20, 20), Radius: 10, Color: yellow},
			SoftCircle{Center: pt(44, 40), Radius: 8, Color: yellow},
			Blit{
				Origin:  pt(12, 12),
				XCorner: pt(52, 12),
				YCorner: pt(12, 52),
				Texture: Texture{Pattern: Gradient, Width: 6, Height: 6, Order: raster.BottomUp},
			},
		},
	},
}
