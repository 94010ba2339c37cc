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

import "fmt"

// precisionCases place shapes at fractional positions. Shapes start at
// the pixel containing their top-left corner.
var precisionCases = subpixelCases()

func subpixelCases() []TestCase {
	var cases []TestCase
	for _, offset := range []float64{0, 0.25, 0.5, 0.75} {
		suffix := fmt.Sprintf("%02d", int(offset*100))
		cases = append(cases,
			TestCase{
				Name:       "subpixel_rect_" + suffix,
				Width:      64,
				Height:     64,
				Background: black,
				Ops:        []Operation{Rect{Origin: pt(20+offset, 20+offset), Width: 24, Height: 24, Color: white}},
			},
			TestCase{
				Name:       "subpixel_circle_" + suffix,
				Width:      64,
				Height:     64,
				Background: black,
				Ops:        []Operation{SoftCircle{Center: pt(32+offset, 32+offset), Radius: 12, Color: white}},
			},
			TestCase{
				Name:       "negative_rect_" + suffix,
				Width:      32,
				Height:     32,
				Background: black,
				Ops:        []Operation{Rect{Origin: pt(-4-offset, -4-offset), Width: 12, Height: 12, Color: white}},
			},
		)
	}
	return cases
}
