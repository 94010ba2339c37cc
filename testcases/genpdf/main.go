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

// Command genpdf writes vector versions of the test cases, for visual
// comparison with the rasterized reference images.
// It creates PDFs from test cases and, if Ghostscript is installed,
// renders them to PNGs.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stardrift/export"
	"seehuhn.de/go/stardrift/testcases"
)

const vecDir = "testdata/vector"

func main() {
	if err := os.MkdirAll(vecDir, 0o755); err != nil {
		panic(err)
	}

	_, err := exec.LookPath("gs")
	haveGS := err == nil
	if !haveGS {
		fmt.Fprintln(os.Stderr, "gs not found, skipping PNG output")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(vecDir, name+".pdf")
			pngPath := filepath.Join(vecDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if haveGS {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(export.Gray(tc.Background))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Rect:
			page.SetFillColor(export.Gray(op.Color))
			x, y := op.Origin.X, op.Origin.Y
			page.Rectangle(x, y, float64(op.Width), float64(op.Height))
			page.Fill()

		case testcases.SoftCircle:
			// The soft edge has no vector equivalent; the disc is drawn
			// with the radius where the opacity drops to one half.
			page.SetFillColor(export.Gray(op.Color))
			start, segs := export.Disc(op.Center, float64(op.Radius)/2)
			page.MoveTo(start.X, start.Y)
			for _, c := range segs {
				page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			}
			page.ClosePath()
			page.Fill()

		case testcases.Blit:
			// Bitmaps are shown as the outline of the destination box.
			page.SetStrokeColor(color.DeviceGray(0.5))
			page.SetLineWidth(1)
			far := op.XCorner.Add(op.YCorner).Sub(op.Origin)
			page.MoveTo(op.Origin.X, op.Origin.Y)
			page.LineTo(op.XCorner.X, op.XCorner.Y)
			page.LineTo(far.X, far.Y)
			page.LineTo(op.YCorner.X, op.YCorner.Y)
			page.ClosePath()
			page.Stroke()
		}
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
