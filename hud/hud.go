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

// Package hud draws a small status line on top of the star field.
package hud

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/raster"
)

// Overlay is a single line of text drawn at a fixed position.
//
// Each call to Draw first paints the area covered by the previous text
// with Background, so the overlay can be used on a buffer which is not
// cleared between frames.
type Overlay struct {
	Face       font.Face
	Origin     image.Point // top-left corner of the text box
	Color      raster.Color
	Background raster.Color

	last image.Rectangle
}

// New returns an overlay using a 7×13 pixel bitmap font.
func New(fg, bg raster.Color) *Overlay {
	return &Overlay{
		Face:       basicfont.Face7x13,
		Origin:     image.Pt(2, 2),
		Color:      fg,
		Background: bg,
	}
}

// Draw replaces the previous text with text.
func (o *Overlay) Draw(p *raster.Painter, text string) {
	o.Erase(p)

	m := o.Face.Metrics()
	width := font.MeasureString(o.Face, text).Ceil()
	box := image.Rectangle{
		Min: o.Origin,
		Max: o.Origin.Add(image.Pt(width, m.Height.Ceil())),
	}
	if box.Empty() {
		return
	}

	p.FillRect(vec.Vec2{X: float64(box.Min.X), Y: float64(box.Min.Y)}, box.Dx(), box.Dy(), o.Background)
	d := &font.Drawer{
		Dst:  p.Dst,
		Src:  image.NewUniform(o.Color),
		Face: o.Face,
		Dot:  fixed.P(o.Origin.X, o.Origin.Y+m.Ascent.Ceil()),
	}
	d.DrawString(text)
	o.last = box
}

// Erase paints the area of the previous text with Background.
func (o *Overlay) Erase(p *raster.Painter) {
	if o.last.Empty() {
		return
	}
	r := o.last
	p.FillRect(vec.Vec2{X: float64(r.Min.X), Y: float64(r.Min.Y)}, r.Dx(), r.Dy(), o.Background)
	o.last = image.Rectangle{}
}

// Bounds returns the area covered by the text currently shown.
func (o *Overlay) Bounds() image.Rectangle {
	return o.last
}

// FrameStats formats a frame rate and frame duration for display.
func FrameStats(fps float64, frame time.Duration) string {
	ms := float64(frame) / float64(time.Millisecond)
	return fmt.Sprintf("%4.0f fps %6.2f ms", fps, ms)
}
