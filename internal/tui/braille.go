// seehuhn.de/go/canvas - a 2D drawing surface and visual test harness
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

package tui

import (
	"image"
	"image/color"
)

// brailleBuf is a grid of terminal cells, each showing 2×4 micro-pixels
// as a braille character.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits of the braille block, indexed by [column][row]
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

// plotImage sets every micro-pixel whose sample point in img is dark.
// One micro-pixel covers zoom×zoom image pixels, and the image is centred
// in the buffer.
func (b *brailleBuf) plotImage(img image.Image, zoom float64) {
	bounds := img.Bounds()
	mw, mh := 2*b.w, 4*b.h
	ox := (float64(mw)*zoom - float64(bounds.Dx())) / 2
	oy := (float64(mh)*zoom - float64(bounds.Dy())) / 2
	for my := range mh {
		y := bounds.Min.Y + int((float64(my)+0.5)*zoom-oy)
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for mx := range mw {
			x := bounds.Min.X + int((float64(mx)+0.5)*zoom-ox)
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			if isInk(img.At(x, y)) {
				b.setPixel(mx, my)
			}
		}
	}
}

// isInk reports whether c is darker than mid grey.
func isInk(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y < 0x80
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
