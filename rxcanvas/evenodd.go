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


package rxcanvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/raster"
)

// windingScanner is a rasterx.Scanner which honours the winding rule.
// ScannerGV ignores SetWinding and always fills with the non-zero rule,
// so even-odd fills are scanned here instead.  The flattened outline
// which the rasterx Filler produces is collected in device space and
// converted to coverage by a raster.Rasteriser.
type windingScanner struct {
	dest  *image.RGBA
	mask  *image.Alpha
	src   *image.Uniform
	outl  path.Data
	rule  raster.FillRule
	r     *raster.Rasteriser
	clip  image.Rectangle
	ext   fixed.Rectangle26_6
	empty bool
}

func newWindingScanner(dest *image.RGBA) *windingScanner {
	b := dest.Bounds()
	s := &windingScanner{
		dest: dest,
		mask: image.NewAlpha(b),
		src:  image.NewUniform(color.Black),
		r: raster.NewRasteriser(rect.Rect{
			LLx: float64(b.Min.X),
			LLy: float64(b.Min.Y),
			URx: float64(b.Max.X),
			URy: float64(b.Max.Y),
		}),
	}
	s.Clear()
	return s
}

func (s *windingScanner) Start(a fixed.Point26_6) {
	s.grow(a)
	s.outl.MoveTo(fromFixed(a))
}

func (s *windingScanner) Line(b fixed.Point26_6) {
	s.grow(b)
	s.outl.LineTo(fromFixed(b))
}

func (s *windingScanner) grow(p fixed.Point26_6) {
	if s.empty {
		s.ext = fixed.Rectangle26_6{Min: p, Max: p}
		s.empty = false
		return
	}
	s.ext.Min.X = min(s.ext.Min.X, p.X)
	s.ext.Min.Y = min(s.ext.Min.Y, p.Y)
	s.ext.Max.X = max(s.ext.Max.X, p.X)
	s.ext.Max.Y = max(s.ext.Max.Y, p.Y)
}

// Draw paints the collected outline onto the destination image.
func (s *windingScanner) Draw() {
	if len(s.outl.Cmds) == 0 {
		return
	}
	clear(s.mask.Pix)
	m := s.mask
	s.r.Fill(&s.outl, s.rule, func(y, xMin int, coverage []float32) {
		row := m.Pix[m.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(min(c, 1)*0xff + 0.5)
		}
	})
	b := s.dest.Bounds()
	if s.clip != image.ZR {
		b = b.Intersect(s.clip)
	}
	draw.DrawMask(s.dest, b, s.src, image.Point{}, m, b.Min, draw.Over)
}

func (s *windingScanner) GetPathExtent() fixed.Rectangle26_6 {
	return s.ext
}

// SetBounds is a no-op; the bounds are those of the destination image.
func (s *windingScanner) SetBounds(w, h int) {}

func (s *windingScanner) SetColor(c interface{}) {
	if c, ok := c.(color.Color); ok {
		s.src.C = c
	}
}

func (s *windingScanner) SetWinding(useNonZeroWinding bool) {
	if useNonZeroWinding {
		s.rule = raster.NonZero
	} else {
		s.rule = raster.EvenOdd
	}
}

func (s *windingScanner) SetClip(clip image.Rectangle) {
	s.clip = clip
}

func (s *windingScanner) Clear() {
	s.outl.Cmds = s.outl.Cmds[:0]
	s.outl.Coords = s.outl.Coords[:0]
	s.ext = fixed.Rectangle26_6{}
	s.empty = true
}

func fromFixed(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
