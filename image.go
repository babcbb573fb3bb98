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

package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/canvas/raster"
)

// ImageSurface is a surface which paints into an RGBA image, using the
// rasteriser from seehuhn.de/go/canvas/raster.  Paint is composited with
// the source-over operator.
type ImageSurface struct {
	Image *image.RGBA

	r   *raster.Rasteriser
	ctx *Canvas
}

var (
	_ Surface = (*ImageSurface)(nil)
	_ Painter = (*ImageSurface)(nil)
)

// NewImageSurface returns a surface of the given size, filled with white.
func NewImageSurface(width, height int) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &ImageSurface{
		Image: img,
		r:     raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
	}
}

// Context2D returns the drawing context of the surface.  Repeated calls
// return the same context.
func (s *ImageSurface) Context2D() (Context, bool) {
	if s.ctx == nil {
		s.ctx = New(s)
	}
	return s.ctx, true
}

// StrokePath implements the [Painter] interface.
func (s *ImageSurface) StrokePath(p *path.Data, gs *State) {
	if Singular(gs.CTM) {
		return
	}
	user := TransformPath(p, gs.CTM.Inv())

	r := s.reset()
	r.CTM = gs.CTM
	r.Width = gs.LineWidth
	r.Cap = gs.Cap
	r.Join = gs.Join
	r.MiterLimit = gs.MiterLimit
	r.Dash = gs.Dash
	r.DashPhase = gs.DashOffset
	r.Stroke(user, s.compositor(gs.StrokeColor))
}

// FillPath implements the [Painter] interface.
func (s *ImageSurface) FillPath(p *path.Data, rule FillRule, gs *State) {
	r := s.reset()
	rr := raster.NonZero
	if rule == EvenOdd {
		rr = raster.EvenOdd
	}
	r.Fill(p, rr, s.compositor(gs.FillColor))
}

func (s *ImageSurface) reset() *raster.Rasteriser {
	b := s.Image.Bounds()
	s.r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	s.r.CTM = matrix.Identity
	return s.r
}

// compositor returns an emit function which blends col into the image,
// weighted by coverage.
func (s *ImageSurface) compositor(col color.Color) raster.EmitFunc {
	if col == nil {
		col = color.Black
	}
	// premultiplied, 16 bits per channel
	sr, sg, sb, sa := col.RGBA()
	img := s.Image
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			if c <= 0 {
				continue
			}
			px := row[4*i : 4*i+4 : 4*i+4]
			a := float32(sa) / 0xffff * c
			px[0] = blend(px[0], sr, c, a)
			px[1] = blend(px[1], sg, c, a)
			px[2] = blend(px[2], sb, c, a)
			px[3] = blend(px[3], sa, c, a)
		}
	}
}

// blend applies source-over to one premultiplied channel.
func blend(dst uint8, src uint32, coverage, alpha float32) uint8 {
	v := float32(src)/0x101*coverage + float32(dst)*(1-alpha)
	return uint8(min(max(v+0.5, 0), 255))
}

// WritePNG encodes the image as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image)
}
