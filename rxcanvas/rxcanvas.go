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

// Package rxcanvas provides a drawing surface which renders with
// github.com/srwiley/rasterx.
//
// Paths are handed to rasterx in device space, in 26.6 fixed point.  As
// with every device space backend, the pen is circular with its width
// scaled by [canvas.PenScale].  Strokes and non-zero fills are scanned by
// rasterx.ScannerGV; even-odd fills are flattened by rasterx and scanned
// by the raster package, since ScannerGV only knows the non-zero rule.
package rxcanvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// Surface is a canvas surface which paints into an RGBA image.
type Surface struct {
	Image *image.RGBA

	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
	eoFill  *rasterx.Filler
	ctx     *canvas.Canvas
}

var (
	_ canvas.Surface = (*Surface)(nil)
	_ canvas.Painter = (*Surface)(nil)
)

// NewSurface returns a surface of the given size, filled with white.
func NewSurface(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Surface{
		Image:   img,
		scanner: scanner,
		filler:  rasterx.NewFiller(width, height, scanner),
		dasher:  rasterx.NewDasher(width, height, scanner),
		eoFill:  rasterx.NewFiller(width, height, newWindingScanner(img)),
	}
}

// Context2D returns the drawing context of the surface.  Repeated calls
// return the same context.
func (s *Surface) Context2D() (canvas.Context, bool) {
	if s.ctx == nil {
		s.ctx = canvas.New(s)
	}
	return s.ctx, true
}

// WritePNG encodes the image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image)
}

var capFuncs = map[graphics.LineCapStyle]rasterx.CapFunc{
	graphics.LineCapButt:   rasterx.ButtCap,
	graphics.LineCapRound:  rasterx.RoundCap,
	graphics.LineCapSquare: rasterx.SquareCap,
}

var joinModes = map[graphics.LineJoinStyle]rasterx.JoinMode{
	graphics.LineJoinMiter: rasterx.Miter,
	graphics.LineJoinRound: rasterx.Round,
	graphics.LineJoinBevel: rasterx.Bevel,
}

// StrokePath implements the [canvas.Painter] interface.
func (s *Surface) StrokePath(p *path.Data, gs *canvas.State) {
	scale := canvas.PenScale(gs.CTM)
	if !(scale > 0) {
		return
	}

	capFn, ok := capFuncs[gs.Cap]
	if !ok {
		capFn = rasterx.ButtCap
	}
	join, ok := joinModes[gs.Join]
	if !ok {
		join = rasterx.Miter
	}
	var dash []float64
	for _, d := range gs.Dash {
		dash = append(dash, d*scale)
	}

	d := s.dasher
	d.Clear()
	d.SetStroke(
		toFixed(gs.LineWidth*scale), toFixed(gs.MiterLimit),
		capFn, capFn, rasterx.FlatGap, join,
		dash, gs.DashOffset*scale,
	)
	addPath(d, p)
	s.scanner.SetColor(orBlack(gs.StrokeColor))
	d.Draw()
}

// FillPath implements the [canvas.Painter] interface.
func (s *Surface) FillPath(p *path.Data, rule canvas.FillRule, gs *canvas.State) {
	f := s.filler
	if rule == canvas.EvenOdd {
		f = s.eoFill
	}
	f.Clear()
	f.SetWinding(rule == canvas.NonZero)
	addPath(f, p)
	f.SetColor(orBlack(gs.FillColor))
	f.Draw()
}

// adder is the path building part of the rasterx Filler and Dasher.
type adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

func addPath(a adder, p *path.Data) {
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		c := p.Coords[k:]
		switch cmd {
		case path.CmdMoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toPoint(c[0].X, c[0].Y))
			open = true
			k++
		case path.CmdLineTo:
			a.Line(toPoint(c[0].X, c[0].Y))
			k++
		case path.CmdQuadTo:
			a.QuadBezier(toPoint(c[0].X, c[0].Y), toPoint(c[1].X, c[1].Y))
			k += 2
		case path.CmdCubeTo:
			a.CubeBezier(toPoint(c[0].X, c[0].Y), toPoint(c[1].X, c[1].Y), toPoint(c[2].X, c[2].Y))
			k += 3
		case path.CmdClose:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

func toPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
