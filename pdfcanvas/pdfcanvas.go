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

// Package pdfcanvas provides a drawing surface which writes a single-page
// PDF file.
//
// Strokes are written in user space under the transform in force at stroke
// time, so that the PDF viewer shapes the pen exactly.  Colours are
// written as DeviceGray, using the luminance of the requested colour.
// Translucent colours are flattened against white.
package pdfcanvas

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/canvas"
)

// Surface is a canvas surface backed by a PDF page.
// The page is written when Close is called.
type Surface struct {
	page   *document.Page
	width  float64
	height float64
	ctx    *canvas.Canvas
}

var (
	_ canvas.Surface = (*Surface)(nil)
	_ canvas.Painter = (*Surface)(nil)
)

// Create starts a PDF file with a single page of the given size.  One
// pixel of the canvas corresponds to one PDF point.
func Create(fileName string, width, height int) (*Surface, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	s := &Surface{
		page:   page,
		width:  float64(width),
		height: float64(height),
	}

	// white background, like a fresh canvas element
	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, s.width, s.height)
	page.Fill()

	// PDF origin is bottom-left; canvas coordinates have y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, s.height})

	return s, nil
}

// Context2D returns the drawing context of the surface.  Repeated calls
// return the same context.
func (s *Surface) Context2D() (canvas.Context, bool) {
	if s.ctx == nil {
		s.ctx = canvas.New(s)
	}
	return s.ctx, true
}

// StrokePath implements the [canvas.Painter] interface.
func (s *Surface) StrokePath(p *path.Data, gs *canvas.State) {
	if canvas.Singular(gs.CTM) {
		return
	}
	user := canvas.TransformPath(p, gs.CTM.Inv())

	page := s.page
	page.PushGraphicsState()
	page.Transform(gs.CTM)
	page.SetStrokeColor(pdfcolor.DeviceGray(gray(gs.StrokeColor)))
	page.SetLineWidth(gs.LineWidth)
	page.SetLineCap(gs.Cap)
	page.SetLineJoin(gs.Join)
	page.SetMiterLimit(gs.MiterLimit)
	if len(gs.Dash) > 0 {
		page.SetLineDash(gs.Dash, gs.DashOffset)
	}
	s.writePath(user)
	page.Stroke()
	page.PopGraphicsState()
}

// FillPath implements the [canvas.Painter] interface.
func (s *Surface) FillPath(p *path.Data, rule canvas.FillRule, gs *canvas.State) {
	page := s.page
	page.PushGraphicsState()
	page.SetFillColor(pdfcolor.DeviceGray(gray(gs.FillColor)))
	s.writePath(p)
	if rule == canvas.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}
	page.PopGraphicsState()
}

// writePath emits p as PDF path construction operators.  PDF has no
// quadratic curves, so these are elevated to cubics.
func (s *Surface) writePath(p *path.Data) {
	page := s.page
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		c := p.Coords[k:]
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(c[0].X, c[0].Y)
			cur, start = c[0], c[0]
			k++
		case path.CmdLineTo:
			page.LineTo(c[0].X, c[0].Y)
			cur = c[0]
			k++
		case path.CmdQuadTo:
			c1 := cur.Add(c[0].Sub(cur).Mul(2.0 / 3))
			c2 := c[1].Add(c[0].Sub(c[1]).Mul(2.0 / 3))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, c[1].X, c[1].Y)
			cur = c[1]
			k += 2
		case path.CmdCubeTo:
			page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			cur = c[2]
			k += 3
		case path.CmdClose:
			page.ClosePath()
			cur = start
		}
	}
}

// Close writes the PDF file.
func (s *Surface) Close() error {
	return s.page.Close()
}

// gray converts c to a PDF grey level.  The luminance weights are those
// of the image/color package, and a translucent colour is replaced by the
// grey it would give over a white background.
func gray(c color.Color) float64 {
	if c == nil {
		return 0
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	y := (0.299*float64(n.R) + 0.587*float64(n.G) + 0.114*float64(n.B)) / 0xffff
	a := float64(n.A) / 0xffff
	return y*a + (1 - a)
}
