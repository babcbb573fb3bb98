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

// Package ggcanvas provides a drawing surface which renders with
// github.com/fogleman/gg.
//
// Paths are handed to gg in device space.  The pen is circular with its
// width scaled by [canvas.PenScale], so non-uniform transforms give an
// approximate result.  gg has no miter joins; these are drawn as bevel
// joins.
package ggcanvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// Surface is a canvas surface backed by a gg context.
type Surface struct {
	DC *gg.Context

	ctx *canvas.Canvas
}

var (
	_ canvas.Surface = (*Surface)(nil)
	_ canvas.Painter = (*Surface)(nil)
)

// NewSurface returns a surface of the given size, filled with white.
func NewSurface(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return &Surface{DC: dc}
}

// Context2D returns the drawing context of the surface.  Repeated calls
// return the same context.
func (s *Surface) Context2D() (canvas.Context, bool) {
	if s.ctx == nil {
		s.ctx = canvas.New(s)
	}
	return s.ctx, true
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.DC.Image()
}

// WritePNG encodes the image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.DC.Image())
}

// StrokePath implements the [canvas.Painter] interface.
func (s *Surface) StrokePath(p *path.Data, gs *canvas.State) {
	scale := canvas.PenScale(gs.CTM)
	if !(scale > 0) {
		return
	}

	dc := s.DC
	dc.SetColor(orBlack(gs.StrokeColor))
	dc.SetLineWidth(gs.LineWidth * scale)
	switch gs.Cap {
	case graphics.LineCapRound:
		dc.SetLineCap(gg.LineCapRound)
	case graphics.LineCapSquare:
		dc.SetLineCap(gg.LineCapSquare)
	default:
		dc.SetLineCap(gg.LineCapButt)
	}
	if gs.Join == graphics.LineJoinRound {
		dc.SetLineJoin(gg.LineJoinRound)
	} else {
		dc.SetLineJoin(gg.LineJoinBevel)
	}
	dc.SetDash(shiftDash(gs.Dash, gs.DashOffset, scale)...)

	s.setPath(p)
	dc.Stroke()
}

// FillPath implements the [canvas.Painter] interface.
func (s *Surface) FillPath(p *path.Data, rule canvas.FillRule, gs *canvas.State) {
	dc := s.DC
	dc.SetColor(orBlack(gs.FillColor))
	if rule == canvas.EvenOdd {
		dc.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		dc.SetFillRule(gg.FillRuleWinding)
	}
	s.setPath(p)
	dc.Fill()
}

func (s *Surface) setPath(p *path.Data) {
	dc := s.DC
	dc.ClearPath()
	k := 0
	for _, cmd := range p.Cmds {
		c := p.Coords[k:]
		switch cmd {
		case path.CmdMoveTo:
			dc.MoveTo(c[0].X, c[0].Y)
			k++
		case path.CmdLineTo:
			dc.LineTo(c[0].X, c[0].Y)
			k++
		case path.CmdQuadTo:
			dc.QuadraticTo(c[0].X, c[0].Y, c[1].X, c[1].Y)
			k += 2
		case path.CmdCubeTo:
			dc.CubicTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			k += 3
		case path.CmdClose:
			dc.ClosePath()
		}
	}
}

// shiftDash returns the dash pattern scaled to device space, rotated so
// that it starts at the given offset.  A pattern which would start inside
// a gap is prefixed with an empty dash, which shows as a dot if the line
// has round or square caps.
func shiftDash(pattern []float64, offset, scale float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if !(total > 0) {
		return nil
	}

	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}
	i := 0
	for phase >= pattern[i] {
		phase -= pattern[i]
		i = (i + 1) % len(pattern)
	}

	res := make([]float64, 0, len(pattern)+2)
	if i%2 == 1 {
		res = append(res, 0)
	}
	res = append(res, pattern[i]-phase)
	for j := 1; j < len(pattern); j++ {
		res = append(res, pattern[(i+j)%len(pattern)])
	}
	if phase > 0 {
		res = append(res, phase)
	}
	if len(res)%2 == 1 {
		// The last entry runs on into the first one of the next period.
		res = append(res, 0)
	}
	for j := range res {
		res[j] *= scale
	}
	return res
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
