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

package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/canvas"
)

var fillCases = []TestCase{
	{
		Name:   "fill_stroke",
		Width:  256,
		Height: 256,
		Draw:   drawFillStroke,
	},
	{
		Name:   "fill_rule",
		Width:  256,
		Height: 256,
		Draw:   drawFillRule,
	},
	{
		Name:   "round_rectangle",
		Width:  256,
		Height: 256,
		Draw:   drawRoundRectangle,
	},
	{
		Name:   "curve_rectangle",
		Width:  256,
		Height: 256,
		Draw:   drawCurveRectangle,
	},
}

// drawFillStroke fills and then strokes a path made of two closed
// subpaths.
func drawFillStroke(ctx canvas.Context) error {
	ctx.BeginPath()
	ctx.MoveTo(128, 25.6)
	ctx.LineTo(230.4, 230.4)
	ctx.LineTo(128, 230.4)
	ctx.BezierCurveTo(51.2, 230.4, 51.2, 128, 128, 128)
	ctx.ClosePath()

	ctx.MoveTo(64, 25.6)
	ctx.LineTo(115.2, 76.8)
	ctx.LineTo(64, 128)
	ctx.LineTo(12.8, 76.8)
	ctx.ClosePath()

	ctx.SetLineWidth(10)
	ctx.SetFillColor(color.NRGBA{B: 0xFF, A: 0xFF})
	ctx.SetStrokeColor(color.Black)
	ctx.Fill(canvas.NonZero)
	ctx.Stroke()
	return nil
}

// drawFillRule fills a bar with two wheels twice.  In the upper copy both
// wheels turn the same way and the even-odd rule leaves holes.  In the
// lower copy the second wheel turns the other way and the non-zero rule
// leaves a hole only there.
func drawFillRule(ctx canvas.Context) error {
	ctx.SetLineWidth(6)
	ctx.SetStrokeColor(color.Black)

	wheels := func(y float64, secondCCW bool) error {
		ctx.BeginPath()
		ctx.Rect(12, y-52, 232, 58)
		ctx.MoveTo(104, y)
		if err := ctx.Arc(64, y, 40, 0, 2*math.Pi, false); err != nil {
			return err
		}
		ctx.MoveTo(232, y)
		return ctx.Arc(192, y, 40, 0, 2*math.Pi, secondCCW)
	}

	if err := wheels(64, false); err != nil {
		return err
	}
	ctx.SetFillColor(color.NRGBA{G: 0xB2, A: 0xFF})
	ctx.Fill(canvas.EvenOdd)
	ctx.Stroke()

	if err := wheels(192, true); err != nil {
		return err
	}
	ctx.SetFillColor(color.NRGBA{B: 0xE5, A: 0xFF})
	ctx.Fill(canvas.NonZero)
	ctx.Stroke()
	return nil
}

// drawRoundRectangle builds a rectangle with rounded corners from four
// quarter arcs.
func drawRoundRectangle(ctx canvas.Context) error {
	x, y := 25.6, 25.6
	w, h := 204.8, 204.8
	r := h / 10

	ctx.BeginPath()
	corners := []struct{ cx, cy, start float64 }{
		{x + w - r, y + r, -90},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 90},
		{x + r, y + r, 180},
	}
	for _, c := range corners {
		err := ctx.Arc(c.cx, c.cy, r, toRadians(c.start), toRadians(c.start+90), false)
		if err != nil {
			return err
		}
	}
	ctx.ClosePath()

	ctx.SetFillColor(lightBlue)
	ctx.SetStrokeColor(darkRedHalf)
	ctx.SetLineWidth(10)
	ctx.Fill(canvas.NonZero)
	ctx.Stroke()
	return nil
}

// drawCurveRectangle approximates a rounded square by Bézier curves whose
// control points sit on the corners.  The radius is larger than half the
// side, so the shape becomes a pillow.
func drawCurveRectangle(ctx canvas.Context) error {
	x0, y0 := 25.6, 25.6
	x1, y1 := x0+204.8, y0+204.8
	xm, ym := (x0+x1)/2, (y0+y1)/2

	ctx.BeginPath()
	ctx.MoveTo(x0, ym)
	ctx.BezierCurveTo(x0, y0, x0, y0, xm, y0)
	ctx.BezierCurveTo(x1, y0, x1, y0, x1, ym)
	ctx.BezierCurveTo(x1, y1, x1, y1, xm, y1)
	ctx.BezierCurveTo(x0, y1, x0, y1, x0, ym)
	ctx.ClosePath()

	ctx.SetFillColor(lightBlue)
	ctx.SetStrokeColor(darkRedHalf)
	ctx.SetLineWidth(10)
	ctx.Fill(canvas.NonZero)
	ctx.Stroke()
	return nil
}
