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

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var curveCases = []TestCase{
	{
		Name:   "arc",
		Width:  256,
		Height: 256,
		Draw: func(ctx canvas.Context) error {
			return drawArc(ctx, toRadians(180), false)
		},
	},
	{
		Name:   "arc_negative",
		Width:  256,
		Height: 256,
		Draw: func(ctx canvas.Context) error {
			return drawArc(ctx, toRadians(-180), true)
		},
	},
	{
		Name:   "bubble",
		Width:  256,
		Height: 256,
		Draw:   drawBubble,
	},
	{
		Name:   "cubic_curve",
		Width:  256,
		Height: 256,
		Draw:   drawCubicCurve,
	},
}

// drawArc strokes an arc of radius 100 starting at 45 degrees, then marks
// the centre and the two end directions.
func drawArc(ctx canvas.Context, end float64, counterclockwise bool) error {
	const xc, yc, r = 128.0, 128.0, 100.0
	start := toRadians(45)

	ctx.SetLineWidth(10)
	ctx.SetLineCap(graphics.LineCapButt)
	ctx.SetStrokeColor(color.Black)
	ctx.BeginPath()
	if err := ctx.Arc(xc, yc, r, start, end, counterclockwise); err != nil {
		return err
	}
	ctx.Stroke()

	ctx.SetStrokeColor(helperPink)
	ctx.SetFillColor(helperPink)
	ctx.SetLineWidth(6)
	ctx.BeginPath()
	ctx.MoveTo(xc, yc)
	ctx.LineTo(xc+math.Cos(start)*r, yc+math.Sin(start)*r)
	ctx.MoveTo(xc, yc)
	ctx.LineTo(xc+math.Cos(end)*r, yc+math.Sin(end)*r)
	ctx.Stroke()

	ctx.BeginPath()
	if err := ctx.Arc(xc, yc, 10, 0, 2*math.Pi, false); err != nil {
		return err
	}
	ctx.Fill(canvas.NonZero)
	return nil
}

// drawBubble strokes a speech bubble made of quadratic curves.
func drawBubble(ctx canvas.Context) error {
	ctx.BeginPath()
	ctx.MoveTo(75, 25)
	ctx.QuadraticCurveTo(25, 25, 25, 62.5)
	ctx.QuadraticCurveTo(25, 100, 50, 100)
	ctx.QuadraticCurveTo(50, 120, 30, 125)
	ctx.QuadraticCurveTo(60, 120, 65, 100)
	ctx.QuadraticCurveTo(125, 100, 125, 62.5)
	ctx.QuadraticCurveTo(125, 25, 75, 25)
	ctx.Stroke()
	return nil
}

// drawCubicCurve strokes a cubic Bézier curve together with its control
// polygon.
func drawCubicCurve(ctx canvas.Context) error {
	x0, y0 := 25.6, 128.0
	x1, y1 := 102.4, 230.4
	x2, y2 := 153.6, 25.6
	x3, y3 := 230.4, 128.0

	ctx.SetLineWidth(10)
	ctx.BeginPath()
	ctx.MoveTo(x0, y0)
	ctx.BezierCurveTo(x1, y1, x2, y2, x3, y3)
	ctx.Stroke()

	ctx.SetStrokeColor(helperPink)
	ctx.SetLineWidth(6)
	ctx.BeginPath()
	ctx.MoveTo(x0, y0)
	ctx.LineTo(x1, y1)
	ctx.LineTo(x2, y2)
	ctx.LineTo(x3, y3)
	ctx.Stroke()
	return nil
}
