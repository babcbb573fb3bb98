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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

var strokeCases = []TestCase{
	{
		Name:   "line_cap",
		Width:  256,
		Height: 256,
		Draw:   drawLineCap,
	},
	{
		Name:   "line_join",
		Width:  256,
		Height: 256,
		Draw:   drawLineJoin,
	},
	{
		Name:   "multi_segment_caps",
		Width:  256,
		Height: 256,
		Draw:   drawMultiSegmentCaps,
	},
	{
		Name:   "dash",
		Width:  256,
		Height: 256,
		Draw:   drawDash,
	},
}

// drawLineCap draws three vertical lines with butt, round and square caps,
// and thin helper lines marking the path of each.
func drawLineCap(ctx canvas.Context) error {
	ctx.SetLineWidth(30)
	caps := []graphics.LineCapStyle{
		graphics.LineCapButt,
		graphics.LineCapRound,
		graphics.LineCapSquare,
	}
	for i, style := range caps {
		x := 64 * float64(i+1)
		ctx.BeginPath()
		ctx.SetLineCap(style)
		ctx.MoveTo(x, 50)
		ctx.LineTo(x, 200)
		ctx.Stroke()
	}

	ctx.BeginPath()
	ctx.SetStrokeColor(helperRed)
	ctx.SetLineWidth(2.56)
	for i := range caps {
		x := 64 * float64(i+1)
		ctx.MoveTo(x, 50)
		ctx.LineTo(x, 200)
	}
	ctx.Stroke()
	return nil
}

// drawLineJoin draws three right-angled corners with miter, bevel and
// round joins.
func drawLineJoin(ctx canvas.Context) error {
	ctx.SetLineWidth(40.96)
	joins := []graphics.LineJoinStyle{
		graphics.LineJoinMiter,
		graphics.LineJoinBevel,
		graphics.LineJoinRound,
	}
	for i, style := range joins {
		x, y := 76.8, 84.48+76.8*float64(i)
		ctx.BeginPath()
		ctx.MoveTo(x, y)
		ctx.LineTo(x+51.2, y-51.2)
		ctx.LineTo(x+102.4, y)
		ctx.SetLineJoin(style)
		ctx.Stroke()
	}
	return nil
}

// drawMultiSegmentCaps strokes three separate subpaths at once.  Every
// subpath gets its own caps.
func drawMultiSegmentCaps(ctx canvas.Context) error {
	ctx.BeginPath()
	for _, y := range []float64{75, 125, 175} {
		ctx.MoveTo(50, y)
		ctx.LineTo(200, y)
	}
	ctx.SetLineWidth(30)
	ctx.SetLineCap(graphics.LineCapRound)
	ctx.Stroke()
	return nil
}

// drawDash strokes a path of lines and a curve with a dash pattern and a
// negative dash offset.
func drawDash(ctx canvas.Context) error {
	if err := ctx.SetLineDash([]float64{50, 10, 10, 10}, -50); err != nil {
		return err
	}
	ctx.SetLineCap(graphics.LineCapButt)
	ctx.SetLineJoin(graphics.LineJoinBevel)
	ctx.SetLineWidth(10)

	ctx.BeginPath()
	ctx.MoveTo(128, 25.6)
	ctx.LineTo(230.4, 230.4)
	ctx.LineTo(128, 230.4)
	ctx.BezierCurveTo(51.2, 230.4, 51.2, 128, 128, 128)
	ctx.Stroke()

	return ctx.SetLineDash(nil, 0)
}
