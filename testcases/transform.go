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
	"math"

	"seehuhn.de/go/canvas"
)

var transformCases = []TestCase{
	{
		Name:   "star",
		Width:  256,
		Height: 256,
		Draw:   drawStar,
	},
	{
		Name:   "transform",
		Width:  800,
		Height: 600,
		Draw:   drawTransform,
	},
	{
		Name:   "path_transform",
		Width:  800,
		Height: 600,
		Draw:   drawPathTransform,
	},
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// drawStar draws 36 rays of length 72 around (144, 144), one every 10
// degrees.
func drawStar(ctx canvas.Context) error {
	for i := 0; i < 360; i += 10 {
		ctx.BeginPath()
		ctx.Save() // keep the rotation temporary
		ctx.SetLineWidth(5)
		ctx.Translate(144, 144)
		ctx.Rotate(toRadians(float64(i)))
		ctx.MoveTo(0, 0)
		ctx.LineTo(72, 0)
		ctx.Stroke()
		ctx.Restore()
	}
	return nil
}

// drawTransform draws the same 72×72 box under four transforms.
func drawTransform(ctx canvas.Context) error {
	box := func() {
		ctx.BeginPath()
		ctx.MoveTo(0, 0)
		ctx.LineTo(72, 0)
		ctx.LineTo(72, 72)
		ctx.LineTo(0, 72)
		ctx.ClosePath()
		ctx.Stroke()
	}

	ctx.Save()
	ctx.Translate(40, 40)
	box()
	ctx.Restore()

	ctx.Save()
	ctx.Translate(100, 150)
	ctx.Rotate(toRadians(30))
	box()
	ctx.Restore()

	ctx.Save()
	ctx.Translate(40, 300)
	ctx.Scale(0.5, 1)
	box()
	ctx.Restore()

	ctx.Save()
	ctx.Translate(300, 300)
	ctx.Rotate(toRadians(45))
	ctx.Scale(0.5, 1)
	box()
	ctx.Restore()

	return nil
}

// drawPathTransform changes the transform while a path is being built.
// The first two points keep their place, the third is stretched, and the
// whole line is stroked with a pen stretched by the scale.  The circle
// which follows is drawn entirely under the scale.
func drawPathTransform(ctx canvas.Context) error {
	ctx.SetLineWidth(20)
	ctx.MoveTo(0, 100)
	ctx.LineTo(100, 100)
	ctx.Scale(1, 4)
	ctx.LineTo(200, 100)
	ctx.Stroke()

	ctx.BeginPath()
	if err := ctx.Arc(200, 50, 50, 0, 6.28, false); err != nil {
		return err
	}
	ctx.Stroke()
	return nil
}
