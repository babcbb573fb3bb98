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

// Package testcases holds the visual test routines for the drawing
// context, and the dispatcher which runs them on named surfaces.
//
// Each routine draws into a canvas.Context; a developer inspects the
// result to judge rendering correctness.  The routines only use the
// Context interface, so the same drawing can be sent to any backend or
// recorded for comparison.
package testcases

import (
	"image/color"

	"seehuhn.de/go/canvas"
)

// TestCase defines a single drawing routine.
type TestCase struct {
	Name   string // lowercase a-z and _ only; also the surface id
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Draw issues the drawing commands.
	Draw func(ctx canvas.Context) error
}

// Document looks up surfaces by name.
type Document interface {
	ElementByID(id string) (canvas.Surface, bool)
}

// helper colours, as used by the draw2d examples
var (
	helperRed   = color.NRGBA{R: 0xFF, G: 0x33, B: 0x33, A: 0xFF}
	helperPink  = color.NRGBA{R: 0xFF, G: 0x33, B: 0x33, A: 0x80}
	lightBlue   = color.NRGBA{R: 0x80, G: 0x80, B: 0xFF, A: 0xFF}
	darkRedHalf = color.NRGBA{R: 0x80, A: 0x80}
)
