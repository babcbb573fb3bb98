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

// Package canvas implements a 2D drawing context with the semantics of the
// HTML canvas element: a current path built under an affine transform,
// a save/restore stack for the graphics state, and stroke and fill
// operations which hand the result to a backend.
//
// Path points are mapped to device space when they are added, so later
// changes of the transform do not move them.  The pen used by Stroke is
// shaped by the transform in force at stroke time.
//
// Backends implement [Painter].  This package provides [ImageSurface],
// which paints into an [image.RGBA] using the rasteriser from
// seehuhn.de/go/canvas/raster.
package canvas

//go:generate go run ./testcases/export

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// Context is the drawing interface exposed by a surface.
type Context interface {
	// Save pushes a copy of the graphics state onto the state stack.
	Save()
	// Restore pops the state stack.  Without a matching Save, Restore
	// does nothing.
	Restore()

	Translate(tx, ty float64)
	// Rotate turns the user space by angle radians.  With the y axis
	// pointing down, positive angles turn clockwise on screen.
	Rotate(angle float64)
	Scale(sx, sy float64)
	// Transform applies m to user space, before the current transform.
	Transform(m matrix.Matrix)
	// SetTransform replaces the current transform.
	SetTransform(m matrix.Matrix)

	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)
	SetMiterLimit(limit float64)
	// SetLineDash sets the dash pattern.  An empty pattern gives solid
	// lines.
	SetLineDash(pattern []float64, offset float64) error
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	// Arc adds a circular arc around (cx, cy), from startAngle to
	// endAngle, connected to the current point by a straight line.
	Arc(cx, cy, radius, startAngle, endAngle float64, counterclockwise bool) error
	Rect(x, y, w, h float64)
	ClosePath()

	// Stroke paints the current path with the pen.  The path is kept.
	Stroke()
	// Fill paints the interior of the current path.  The path is kept.
	Fill(rule FillRule)
}

// FillRule selects how the interior of a path is determined.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

var (
	// ErrNegativeRadius is returned by Arc for a negative radius.
	ErrNegativeRadius = errors.New("negative arc radius")

	// ErrNegativeDash is returned by SetLineDash for a pattern with
	// negative or non-finite entries.
	ErrNegativeDash = errors.New("invalid dash pattern")
)
