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
	"fmt"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// State is the part of a Canvas which Save and Restore preserve.
// The current path is not part of the state.
type State struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// LineWidth is the pen width in user space.
	LineWidth float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash has an even number of entries, alternating between drawn and
	// skipped lengths.  Nil means a solid line.
	Dash       []float64
	DashOffset float64

	StrokeColor color.Color
	FillColor   color.Color
}

// DefaultState returns the state of a fresh canvas: identity transform,
// a solid black pen of width 1 with butt caps and miter joins, and a black
// fill.
func DefaultState() State {
	return State{
		CTM:         matrix.Identity,
		LineWidth:   1,
		Cap:         graphics.LineCapButt,
		Join:        graphics.LineJoinMiter,
		MiterLimit:  10,
		StrokeColor: color.Black,
		FillColor:   color.Black,
	}
}

// clone returns a copy which shares no memory with s.
func (s State) clone() State {
	s.Dash = slices.Clone(s.Dash)
	return s
}

// CSSColor formats c as a CSS colour string: "#rrggbb" for opaque colours
// and "rgba(r,g,b,a)" otherwise.  A nil colour gives black.
func CSSColor(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, float64(n.A)/255)
}
