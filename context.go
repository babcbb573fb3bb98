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
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Painter is implemented by drawing backends.
//
// The path is given in device space.  A painter which needs the path in
// user space, for example to build the pen, maps it back with the inverse
// of gs.CTM.  Painters must not retain p or gs after the call returns.
type Painter interface {
	StrokePath(p *path.Data, gs *State)
	FillPath(p *path.Data, rule FillRule, gs *State)
}

// Canvas is the standard implementation of [Context].
// A Canvas is not safe for concurrent use.
type Canvas struct {
	painter Painter

	state State
	stack []State

	path *path.Data

	// current point and start of the current subpath, in device space
	cur, start vec.Vec2
	hasCurrent bool
	// After ClosePath the next segment starts a new subpath at cur.
	needMove bool
}

var _ Context = (*Canvas)(nil)

// New returns a Canvas which paints through p.
func New(p Painter) *Canvas {
	return &Canvas{
		painter: p,
		state:   DefaultState(),
		path:    &path.Data{},
	}
}

// State returns a copy of the current graphics state.
func (c *Canvas) State() State {
	return c.state.clone()
}

// Path returns the current path, in device space.
// The result is only valid until the next path operation.
func (c *Canvas) Path() *path.Data {
	return c.path
}

// Depth returns the number of states on the save/restore stack.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state.clone())
}

func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Translate(tx, ty float64) {
	c.Transform(matrix.Translate(tx, ty))
}

func (c *Canvas) Rotate(angle float64) {
	c.Transform(matrix.Rotate(angle))
}

func (c *Canvas) Scale(sx, sy float64) {
	c.Transform(matrix.Scale(sx, sy))
}

func (c *Canvas) Transform(m matrix.Matrix) {
	if !finite(m[:]...) {
		return
	}
	c.state.CTM = m.Mul(c.state.CTM)
}

func (c *Canvas) SetTransform(m matrix.Matrix) {
	if !finite(m[:]...) {
		return
	}
	c.state.CTM = m
}

// SetLineWidth sets the pen width.  Zero, negative and non-finite values
// are ignored.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && finite(w) {
		c.state.LineWidth = w
	}
}

func (c *Canvas) SetLineCap(style graphics.LineCapStyle) {
	c.state.Cap = style
}

func (c *Canvas) SetLineJoin(style graphics.LineJoinStyle) {
	c.state.Join = style
}

// SetMiterLimit sets the miter limit.  Zero, negative and non-finite
// values are ignored.
func (c *Canvas) SetMiterLimit(limit float64) {
	if limit > 0 && finite(limit) {
		c.state.MiterLimit = limit
	}
}

// SetLineDash sets the dash pattern.  A pattern with an odd number of
// entries is repeated to make the number even.  If any entry is negative
// or not finite, the state is unchanged and ErrNegativeDash is returned.
func (c *Canvas) SetLineDash(pattern []float64, offset float64) error {
	for _, d := range pattern {
		if d < 0 || !finite(d) {
			return ErrNegativeDash
		}
	}
	if !finite(offset) {
		return ErrNegativeDash
	}

	var dash []float64
	if len(pattern) > 0 {
		dash = append(dash, pattern...)
		if len(pattern)%2 == 1 {
			dash = append(dash, pattern...)
		}
	}
	c.state.Dash = dash
	c.state.DashOffset = offset
	return nil
}

func (c *Canvas) SetStrokeColor(col color.Color) {
	c.state.StrokeColor = col
}

func (c *Canvas) SetFillColor(col color.Color) {
	c.state.FillColor = col
}

func (c *Canvas) BeginPath() {
	c.path = &path.Data{}
	c.hasCurrent = false
	c.needMove = false
}

func (c *Canvas) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	p := apply(c.state.CTM, x, y)
	c.path.MoveTo(p)
	c.cur, c.start = p, p
	c.hasCurrent = true
	c.needMove = false
}

// LineTo adds a straight line to (x, y).  If there is no current point,
// LineTo acts like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.reopen()
	p := apply(c.state.CTM, x, y)
	c.path.LineTo(p)
	c.cur = p
}

// QuadraticCurveTo adds a quadratic Bézier curve.  It is stored as the
// equivalent cubic curve.
func (c *Canvas) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if !finite(cpx, cpy, x, y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(cpx, cpy)
	}
	c.reopen()
	ctrl := apply(c.state.CTM, cpx, cpy)
	p := apply(c.state.CTM, x, y)
	c1 := c.cur.Add(ctrl.Sub(c.cur).Mul(2.0 / 3))
	c2 := p.Add(ctrl.Sub(p).Mul(2.0 / 3))
	c.path.CubeTo(c1, c2, p)
	c.cur = p
}

func (c *Canvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !finite(cp1x, cp1y, cp2x, cp2y, x, y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(cp1x, cp1y)
	}
	c.reopen()
	m := c.state.CTM
	p := apply(m, x, y)
	c.path.CubeTo(apply(m, cp1x, cp1y), apply(m, cp2x, cp2y), p)
	c.cur = p
}

// Rect adds a closed rectangle as a new subpath.  Afterwards the current
// point is (x, y).
func (c *Canvas) Rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// ClosePath closes the current subpath.  The current point moves back to
// the start of the subpath.
func (c *Canvas) ClosePath() {
	if !c.hasCurrent || c.needMove {
		return
	}
	c.path.Close()
	c.cur = c.start
	c.needMove = true
}

// reopen starts a new subpath at the current point after ClosePath.
func (c *Canvas) reopen() {
	if c.needMove {
		c.path.MoveTo(c.cur)
		c.start = c.cur
		c.needMove = false
	}
}

func (c *Canvas) Stroke() {
	if len(c.path.Cmds) == 0 {
		return
	}
	if Singular(c.state.CTM) {
		return
	}
	c.painter.StrokePath(c.path, &c.state)
}

func (c *Canvas) Fill(rule FillRule) {
	if len(c.path.Cmds) == 0 {
		return
	}
	c.painter.FillPath(c.path, rule, &c.state)
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
