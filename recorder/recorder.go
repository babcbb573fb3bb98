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

// Package recorder provides a drawing context which records every call.
//
// The recorded operations can be compared against an expected sequence,
// written out as JSON, or logged.  A Recorder may forward all calls to a
// second context, so that a drawing can be traced while it is rendered.
package recorder

import (
	"fmt"
	"image/color"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// Op is one recorded call.
type Op struct {
	Name string `json:"op"`
	Args []any  `json:"args,omitempty"`
}

func (op Op) String() string {
	args := make([]string, len(op.Args))
	for i, a := range op.Args {
		args[i] = fmt.Sprint(a)
	}
	return op.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a [canvas.Context] which records the calls made on it.
type Recorder struct {
	// Ops holds the recorded calls, oldest first.
	Ops []Op

	next canvas.Context

	// OnOp, if set, is called for every recorded operation.
	OnOp func(Op)
}

var _ canvas.Context = (*Recorder)(nil)

// New returns a Recorder.  If next is not nil, every call is forwarded to
// it after recording.
func New(next canvas.Context) *Recorder {
	return &Recorder{next: next}
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how often the named operation was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) record(name string, args ...any) {
	op := Op{Name: name, Args: args}
	r.Ops = append(r.Ops, op)
	if r.OnOp != nil {
		r.OnOp(op)
	}
}

func (r *Recorder) Save() {
	r.record("save")
	if r.next != nil {
		r.next.Save()
	}
}

func (r *Recorder) Restore() {
	r.record("restore")
	if r.next != nil {
		r.next.Restore()
	}
}

func (r *Recorder) Translate(tx, ty float64) {
	r.record("translate", tx, ty)
	if r.next != nil {
		r.next.Translate(tx, ty)
	}
}

func (r *Recorder) Rotate(angle float64) {
	r.record("rotate", angle)
	if r.next != nil {
		r.next.Rotate(angle)
	}
}

func (r *Recorder) Scale(sx, sy float64) {
	r.record("scale", sx, sy)
	if r.next != nil {
		r.next.Scale(sx, sy)
	}
}

func (r *Recorder) Transform(m matrix.Matrix) {
	r.record("transform", m[0], m[1], m[2], m[3], m[4], m[5])
	if r.next != nil {
		r.next.Transform(m)
	}
}

func (r *Recorder) SetTransform(m matrix.Matrix) {
	r.record("setTransform", m[0], m[1], m[2], m[3], m[4], m[5])
	if r.next != nil {
		r.next.SetTransform(m)
	}
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record("lineWidth", w)
	if r.next != nil {
		r.next.SetLineWidth(w)
	}
}

func (r *Recorder) SetLineCap(style graphics.LineCapStyle) {
	r.record("lineCap", style.String())
	if r.next != nil {
		r.next.SetLineCap(style)
	}
}

func (r *Recorder) SetLineJoin(style graphics.LineJoinStyle) {
	r.record("lineJoin", style.String())
	if r.next != nil {
		r.next.SetLineJoin(style)
	}
}

func (r *Recorder) SetMiterLimit(limit float64) {
	r.record("miterLimit", limit)
	if r.next != nil {
		r.next.SetMiterLimit(limit)
	}
}

func (r *Recorder) SetLineDash(pattern []float64, offset float64) error {
	r.record("setLineDash", append([]float64(nil), pattern...), offset)
	if r.next != nil {
		return r.next.SetLineDash(pattern, offset)
	}
	return nil
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record("strokeStyle", canvas.CSSColor(c))
	if r.next != nil {
		r.next.SetStrokeColor(c)
	}
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.record("fillStyle", canvas.CSSColor(c))
	if r.next != nil {
		r.next.SetFillColor(c)
	}
}

func (r *Recorder) BeginPath() {
	r.record("beginPath")
	if r.next != nil {
		r.next.BeginPath()
	}
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("moveTo", x, y)
	if r.next != nil {
		r.next.MoveTo(x, y)
	}
}

func (r *Recorder) LineTo(x, y float64) {
	r.record("lineTo", x, y)
	if r.next != nil {
		r.next.LineTo(x, y)
	}
}

func (r *Recorder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.record("quadraticCurveTo", cpx, cpy, x, y)
	if r.next != nil {
		r.next.QuadraticCurveTo(cpx, cpy, x, y)
	}
}

func (r *Recorder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.record("bezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
	if r.next != nil {
		r.next.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
	}
}

func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64, counterclockwise bool) error {
	r.record("arc", cx, cy, radius, startAngle, endAngle, counterclockwise)
	if r.next != nil {
		return r.next.Arc(cx, cy, radius, startAngle, endAngle, counterclockwise)
	}
	if radius < 0 {
		return canvas.ErrNegativeRadius
	}
	return nil
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.record("rect", x, y, w, h)
	if r.next != nil {
		r.next.Rect(x, y, w, h)
	}
}

func (r *Recorder) ClosePath() {
	r.record("closePath")
	if r.next != nil {
		r.next.ClosePath()
	}
}

func (r *Recorder) Stroke() {
	r.record("stroke")
	if r.next != nil {
		r.next.Stroke()
	}
}

func (r *Recorder) Fill(rule canvas.FillRule) {
	r.record("fill", rule.String())
	if r.next != nil {
		r.next.Fill(rule)
	}
}
