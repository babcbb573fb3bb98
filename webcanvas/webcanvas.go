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

//go:build js && wasm

// Package webcanvas connects the drawing context to HTML canvas elements,
// when running as WebAssembly in a browser.
package webcanvas

import (
	"image/color"
	"math"
	"syscall/js"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// Document gives access to the elements of an HTML document.
type Document struct {
	doc js.Value
}

// Global returns the document of the current page.
func Global() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// ElementByID returns the element with the given id.  Any element is
// returned; Context2D reports whether it can be drawn on.
func (d *Document) ElementByID(id string) (canvas.Surface, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &Element{el: el}, true
}

// Element is an HTML element.
type Element struct {
	el js.Value
}

// Context2D returns the 2D context of a canvas element.  For other
// elements, or if the browser refuses a 2D context, the second return
// value is false.
func (e *Element) Context2D() (canvas.Context, bool) {
	if e.el.Get("getContext").Type() != js.TypeFunction {
		return nil, false
	}
	ctx := e.el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, false
	}
	return &Context{v: ctx}, true
}

// Context forwards drawing commands to a CanvasRenderingContext2D.
type Context struct {
	v js.Value
}

var _ canvas.Context = (*Context)(nil)

func (c *Context) Save() { c.v.Call("save") }
func (c *Context) Restore() { c.v.Call("restore") }

func (c *Context) Translate(tx, ty float64) { c.v.Call("translate", tx, ty) }
func (c *Context) Rotate(angle float64) { c.v.Call("rotate", angle) }
func (c *Context) Scale(sx, sy float64) { c.v.Call("scale", sx, sy) }

func (c *Context) Transform(m matrix.Matrix) {
	c.v.Call("transform", m[0], m[1], m[2], m[3], m[4], m[5])
}

func (c *Context) SetTransform(m matrix.Matrix) {
	c.v.Call("setTransform", m[0], m[1], m[2], m[3], m[4], m[5])
}

func (c *Context) SetLineWidth(w float64) { c.v.Set("lineWidth", w) }

func (c *Context) SetLineCap(style graphics.LineCapStyle) {
	switch style {
	case graphics.LineCapRound:
		c.v.Set("lineCap", "round")
	case graphics.LineCapSquare:
		c.v.Set("lineCap", "square")
	default:
		c.v.Set("lineCap", "butt")
	}
}

func (c *Context) SetLineJoin(style graphics.LineJoinStyle) {
	switch style {
	case graphics.LineJoinRound:
		c.v.Set("lineJoin", "round")
	case graphics.LineJoinBevel:
		c.v.Set("lineJoin", "bevel")
	default:
		c.v.Set("lineJoin", "miter")
	}
}

func (c *Context) SetMiterLimit(limit float64) { c.v.Set("miterLimit", limit) }

// SetLineDash sets the dash pattern.  Unlike the browser, which ignores
// invalid patterns silently, this reports them as ErrNegativeDash.
func (c *Context) SetLineDash(pattern []float64, offset float64) error {
	segments := make([]any, len(pattern))
	for i, d := range pattern {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return canvas.ErrNegativeDash
		}
		segments[i] = d
	}
	c.v.Call("setLineDash", segments)
	c.v.Set("lineDashOffset", offset)
	return nil
}

func (c *Context) SetStrokeColor(col color.Color) { c.v.Set("strokeStyle", canvas.CSSColor(col)) }
func (c *Context) SetFillColor(col color.Color) { c.v.Set("fillStyle", canvas.CSSColor(col)) }

func (c *Context) BeginPath() { c.v.Call("beginPath") }
func (c *Context) MoveTo(x, y float64) { c.v.Call("moveTo", x, y) }
func (c *Context) LineTo(x, y float64) { c.v.Call("lineTo", x, y) }

func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.v.Call("quadraticCurveTo", cpx, cpy, x, y)
}

func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.v.Call("bezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
}

// Arc adds a circular arc to the path.  A negative radius, for which the
// browser would throw an exception, gives ErrNegativeRadius.
func (c *Context) Arc(cx, cy, radius, startAngle, endAngle float64, counterclockwise bool) error {
	if radius < 0 {
		return canvas.ErrNegativeRadius
	}
	c.v.Call("arc", cx, cy, radius, startAngle, endAngle, counterclockwise)
	return nil
}

func (c *Context) Rect(x, y, w, h float64) { c.v.Call("rect", x, y, w, h) }
func (c *Context) ClosePath() { c.v.Call("closePath") }
func (c *Context) Stroke() { c.v.Call("stroke") }

func (c *Context) Fill(rule canvas.FillRule) { c.v.Call("fill", rule.String()) }
