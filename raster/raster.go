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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly from the signed area each edge sweeps inside
// a pixel, so adjacent shapes sharing an edge add up to full coverage
// without seams. Strokes are turned into a set of consistently oriented
// polygons (one per segment, join and cap) which are then filled with the
// non-zero rule.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how the interior of a self-overlapping path is found.
type FillRule int

const (
	// NonZero paints points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd paints points with an odd winding number.
	EvenOdd
)

// EmitFunc receives one row of coverage values. Coverage[i] belongs to
// pixel (xMin+i, y) and lies in [0, 1]. The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser turns paths into coverage rows.
// Internal buffers grow as needed and are reused between calls, so a single
// Rasteriser should be kept around for repeated drawing.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.
	// Stroke geometry is built in user space and then mapped through CTM,
	// so a non-uniform CTM distorts the pen.
	CTM matrix.Matrix

	// Clip restricts output to this device rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the shape drawn at the open ends of stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape drawn where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit is the maximal ratio between miter length and line width
	// before a miter join is drawn as a bevel.
	MiterLimit float64

	// Dash holds alternating on/off lengths in user space.
	// Nil means a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// stroke scratch space
	poly      []vec.Vec2 // vertices of all outline polygons
	polyStart []int      // start index of each polygon in poly
	runs      []run      // flattened subpaths
	pts       []vec.Vec2 // vertices of all runs
	dashPts   []vec.Vec2
	dashRuns  []run
}

// edge is a non-horizontal line segment in device space, stored top to
// bottom.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
// The remaining fields are set to the HTML canvas defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and installs a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// Fill paints the interior of p, using r.CTM to map p into device space.
// Open subpaths are closed implicitly.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.walk(p, r.addEdge, nil)
	r.scan(rule, emit)
}

// walk visits every segment of p in user space, flattening curves.
//
// If endSubpath is nil, every subpath is closed by a final segment back to
// its start, as needed for filling.  Otherwise only explicitly closed
// subpaths get the closing segment and endSubpath is called at the end of
// each subpath.
func (r *Rasteriser) walk(p *path.Data, line func(a, b vec.Vec2), endSubpath func(closed bool)) {
	var cur, start vec.Vec2
	open := false
	finish := func(closed bool) {
		if !open {
			return
		}
		if endSubpath == nil && cur != start {
			line(cur, start)
		}
		if endSubpath != nil {
			endSubpath(closed)
		}
		open = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			if !open {
				start, open = cur, true
			}
			line(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if !open {
				start, open = cur, true
			}
			c, q := p.Coords[k], p.Coords[k+1]
			// degree elevation: the same curve as a cubic
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := q.Add(c.Sub(q).Mul(2.0 / 3))
			r.flattenCubic(cur, c1, c2, q, line)
			cur = q
			k += 2
		case path.CmdCubeTo:
			if !open {
				start, open = cur, true
			}
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open && endSubpath != nil && cur != start {
				line(cur, start)
			}
			finish(true)
			cur = start
		}
	}
	finish(false)
}

// addEdge maps a user space segment to device space and records it.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]
	r.addDeviceEdge(x0, y0, x1, y1)
}

func (r *Rasteriser) addDeviceEdge(x0, y0, x1, y1 float64) {
	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})
}

// scan integrates the collected edges row by row and emits coverage.
func (r *Rasteriser) scan(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	devXMin, devXMax := math.Inf(1), math.Inf(-1)
	devYMin, devYMax := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		devXMin = min(devXMin, e.x0, e.x1)
		devXMax = max(devXMax, e.x0, e.x1)
		devYMin = min(devYMin, e.y0)
		devYMax = max(devYMax, e.y1)
	}

	xMin := max(int(math.Floor(devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			i++

			ya := max(e.y0, top)
			yb := min(e.y1, bottom)
			if yb <= ya {
				continue
			}
			xa := e.x0 + e.dxdy*(ya-e.y0)
			xb := e.x0 + e.dxdy*(yb-e.y0)
			r.accumulate(xa, xb, yb-ya, e.dir, xMin, xMax)
			touched = true
		}
		if !touched {
			continue
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage model:
//
// Each edge piece inside a pixel adds its signed height to cover[x], and
// the part of that height which lies to the right of the edge to area[x].
// Integrating a row left to right, the signed coverage of pixel x is
//
//	area[x] + sum(cover[0:x])
//
// which is the winding-weighted area of the path inside the pixel.

// accumulate adds the contribution of an edge piece which enters the
// current scanline at x = xa and leaves at x = xb, covering a height of dy.
func (r *Rasteriser) accumulate(xa, xb, dy float64, dir float32, xMin, xMax int) {
	xl, xr := min(xa, xb), max(xa, xb)
	pl := int(math.Floor(xl))
	pr := int(math.Floor(xr))

	if pl == pr || xr-xl < 1e-12 {
		r.addPiece(pl, dir*float32(dy), (xl+xr)/2-float64(pl), xMin, xMax)
		return
	}

	for px := pl; px <= pr; px++ {
		u := max(xl, float64(px))
		v := min(xr, float64(px+1))
		if v <= u {
			continue
		}
		h := dy * (v - u) / (xr - xl)
		r.addPiece(px, dir*float32(h), (u+v)/2-float64(px), xMin, xMax)
	}
}

// addPiece records an edge piece of signed height h whose average position
// inside pixel column px is xFrac.
func (r *Rasteriser) addPiece(px int, h float32, xFrac float64, xMin, xMax int) {
	switch {
	case px < xMin:
		r.cover[0] += h
		r.area[0] += h
	case px < xMax:
		i := px - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-xFrac)
	}
}

// integrateNonZero turns the accumulated buffers into coverage values,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		c := abs32(acc + area[i])
		acc += cover[i]
		cover[i] = min(c, 1)
	}
}

// integrateEvenOdd is like integrateNonZero, but folds the winding number
// modulo 2.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		c := abs32(acc + area[i])
		acc += cover[i]
		c -= 2 * float32(int(c/2))
		cover[i] = 1 - abs32(1-c)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	// 0.25 is below what can be seen.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the HTML canvas and PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest segment the stroker keeps.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin| below which two segments are
	// treated as collinear and need no join.
	collinearityThreshold = 1e-6
)
