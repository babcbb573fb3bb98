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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// run is a flattened subpath: a polyline without repeated points.
type run struct {
	start, end int // range of vertices in the owning point buffer
	closed     bool

	// dir orients a square cap when the run has a single vertex.
	dir vec.Vec2
}

// Stroke paints the outline of p using Width, Cap, Join, MiterLimit, Dash
// and DashPhase.  The pen is built in user space, so the CTM shapes it as
// well as the path.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}

	r.collectRuns(p)

	r.poly = r.poly[:0]
	r.polyStart = r.polyStart[:0]
	if r.dashed() {
		r.applyDash()
		for _, rn := range r.dashRuns {
			r.strokeRun(r.dashPts[rn.start:rn.end], rn.closed, rn.dir)
		}
	} else {
		for _, rn := range r.runs {
			r.strokeRun(r.pts[rn.start:rn.end], rn.closed, rn.dir)
		}
	}

	r.edges = r.edges[:0]
	for i, start := range r.polyStart {
		end := len(r.poly)
		if i+1 < len(r.polyStart) {
			end = r.polyStart[i+1]
		}
		poly := r.poly[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(NonZero, emit)
}

// collectRuns flattens p into r.pts and r.runs.
// Subpaths which consist of a single MoveTo are dropped.  A subpath whose
// segments all have zero length is kept as a single vertex.
func (r *Rasteriser) collectRuns(p *path.Data) {
	r.pts = r.pts[:0]
	r.runs = r.runs[:0]

	runStart := 0
	drawn := false
	line := func(a, b vec.Vec2) {
		if !drawn {
			r.pts = r.pts[:runStart]
			r.pts = append(r.pts, a)
			drawn = true
		}
		if b.Sub(r.pts[len(r.pts)-1]).Length() >= zeroLengthThreshold {
			r.pts = append(r.pts, b)
		}
	}
	endSubpath := func(closed bool) {
		if drawn {
			end := len(r.pts)
			if closed && end-runStart > 1 &&
				r.pts[end-1].Sub(r.pts[runStart]).Length() < zeroLengthThreshold {
				end--
				r.pts = r.pts[:end]
			}
			r.runs = append(r.runs, run{
				start:  runStart,
				end:    end,
				closed: closed && end-runStart > 2,
				dir:    vec.Vec2{X: 1},
			})
		}
		runStart = len(r.pts)
		drawn = false
	}
	r.walk(p, line, endSubpath)
}

// strokeRun adds the outline polygons for one polyline.
func (r *Rasteriser) strokeRun(pts []vec.Vec2, closed bool, dir vec.Vec2) {
	h := r.Width / 2
	n := len(pts)
	if n == 0 {
		return
	}
	if n == 1 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], h)
		case graphics.LineCapSquare:
			r.addSquare(pts[0], dir, h)
		}
		return
	}

	numSeg := n - 1
	if closed {
		numSeg = n
	}
	tangent := func(i int) vec.Vec2 {
		d := pts[(i+1)%n].Sub(pts[i])
		return d.Mul(1 / d.Length())
	}

	for i := range numSeg {
		a, b := pts[i], pts[(i+1)%n]
		t := tangent(i)
		nv := vec.Vec2{X: -t.Y, Y: t.X}.Mul(h)
		r.addPolygon(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	if closed {
		for i := range n {
			prev := (i + n - 1) % n
			r.addJoin(pts[i], tangent(prev), tangent(i), h)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i], tangent(i-1), tangent(i), h)
	}
	r.addCap(pts[0], tangent(0).Mul(-1), h)
	r.addCap(pts[n-1], tangent(n-2), h)
}

// addJoin fills the gap on the outer side of the corner at p, where the
// unit tangent changes from t1 to t2.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, h float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold {
		if dot < 0 && r.Join == graphics.LineJoinRound {
			// the path reverses direction
			r.addDisc(p, h)
		}
		return
	}

	// outer side: -N for a left turn, +N for a right turn
	s := -1.0
	if cross < 0 {
		s = 1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(s)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(s)
	o1 := p.Add(n1.Mul(h))
	o2 := p.Add(n2.Mul(h))

	switch r.Join {
	case graphics.LineJoinRound:
		start := len(r.poly)
		r.poly = append(r.poly, p)
		r.appendArc(p, h, n1, math.Atan2(cross, dot))
		r.closePolygon(start)

	case graphics.LineJoinMiter:
		cosHalf := math.Sqrt((1 + dot) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bisector := n1.Add(n2)
			bisector = bisector.Mul(1 / bisector.Length())
			tip := p.Add(bisector.Mul(h / cosHalf))
			r.addPolygon(p, o1, tip, o2)
			return
		}
		r.addPolygon(p, o1, o2)

	default:
		r.addPolygon(p, o1, o2)
	}
}

// addCap draws the end of an open polyline at p.  The unit vector t points
// away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, h float64) {
	nv := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapRound:
		start := len(r.poly)
		r.appendArc(p, h, nv, -math.Pi)
		r.closePolygon(start)
	case graphics.LineCapSquare:
		ext := t.Mul(h)
		r.addPolygon(
			p.Add(nv.Mul(h)),
			p.Add(nv.Mul(h)).Add(ext),
			p.Sub(nv.Mul(h)).Add(ext),
			p.Sub(nv.Mul(h)),
		)
	}
}

// addDisc adds a full circle, used for dots and reversing round joins.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	start := len(r.poly)
	r.appendArc(center, radius, vec.Vec2{X: 1}, 2*math.Pi)
	r.closePolygon(start)
}

// addSquare adds a square of side 2h centred at p, with one side
// parallel to dir.
func (r *Rasteriser) addSquare(p, dir vec.Vec2, h float64) {
	t := dir.Mul(h / dir.Length())
	nv := vec.Vec2{X: -t.Y, Y: t.X}
	r.addPolygon(
		p.Add(t).Add(nv),
		p.Sub(t).Add(nv),
		p.Sub(t).Sub(nv),
		p.Add(t).Sub(nv),
	)
}

// appendArc appends the vertices of a circular arc to r.poly.
// The arc starts at center + radius*startDir and turns by sweep radians,
// counter-clockwise for positive sweep.
func (r *Rasteriser) appendArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := radius * r.deviceScale()

	// A chord spanning angle θ deviates from the circle by at most
	// radius*(1 - cos(θ/2)).
	n := 4
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = int(math.Ceil(math.Abs(sweep) / step))
	}
	n = min(max(n, 2), maxCurveSegments)

	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.poly = append(r.poly, center.Add(dir.Mul(radius)))
	}
}

// addPolygon adds a closed polygon to the stroke outline.
func (r *Rasteriser) addPolygon(vertices ...vec.Vec2) {
	start := len(r.poly)
	r.poly = append(r.poly, vertices...)
	r.closePolygon(start)
}

// closePolygon finishes the polygon r.poly[start:].  All polygons are
// brought into counter-clockwise orientation, so that overlapping parts
// of the outline add up instead of cancelling.
func (r *Rasteriser) closePolygon(start int) {
	poly := r.poly[start:]
	if len(poly) < 3 {
		r.poly = r.poly[:start]
		return
	}

	var area float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		area += a.X*b.Y - a.Y*b.X
	}
	if area == 0 {
		r.poly = r.poly[:start]
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.polyStart = append(r.polyStart, start)
}
