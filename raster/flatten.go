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

	"seehuhn.de/go/geom/vec"
)

// maxCurveSegments bounds the number of line segments used for one curve.
const maxCurveSegments = 1000

// flattenCubic approximates a cubic Bézier curve, given in user space, by
// line segments.  The number of segments is chosen with Wang's formula so
// that the device space distance between curve and polygon stays below
// r.Flatness.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	dd1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	dd2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	dd := max(dd1, dd2)

	n := 1
	if dd > 0 {
		n = int(math.Ceil(math.Sqrt(0.75 * dd / r.Flatness)))
		n = min(max(n, 1), maxCurveSegments)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		var pt vec.Vec2
		if i == n {
			pt = p3
		} else {
			t := float64(i) / float64(n)
			s := 1 - t
			pt = p0.Mul(s * s * s).
				Add(p1.Mul(3 * s * s * t)).
				Add(p2.Mul(3 * s * t * t)).
				Add(p3.Mul(t * t * t))
		}
		line(prev, pt)
		prev = pt
	}
}

// transformLinear applies the linear part of the CTM to a direction vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// deviceScale returns the largest factor by which the CTM stretches a
// user space length.
func (r *Rasteriser) deviceScale() float64 {
	m := r.CTM
	// largest singular value of the 2x2 linear part
	a := m[0]*m[0] + m[1]*m[1]
	b := m[0]*m[2] + m[1]*m[3]
	c := m[2]*m[2] + m[3]*m[3]
	tr := (a + c) / 2
	disc := math.Sqrt(max(tr*tr-(a*c-b*b), 0))
	return math.Sqrt(tr + disc)
}
