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

import "math"

// Arc adds a circular arc to the current path.
//
// The arc is centred at (cx, cy) and runs from startAngle to endAngle,
// clockwise on screen unless counterclockwise is set.  If the difference
// between the angles is at least 2π in the drawing direction, a full
// circle is drawn.  Otherwise the sweep is reduced modulo 2π.  The start
// of the arc is joined to the current point by a straight line.
//
// A negative radius leaves the path unchanged and returns
// ErrNegativeRadius.
func (c *Canvas) Arc(cx, cy, radius, startAngle, endAngle float64, counterclockwise bool) error {
	if radius < 0 {
		return ErrNegativeRadius
	}
	if !finite(cx, cy, radius, startAngle, endAngle) {
		return nil
	}

	sweep := arcSweep(startAngle, endAngle, counterclockwise)

	sin0, cos0 := math.Sincos(startAngle)
	x0, y0 := cx+radius*cos0, cy+radius*sin0
	if c.hasCurrent {
		c.LineTo(x0, y0)
	} else {
		c.MoveTo(x0, y0)
	}
	if radius == 0 || sweep == 0 {
		return nil
	}

	// Each piece spans at most a quarter circle.
	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := sweep / float64(n)
	k := 4.0 / 3 * math.Tan(step/4) * radius

	a := startAngle
	for range n {
		b := a + step
		sinA, cosA := math.Sincos(a)
		sinB, cosB := math.Sincos(b)
		c.BezierCurveTo(
			cx+radius*cosA-k*sinA, cy+radius*sinA+k*cosA,
			cx+radius*cosB+k*sinB, cy+radius*sinB-k*cosB,
			cx+radius*cosB, cy+radius*sinB,
		)
		a = b
	}
	return nil
}

// arcSweep returns the signed angle covered by an arc.  Positive values
// run clockwise on screen.
func arcSweep(start, end float64, counterclockwise bool) float64 {
	const fullCircle = 2 * math.Pi
	if !counterclockwise {
		if end-start >= fullCircle {
			return fullCircle
		}
		return positiveMod(end-start, fullCircle)
	}
	if start-end >= fullCircle {
		return -fullCircle
	}
	return -positiveMod(start-end, fullCircle)
}

func positiveMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}
