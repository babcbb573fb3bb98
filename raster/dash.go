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

// dashed reports whether the dash pattern has an effect.
func (r *Rasteriser) dashed() bool {
	var total float64
	for _, d := range r.Dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return false
		}
		total += d
	}
	return total > 0
}

// dashPattern returns the effective pattern.  Odd-length patterns are
// repeated once, so that on and off entries alternate.
func (r *Rasteriser) dashPattern() []float64 {
	if len(r.Dash)%2 == 0 {
		return r.Dash
	}
	pat := make([]float64, 0, 2*len(r.Dash))
	pat = append(pat, r.Dash...)
	return append(pat, r.Dash...)
}

// applyDash cuts r.runs into dashes, stored in r.dashPts and r.dashRuns.
// Each subpath starts at DashPhase into the pattern.  On a closed subpath
// a dash which runs across the start point is stroked as one piece.
func (r *Rasteriser) applyDash() {
	r.dashPts = r.dashPts[:0]
	r.dashRuns = r.dashRuns[:0]

	pat := r.dashPattern()
	var total float64
	for _, d := range pat {
		total += d
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	if phase >= total {
		phase = 0
	}

	for _, rn := range r.runs {
		pts := r.pts[rn.start:rn.end]
		if len(pts) < 2 {
			// dots are not affected by dashing
			r.dashRuns = append(r.dashRuns, run{
				start: len(r.dashPts),
				end:   len(r.dashPts) + 1,
				dir:   rn.dir,
			})
			r.dashPts = append(r.dashPts, pts[0])
			continue
		}

		idx := 0
		remaining := phase
		for remaining >= pat[idx] {
			remaining -= pat[idx]
			idx = (idx + 1) % len(pat)
		}
		remaining = pat[idx] - remaining

		d := dasher{r: r, first: -1}
		if idx%2 == 0 {
			d.begin(pts[0])
			d.first = len(r.dashRuns)
			d.firstAtStart = true
		}

		numSeg := len(pts) - 1
		if rn.closed {
			numSeg = len(pts)
		}
		for i := range numSeg {
			a, b := pts[i], pts[(i+1)%len(pts)]
			seg := b.Sub(a)
			length := seg.Length()
			t := seg.Mul(1 / length)
			d.dir = t

			pos := 0.0
			for length-pos > remaining {
				pos += remaining
				q := a.Add(t.Mul(pos))
				if idx%2 == 0 {
					d.extend(q)
					d.end()
				} else {
					if d.first < 0 {
						d.first = len(r.dashRuns)
					}
					d.begin(q)
				}
				idx = (idx + 1) % len(pat)
				remaining = pat[idx]
			}
			remaining -= length - pos
			if idx%2 == 0 {
				d.extend(b)
			}
		}

		if !d.active {
			continue
		}
		if rn.closed && d.firstAtStart {
			if d.first == len(r.dashRuns) {
				// the pattern never switched off
				d.closeLoop()
				continue
			}
			d.mergeFirst()
		}
		d.end()
	}
}

// dasher collects the pieces of one dashed subpath.
type dasher struct {
	r      *Rasteriser
	active bool
	start  int
	dir    vec.Vec2

	first        int  // index in r.dashRuns of the first dash
	firstAtStart bool // whether the first dash begins at the subpath start
}

func (d *dasher) begin(p vec.Vec2) {
	d.active = true
	d.start = len(d.r.dashPts)
	d.r.dashPts = append(d.r.dashPts, p)
}

func (d *dasher) extend(p vec.Vec2) {
	last := d.r.dashPts[len(d.r.dashPts)-1]
	if p.Sub(last).Length() >= zeroLengthThreshold {
		d.r.dashPts = append(d.r.dashPts, p)
	}
}

func (d *dasher) end() {
	d.r.dashRuns = append(d.r.dashRuns, run{
		start: d.start,
		end:   len(d.r.dashPts),
		dir:   d.dir,
	})
	d.active = false
}

// closeLoop turns the current dash, which covers the whole subpath, back
// into a closed polyline.
func (d *dasher) closeLoop() {
	pts := d.r.dashPts
	end := len(pts)
	if end-d.start > 1 && pts[end-1].Sub(pts[d.start]).Length() < zeroLengthThreshold {
		end--
		d.r.dashPts = pts[:end]
	}
	d.r.dashRuns = append(d.r.dashRuns, run{
		start:  d.start,
		end:    end,
		closed: end-d.start > 2,
		dir:    d.dir,
	})
	d.active = false
}

// mergeFirst appends the first dash of the subpath to the current one and
// empties the first dash.
func (d *dasher) mergeFirst() {
	first := &d.r.dashRuns[d.first]
	for _, p := range d.r.dashPts[first.start:first.end] {
		d.extend(p)
	}
	first.end = first.start
}
