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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Singular reports whether m cannot be inverted.  matrix.Matrix.Inv panics
// on such matrices, so callers check this first.
func Singular(m matrix.Matrix) bool {
	det := m[0]*m[3] - m[1]*m[2]
	return det == 0 || math.IsNaN(det) || math.IsInf(det, 0)
}

// apply maps the point (x, y) through m.
func apply(m matrix.Matrix, x, y float64) vec.Vec2 {
	x, y = m.Apply(x, y)
	return vec.Vec2{X: x, Y: y}
}

// TransformPath returns a copy of p with all points mapped through m.
func TransformPath(p *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   append([]path.Command(nil), p.Cmds...),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, c := range p.Coords {
		res.Coords[i] = apply(m, c.X, c.Y)
	}
	return res
}

// PenScale returns sqrt(|det m|), the factor by which m scales lengths
// on average.  Backends which can only draw with a circular
// pen in device space multiply the line width by this factor.
func PenScale(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}
