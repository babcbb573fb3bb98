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

package recorder

import "seehuhn.de/go/canvas"

// Surface is a [canvas.Surface] whose context records all calls.
type Surface struct {
	// Rec receives the calls made on the surface's context.
	Rec *Recorder

	// NoContext makes Context2D fail, to model an element which is not
	// a canvas.
	NoContext bool

	// Acquired counts the calls to Context2D.
	Acquired int
}

var _ canvas.Surface = (*Surface)(nil)

// NewSurface returns a surface which records into a new Recorder.
// If next is not nil, the recorded calls are forwarded to it.
func NewSurface(next canvas.Context) *Surface {
	return &Surface{Rec: New(next)}
}

// Context2D implements the [canvas.Surface] interface.
func (s *Surface) Context2D() (canvas.Context, bool) {
	s.Acquired++
	if s.NoContext {
		return nil, false
	}
	return s.Rec, true
}
