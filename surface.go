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
	"slices"
)

// Surface is a named drawing target.
type Surface interface {
	// Context2D returns the 2D drawing context of the surface.  The second
	// return value is false if the surface cannot be drawn on.
	Context2D() (Context, bool)
}

// Document holds surfaces by name, in the way a web page holds canvas
// elements by id.
type Document struct {
	byID  map[string]Surface
	order []string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{byID: make(map[string]Surface)}
}

// Add registers s under id, replacing any surface of the same name.
func (d *Document) Add(id string, s Surface) {
	if _, exists := d.byID[id]; !exists {
		d.order = append(d.order, id)
	}
	d.byID[id] = s
}

// ElementByID returns the surface registered under id.
func (d *Document) ElementByID(id string) (Surface, bool) {
	s, ok := d.byID[id]
	return s, ok
}

// IDs returns the names of all surfaces, in the order they were added.
func (d *Document) IDs() []string {
	return slices.Clone(d.order)
}
