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

package testcases

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSurface means that the document has no surface with the name
	// of the test.
	ErrNoSurface = errors.New("no surface")

	// ErrNoContext means that the surface cannot provide a 2D context.
	ErrNoContext = errors.New("no 2D context")
)

// Draw runs tc on the surface named tc.Name.
//
// If the surface does not exist or cannot provide a 2D context, no drawing
// command is issued and the error wraps ErrNoSurface or ErrNoContext.
// Callers which want to skip such surfaces silently can check for these
// with errors.Is.
func Draw(doc Document, tc TestCase) error {
	s, ok := doc.ElementByID(tc.Name)
	if !ok || s == nil {
		return fmt.Errorf("%s: %w", tc.Name, ErrNoSurface)
	}
	ctx, ok := s.Context2D()
	if !ok || ctx == nil {
		return fmt.Errorf("%s: %w", tc.Name, ErrNoContext)
	}
	if err := tc.Draw(ctx); err != nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}
	return nil
}

// ExecuteTests runs the given tests in order, or the Default tests if none
// are given.  A failing test does not stop the others; all errors are
// returned together.
func ExecuteTests(doc Document, tests ...TestCase) error {
	if len(tests) == 0 {
		tests = Default
	}
	var errs []error
	for _, tc := range tests {
		if err := Draw(doc, tc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
