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
	"fmt"
	"maps"
	"slices"
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"transform": transformCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"fill":      fillCases,
}

// Default lists the tests run by ExecuteTests when no tests are given.
var Default = transformCases

// Categories returns the category names in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(All))
}

// Lookup returns the test with the given name, together with its
// category.
func Lookup(name string) (TestCase, string, bool) {
	for _, category := range Categories() {
		for _, tc := range All[category] {
			if tc.Name == name {
				return tc, category, true
			}
		}
	}
	return TestCase{}, "", false
}

// Select returns the named tests, in the order given.  Without names, all
// tests are returned, ordered by category.
func Select(names ...string) ([]TestCase, error) {
	if len(names) == 0 {
		var res []TestCase
		for _, category := range Categories() {
			res = append(res, All[category]...)
		}
		return res, nil
	}

	res := make([]TestCase, 0, len(names))
	for _, name := range names {
		tc, _, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown test %q", name)
		}
		res = append(res, tc)
	}
	return res, nil
}
