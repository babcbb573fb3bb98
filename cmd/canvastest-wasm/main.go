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

//go:build js && wasm

// Command canvastest-wasm draws the visual test cases into the canvas
// elements of a web page.  Each test draws into the element whose id is
// the test name; tests without such an element are skipped.  Errors are
// reported on the browser console.
package main

import (
	"errors"
	"log"

	"seehuhn.de/go/canvas/testcases"
	"seehuhn.de/go/canvas/webcanvas"
)

func main() {
	log.SetFlags(0)

	tests, _ := testcases.Select()
	doc := webcanvas.Global()
	n := 0
	for _, tc := range tests {
		err := testcases.Draw(doc, tc)
		switch {
		case errors.Is(err, testcases.ErrNoSurface):
			continue
		case err != nil:
			log.Print(err)
		}
		n++
	}
	log.Printf("canvastest: ran %d tests", n)
}
