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

// Command export writes the drawing commands of all test cases to
// testdata/testcases.json, for comparison with other canvas
// implementations.  Run from the module root directory.
package main

import (
	"encoding/json"
	"os"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/recorder"
	"seehuhn.de/go/canvas/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			jtc, err := record(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Ops      []recorder.Op `json:"ops"`
}

func record(category string, tc testcases.TestCase) (jsonTestCase, error) {
	doc := canvas.NewDocument()
	s := recorder.NewSurface(nil)
	doc.Add(tc.Name, s)
	if err := testcases.Draw(doc, tc); err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:     tc.Name,
		Category: category,
		Width:    tc.Width,
		Height:   tc.Height,
		Ops:      s.Rec.Ops,
	}, nil
}
