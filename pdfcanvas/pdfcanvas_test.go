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

package pdfcanvas

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/canvas"
)

func TestWritePDF(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.pdf")
	s, err := Create(fileName, 256, 256)
	if err != nil {
		t.Fatal(err)
	}
	ctx, ok := s.Context2D()
	if !ok {
		t.Fatal("no context")
	}

	ctx.SetLineWidth(5)
	ctx.Scale(1, 2)
	ctx.MoveTo(10, 10)
	ctx.QuadraticCurveTo(100, 10, 100, 100)
	ctx.Stroke()
	ctx.BeginPath()
	if err := ctx.Arc(128, 64, 20, 0, 2*math.Pi, false); err != nil {
		t.Fatal(err)
	}
	ctx.SetFillColor(color.NRGBA{R: 0xFF, A: 0x80})
	ctx.Fill(canvas.EvenOdd)
	if err := ctx.SetLineDash([]float64{4, 2}, 0); err != nil {
		t.Fatal(err)
	}
	ctx.Stroke()

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestSingularTransform(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.pdf")
	s, err := Create(fileName, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	ctx, _ := s.Context2D()
	ctx.MoveTo(1, 1)
	ctx.LineTo(9, 9)
	ctx.Scale(0, 1)
	ctx.Stroke() // must not write a degenerate transform
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		in   color.Color
		want float64
	}{
		{nil, 0},
		{color.Black, 0},
		{color.White, 1},
		{color.NRGBA{A: 0}, 1},
		{color.NRGBA{A: 0x80}, 1 - 128.0/255},
		{color.NRGBA{G: 0xFF, A: 0xFF}, 0.587},
	}
	for _, test := range tests {
		got := gray(test.in)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("gray(%v) = %g, want %g", test.in, got, test.want)
		}
	}
}
