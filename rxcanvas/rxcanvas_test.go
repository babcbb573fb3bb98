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

package rxcanvas

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

func isDark(c color.RGBA) bool {
	return c.R < 0x40 && c.G < 0x40 && c.B < 0x40
}

func isWhite(c color.RGBA) bool {
	return c.R == 0xFF && c.G == 0xFF && c.B == 0xFF
}

func TestFillRules(t *testing.T) {
	for _, rule := range []canvas.FillRule{canvas.NonZero, canvas.EvenOdd} {
		s := NewSurface(30, 30)
		ctx, _ := s.Context2D()
		ctx.Rect(2, 2, 26, 26)
		ctx.Rect(10, 10, 10, 10)
		ctx.Fill(rule)

		if got := s.Image.RGBAAt(5, 5); !isDark(got) {
			t.Errorf("%s: outer ring not filled: %v", rule, got)
		}
		inner := s.Image.RGBAAt(15, 15)
		if rule == canvas.NonZero && !isDark(inner) {
			t.Errorf("%s: centre not filled: %v", rule, inner)
		}
		if rule == canvas.EvenOdd && !isWhite(inner) {
			t.Errorf("%s: centre filled: %v", rule, inner)
		}
	}
}

func TestStroke(t *testing.T) {
	s := NewSurface(40, 40)
	ctx, _ := s.Context2D()
	ctx.SetLineWidth(6)
	ctx.SetLineCap(graphics.LineCapSquare)
	ctx.MoveTo(10, 20)
	ctx.LineTo(30, 20)
	ctx.Stroke()

	probes := []struct {
		x, y  int
		paint bool
	}{
		{20, 20, true},
		{20, 18, true},
		{8, 20, true}, // square cap
		{20, 10, false},
		{4, 20, false},
	}
	for _, p := range probes {
		got := s.Image.RGBAAt(p.x, p.y)
		if p.paint && !isDark(got) {
			t.Errorf("pixel (%d, %d) not painted: %v", p.x, p.y, got)
		}
		if !p.paint && !isWhite(got) {
			t.Errorf("pixel (%d, %d) painted: %v", p.x, p.y, got)
		}
	}
}

func TestSingularTransform(t *testing.T) {
	s := NewSurface(10, 10)
	ctx, _ := s.Context2D()
	ctx.MoveTo(0, 5)
	ctx.LineTo(10, 5)
	ctx.Scale(1, 0)
	ctx.Stroke()
	for x := range 10 {
		if got := s.Image.RGBAAt(x, 5); !isWhite(got) {
			t.Fatalf("pixel (%d, 5) painted: %v", x, got)
		}
	}
}

func TestWritePNG(t *testing.T) {
	s := NewSurface(4, 4)
	buf := &bytes.Buffer{}
	if err := s.WritePNG(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("missing PNG signature")
	}
}

// fillOnly drops strokes, so that only the fill rasterisation of two
// backends is compared.
type fillOnly struct {
	canvas.Context
}

func (fillOnly) Stroke() {}

// TestFillMatchesRaster checks that rasterx and the raster package agree on
// the fill test cases, up to anti-aliasing at the edges.
func TestFillMatchesRaster(t *testing.T) {
	for _, tc := range testcases.All["fill"] {
		t.Run(tc.Name, func(t *testing.T) {
			rx := NewSurface(tc.Width, tc.Height)
			ctx, _ := rx.Context2D()
			if err := tc.Draw(fillOnly{ctx}); err != nil {
				t.Fatal(err)
			}

			ref := canvas.NewImageSurface(tc.Width, tc.Height)
			ctx, _ = ref.Context2D()
			if err := tc.Draw(fillOnly{ctx}); err != nil {
				t.Fatal(err)
			}

			bad := 0
			for y := range tc.Height {
				for x := range tc.Width {
					if channelDiff(rx.Image.RGBAAt(x, y), ref.Image.RGBAAt(x, y)) > 0x40 {
						bad++
					}
				}
			}
			if frac := float64(bad) / float64(tc.Width*tc.Height); frac > 0.01 {
				t.Errorf("%d pixels (%.2f%%) differ", bad, 100*frac)
			}

			if tc.Name == "fill_rule" {
				checkWheels(t, rx.Image)
				checkWheels(t, ref.Image)
			}
		})
	}
}

// checkWheels verifies the holes left by the two fill rules in the
// fill_rule test case.
func checkWheels(t *testing.T, img *image.RGBA) {
	t.Helper()
	holes := []struct {
		x, y int
		hole bool
	}{
		{64, 64, true},  // even-odd, first wheel
		{192, 64, true}, // even-odd, second wheel
		{128, 40, false},
		{64, 192, false}, // non-zero, same direction
		{192, 192, true}, // non-zero, opposite direction
	}
	for _, h := range holes {
		got := img.RGBAAt(h.x, h.y)
		if h.hole && !isWhite(got) {
			t.Errorf("pixel (%d, %d) filled: %v", h.x, h.y, got)
		}
		if !h.hole && isWhite(got) {
			t.Errorf("pixel (%d, %d) not filled: %v", h.x, h.y, got)
		}
	}
}

func channelDiff(a, b color.RGBA) int {
	d := 0
	for _, v := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}, {a.A, b.A}} {
		d = max(d, abs(int(v[0])-int(v[1])))
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
