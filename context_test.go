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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// paintCall records one call to a Painter.
type paintCall struct {
	Stroke bool
	Rule   FillRule
	Cmds   []path.Command
	Coords []vec.Vec2
	CTM    matrix.Matrix
	Width  float64
}

type recordingPainter struct {
	calls []paintCall
}

func (p *recordingPainter) StrokePath(d *path.Data, gs *State) {
	p.calls = append(p.calls, paintCall{
		Stroke: true,
		Cmds:   append([]path.Command(nil), d.Cmds...),
		Coords: append([]vec.Vec2(nil), d.Coords...),
		CTM:    gs.CTM,
		Width:  gs.LineWidth,
	})
}

func (p *recordingPainter) FillPath(d *path.Data, rule FillRule, gs *State) {
	p.calls = append(p.calls, paintCall{
		Rule:   rule,
		Cmds:   append([]path.Command(nil), d.Cmds...),
		Coords: append([]vec.Vec2(nil), d.Coords...),
		CTM:    gs.CTM,
		Width:  gs.LineWidth,
	})
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestTransformComposition(t *testing.T) {
	c := New(&recordingPainter{})
	c.Translate(10, 20)
	c.Scale(2, 3)
	c.MoveTo(1, 1)
	if got, want := c.cur, (vec.Vec2{X: 12, Y: 23}); cmp.Diff(want, got, approx) != "" {
		t.Errorf("translate then scale: got %v, want %v", got, want)
	}

	c.SetTransform(matrix.Identity)
	c.Rotate(math.Pi / 2)
	c.MoveTo(1, 0)
	if got, want := c.cur, (vec.Vec2{X: 0, Y: 1}); cmp.Diff(want, got, approx) != "" {
		t.Errorf("rotation: got %v, want %v", got, want)
	}
}

func TestSingular(t *testing.T) {
	m := matrix.Translate(10, 20).Mul(matrix.Scale(2, 3))
	if Singular(m) {
		t.Fatal("invertible matrix reported as singular")
	}
	if d := cmp.Diff(matrix.Identity, m.Mul(m.Inv()), approx); d != "" {
		t.Errorf("m * inv(m) != identity (-want +got):\n%s", d)
	}
	for _, m := range []matrix.Matrix{
		matrix.Scale(1, 0),
		matrix.Zero,
		{math.NaN(), 0, 0, 1, 0, 0},
	} {
		if !Singular(m) {
			t.Errorf("%v not reported as singular", m)
		}
	}
}

func TestPathUsesCTMAtConstruction(t *testing.T) {
	p := &recordingPainter{}
	c := New(p)

	c.MoveTo(0, 100)
	c.LineTo(100, 100)
	c.Scale(1, 4)
	c.LineTo(200, 100)
	c.Stroke()

	want := []vec.Vec2{{X: 0, Y: 100}, {X: 100, Y: 100}, {X: 200, Y: 400}}
	if len(p.calls) != 1 {
		t.Fatalf("got %d paint calls, want 1", len(p.calls))
	}
	if d := cmp.Diff(want, p.calls[0].Coords, approx); d != "" {
		t.Errorf("device path (-want +got):\n%s", d)
	}
	if got := p.calls[0].CTM; got != matrix.Scale(1, 4) {
		t.Errorf("stroke CTM %v, want scale(1,4)", got)
	}
}

func TestSaveRestore(t *testing.T) {
	c := New(&recordingPainter{})

	c.SetLineWidth(5)
	c.Save()
	c.Translate(144, 144)
	c.Rotate(1)
	c.SetLineWidth(20)
	c.SetLineCap(graphics.LineCapRound)
	if err := c.SetLineDash([]float64{1, 2}, 0); err != nil {
		t.Fatal(err)
	}
	if c.Depth() != 1 {
		t.Errorf("depth %d, want 1", c.Depth())
	}
	c.Restore()

	s := c.State()
	want := DefaultState()
	want.LineWidth = 5
	if d := cmp.Diff(want, s, approx); d != "" {
		t.Errorf("restored state (-want +got):\n%s", d)
	}

	// unbalanced restore is ignored
	c.Restore()
	if c.State().LineWidth != 5 {
		t.Error("unbalanced Restore changed the state")
	}
}

func TestPathNotSaved(t *testing.T) {
	p := &recordingPainter{}
	c := New(p)

	c.Save()
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	c.Restore()
	c.Stroke()

	if len(p.calls) != 1 || len(p.calls[0].Cmds) != 2 {
		t.Fatalf("path did not survive Restore: %+v", p.calls)
	}
}

func TestLineToWithoutSubpath(t *testing.T) {
	c := New(&recordingPainter{})
	c.LineTo(5, 6)
	c.LineTo(7, 8)

	want := []path.Command{path.CmdMoveTo, path.CmdLineTo}
	if d := cmp.Diff(want, c.Path().Cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
}

func TestClosePathReopens(t *testing.T) {
	c := New(&recordingPainter{})
	c.MoveTo(0, 0)
	c.LineTo(72, 0)
	c.LineTo(72, 72)
	c.ClosePath()
	c.LineTo(0, 72)

	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}
	if d := cmp.Diff(wantCmds, c.Path().Cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
	// the new subpath starts where the closed one started
	if got := c.Path().Coords[3]; got != (vec.Vec2{}) {
		t.Errorf("new subpath starts at %v, want origin", got)
	}
}

func TestBeginPathClears(t *testing.T) {
	p := &recordingPainter{}
	c := New(p)
	c.MoveTo(0, 0)
	c.LineTo(1, 1)
	c.BeginPath()
	c.Stroke()
	c.Fill(NonZero)
	if len(p.calls) != 0 {
		t.Errorf("empty path was painted: %+v", p.calls)
	}
}

func TestStrokeKeepsPath(t *testing.T) {
	p := &recordingPainter{}
	c := New(p)
	c.Rect(1, 2, 3, 4)
	c.Stroke()
	c.Fill(EvenOdd)

	if len(p.calls) != 2 {
		t.Fatalf("got %d paint calls, want 2", len(p.calls))
	}
	if d := cmp.Diff(p.calls[0].Coords, p.calls[1].Coords); d != "" {
		t.Errorf("fill saw a different path (-stroke +fill):\n%s", d)
	}
	if p.calls[1].Rule != EvenOdd {
		t.Errorf("fill rule %s, want evenodd", p.calls[1].Rule)
	}
}

func TestSingularCTMDoesNotStroke(t *testing.T) {
	p := &recordingPainter{}
	c := New(p)
	c.MoveTo(0, 0)
	c.LineTo(10, 10)
	c.Scale(0, 1)
	c.Stroke()
	if len(p.calls) != 0 {
		t.Error("stroke with singular CTM reached the painter")
	}
}

func TestInvalidValuesIgnored(t *testing.T) {
	c := New(&recordingPainter{})
	c.SetLineWidth(-1)
	c.SetLineWidth(0)
	c.SetLineWidth(math.NaN())
	c.SetMiterLimit(-3)
	c.Translate(math.Inf(1), 0)
	c.MoveTo(math.NaN(), 0)

	if d := cmp.Diff(DefaultState(), c.State()); d != "" {
		t.Errorf("state changed (-want +got):\n%s", d)
	}
	if len(c.Path().Cmds) != 0 {
		t.Error("non-finite MoveTo changed the path")
	}
}

func TestSetLineDash(t *testing.T) {
	c := New(&recordingPainter{})

	if err := c.SetLineDash([]float64{5}, 2); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{5, 5}, c.State().Dash); d != "" {
		t.Errorf("odd pattern (-want +got):\n%s", d)
	}

	err := c.SetLineDash([]float64{1, -1}, 0)
	if !errors.Is(err, ErrNegativeDash) {
		t.Errorf("got error %v, want ErrNegativeDash", err)
	}
	if d := cmp.Diff([]float64{5, 5}, c.State().Dash); d != "" {
		t.Errorf("invalid pattern changed state (-want +got):\n%s", d)
	}

	if err := c.SetLineDash(nil, 0); err != nil {
		t.Fatal(err)
	}
	if c.State().Dash != nil {
		t.Error("empty pattern did not reset to solid")
	}
}

func TestQuadraticIsElevated(t *testing.T) {
	c := New(&recordingPainter{})
	c.MoveTo(0, 0)
	c.QuadraticCurveTo(3, 3, 6, 0)

	want := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 2}, {X: 6, Y: 0}}
	if d := cmp.Diff(want, c.Path().Coords, approx); d != "" {
		t.Errorf("coords (-want +got):\n%s", d)
	}
}
