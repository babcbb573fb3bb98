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

package tui

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/canvas/testcases"
)

func TestBraillePixels(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(3, 0)
	b.setPixel(-1, 0) // ignored
	b.setPixel(4, 0)  // ignored

	got := b.toLines()
	want := []string{string([]rune{0x2800 + 0x01 + 0x80, 0x2800 + 0x08})}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPlotImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 8))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	img.SetGray(0, 0, color.Gray{})
	img.SetGray(3, 7, color.Gray{Y: 0x20})

	b := newBrailleBuf(2, 2)
	b.plotImage(img, 1)

	if b.m[0][0] != 0x01 {
		t.Errorf("top left cell = %#x, want 0x01", b.m[0][0])
	}
	if b.m[1][1] != 0x80 {
		t.Errorf("bottom right cell = %#x, want 0x80", b.m[1][1])
	}
	if b.m[0][1] != 0 || b.m[1][0] != 0 {
		t.Error("white pixels were plotted")
	}
}

func fakeRender(calls map[string]int) RenderFunc {
	return func(tc testcases.TestCase) (image.Image, error) {
		calls[tc.Name]++
		if tc.Name == "dash" {
			return nil, errors.New("broken")
		}
		img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
		return img, nil
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelection(t *testing.T) {
	calls := make(map[string]int)
	var m tea.Model = New(fakeRender(calls))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	first, _ := m.(Model).selected()
	if calls[first.tc.Name] != 1 {
		t.Errorf("first test rendered %d times, want 1", calls[first.tc.Name])
	}

	m, _ = m.Update(key("down"))
	second, _ := m.(Model).selected()
	if second.tc.Name == first.tc.Name {
		t.Fatal("selection did not move")
	}
	if calls[second.tc.Name] != 1 {
		t.Errorf("second test rendered %d times, want 1", calls[second.tc.Name])
	}

	m, _ = m.Update(key("up"))
	if calls[first.tc.Name] != 1 {
		t.Error("cached image was rendered again")
	}

	view := m.View()
	if !strings.Contains(view, "canvastest") {
		t.Error("view has no header")
	}
}

func TestRenderError(t *testing.T) {
	m := New(fakeRender(make(map[string]int)))
	m.width, m.height = 100, 40
	for i, it := range m.l.Items() {
		if it.(testItem).tc.Name == "dash" {
			m.l.Select(i)
		}
	}
	m.updateSelection()
	if !strings.Contains(m.status, "broken") {
		t.Errorf("status %q does not show the error", m.status)
	}
	if !strings.Contains(m.renderPicture(40, 10), "broken") {
		t.Error("picture does not show the error")
	}
}

func TestKeys(t *testing.T) {
	var m tea.Model = New(fakeRender(make(map[string]int)))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = m.Update(key("+"))
	if z := m.(Model).zoom; z <= 1 {
		t.Errorf("zoom after + is %g", z)
	}
	m, _ = m.Update(key("0"))
	if z := m.(Model).zoom; z != 1 {
		t.Errorf("zoom after 0 is %g", z)
	}
	m, _ = m.Update(key("h"))
	if m.(Model).helpVisible {
		t.Error("help still visible")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q does not quit")
	}
}

// runCmd executes cmd and returns the messages it produces.  Commands which
// do not finish quickly, like cursor blinking, are dropped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var res []tea.Msg
			for _, c := range batch {
				res = append(res, runCmd(c)...)
			}
			return res
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestFilterSelection(t *testing.T) {
	calls := make(map[string]int)
	var m tea.Model = New(fakeRender(calls))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if name := m.(Model).selectedName(); name == "bubble" {
		t.Fatalf("unexpected initial selection %q", name)
	}

	m, _ = m.Update(key("/"))
	if m.(Model).l.FilterState() != list.Filtering {
		t.Fatal("/ did not start filtering")
	}
	m, cmd := m.Update(key("bubble"))
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(list.FilterMatchesMsg); ok {
			m, _ = m.Update(msg)
		}
	}

	mm := m.(Model)
	if mm.l.Index() != 0 {
		t.Fatalf("cursor at %d, want 0", mm.l.Index())
	}
	if name := mm.selectedName(); name != "bubble" {
		t.Fatalf("selected %q, want bubble", name)
	}
	if calls["bubble"] != 1 {
		t.Errorf("bubble rendered %d times, want 1", calls["bubble"])
	}
	if !strings.Contains(mm.status, "bubble") {
		t.Errorf("status %q does not name the selected test", mm.status)
	}
}
