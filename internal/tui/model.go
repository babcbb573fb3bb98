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

// Package tui implements a terminal viewer for the visual test cases.
//
// The selected test is rendered to an image and shown as braille
// micro-pixels, two by four per terminal cell.
package tui

import (
	"fmt"
	"image"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/canvas/testcases"
)

const sidebarWidth = 28

// RenderFunc draws a test case and returns the resulting image.
type RenderFunc func(tc testcases.TestCase) (image.Image, error)

// testItem is a test case shown in the list.
type testItem struct {
	tc       testcases.TestCase
	category string
}

func (t testItem) Title() string { return t.tc.Name }
func (t testItem) Description() string {
	return fmt.Sprintf("%s %d×%d", t.category, t.tc.Width, t.tc.Height)
}
func (t testItem) FilterValue() string { return t.tc.Name }

// rendered is the cached outcome of drawing one test case.
type rendered struct {
	img image.Image
	err error
}

// Model is the Bubble Tea model of the viewer: a list of test cases next
// to a braille picture of the selected one.
type Model struct {
	width  int
	height int

	helpVisible bool

	// zoom is relative to the size which fits the image into the view.
	zoom float64

	status string

	l      list.Model
	render RenderFunc
	cache  map[string]rendered
}

// New returns a viewer for all registered test cases.  Images are
// produced by render and cached.
func New(render RenderFunc) Model {
	var items []list.Item
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			items = append(items, testItem{tc: tc, category: category})
		}
	}

	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "canvastest ready",
		render:      render,
		cache:       make(map[string]rendered),
	}
	d := list.NewDefaultDelegate()
	m.l = list.New(items, d, 0, 0)
	m.l.Title = "Tests"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.updateSelection()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// selected returns the test case under the cursor.
func (m Model) selected() (testItem, bool) {
	it, ok := m.l.SelectedItem().(testItem)
	return it, ok
}

// selectedName returns the name of the test case under the cursor, or ""
// if the list is empty.
func (m Model) selectedName() string {
	if it, ok := m.selected(); ok {
		return it.tc.Name
	}
	return ""
}

// updateSelection renders the selected test case, if this has not been
// done before, and updates the status line.
func (m *Model) updateSelection() {
	it, ok := m.selected()
	if !ok {
		return
	}
	r, seen := m.cache[it.tc.Name]
	if !seen {
		r.img, r.err = m.render(it.tc)
		m.cache[it.tc.Name] = r
	}
	if r.err != nil {
		m.status = fmt.Sprintf("%s: %v", it.tc.Name, r.err)
	} else {
		m.status = fmt.Sprintf("%s/%s  %d×%d", it.category, it.tc.Name, it.tc.Width, it.tc.Height)
	}
}
