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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 1
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(sidebarWidth+10, m.width)

	header := titleStyle.Render(" canvastest ─ visual test cases ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(contentHeight).Render(m.l.View())

	viewW := contentWidth - sidebarWidth - 1
	viewH := contentHeight
	picture := lipgloss.NewStyle().Width(viewW).Height(viewH).Render(m.renderPicture(viewW, viewH))

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", picture)

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderPicture draws the selected test case into a w×h cell area.
func (m Model) renderPicture(w, h int) string {
	it, ok := m.selected()
	if !ok {
		return dimStyle.Render("no test selected")
	}
	r, ok := m.cache[it.tc.Name]
	if !ok {
		return dimStyle.Render("not rendered")
	}
	if r.err != nil {
		return boxStyle.Render(errorStyle.Render(r.err.Error()))
	}

	buf := newBrailleBuf(w, h)
	bounds := r.img.Bounds()
	fit := max(float64(bounds.Dx())/float64(2*w), float64(bounds.Dy())/float64(4*h))
	buf.plotImage(r.img, fit/m.zoom)
	return strings.Join(buf.toLines(), "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓ select",
		"/ filter",
		"+/- zoom",
		"0 fit",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
