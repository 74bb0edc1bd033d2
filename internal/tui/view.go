package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"planeview/internal/numfmt"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()
	st := m.styles

	// Header
	header := st.title.Render(" planeview ─ terminal coordinate plane ")
	header = lipgloss.NewStyle().Width(l.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(l.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		// Render the points table centered in the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(l.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.mapH-2, 20))
		box := st.box.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	default:
		mapView = strings.Join(m.canvas.lines(), "\n")
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := st.dim.Render(" " + m.status + " ")
	coords := st.dim.Render("  " + m.readout() + "  ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return st.app.Width(l.contentW).Height(m.height).Render(ui)
}

// readout shows the hovered point, or the pointer position while it is on
// the map.
func (m Model) readout() string {
	if p := m.graph.Close(); p != nil {
		v := p.Pos()
		return "point " + numfmt.Format(v.X) + ", " + numfmt.Format(v.Y)
	}
	if m.hover || m.pressed {
		return m.graph.Readout()
	}
	return ""
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"click add/remove",
		"drag pan",
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"f fit",
		"c clear",
		"Tab files",
		"p paste",
		"a points",
		"b bounds",
		"h help",
		"q quit",
	}
	return m.styles.dim.Render("  " + strings.Join(keys, "  "))
}
