package tui

import (
	"github.com/charmbracelet/lipgloss"

	"planeview/internal/config"
	"planeview/internal/plane"
)

var baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

// styles are built once from the configured theme.
type styles struct {
	app   lipgloss.Style
	box   lipgloss.Style
	title lipgloss.Style
	dim   lipgloss.Style
}

func newStyles(t config.Theme) styles {
	return styles{
		app:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Border)).Padding(0, 1),
		title: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		dim:   lipgloss.NewStyle().Foreground(baseDimFg),
	}
}

// planeTheme maps the terminal theme onto the graph's colours. The readout
// is shown in the footer, so its colours stay at the defaults.
func planeTheme(t config.Theme) plane.Theme {
	th := plane.DefaultTheme()
	th.Axis = plane.Color(t.Axis)
	th.Grid = plane.Color(t.Grid)
	th.Label = plane.Color(t.Label)
	th.Curve = plane.Color(t.Curve)
	th.Point = plane.Color(t.Point)
	th.Hover = plane.Color(t.Hover)
	return th
}
