package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"planeview/internal/geom"
	"planeview/internal/gesture"
	"planeview/internal/remote"
	"planeview/internal/vec"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case frameMsg:
		if m.showTable && m.graph.PointsVersion() != m.tableVersion {
			m.refreshTable()
		}
		if m.frames.run() {
			return m, m.frames.tick()
		}
		return m, nil
	case fileChangedMsg:
		if m.selPath != "" {
			m.reload(m.selPath)
		}
		return m, waitForChange(m.changes)
	case StatusMsg:
		m.status = string(msg)
		return m, nil
	case remoteMsg:
		err := remote.Apply(m.graph, msg.cmd)
		msg.reply <- err
		if err != nil {
			m.status = "remote " + msg.cmd.Op + ": " + err.Error()
		} else {
			m.status = "remote: " + msg.cmd.Op
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m, m.updatePaste(msg)
		}
		if m.showTable {
			return m, m.updateTable(msg)
		}
		if cmd, done := m.updateKey(msg); done {
			return m, cmd
		}
	case tea.MouseMsg:
		if !m.pasteMode && !m.showTable {
			m.updateMouse(msg)
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize fits the canvas and the graph to the map area. The configured range
// is applied the first time the map has a size.
func (m *Model) resize() {
	l := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
	}
	m.canvas.resize(l.mapW, l.mapH)
	size := m.canvas.size()
	m.graph.Resize(size.X, size.Y, 1)
	if !m.ranged {
		m.resetView()
		m.ranged = true
	}
	if m.fitDue {
		m.graph.FitPoints()
		m.fitDue = false
	}
}

func (m *Model) resetView() {
	v := m.cfg.View
	m.graph.SetRange(vec.New(v.Min.X, v.Min.Y), vec.New(v.Max.X, v.Max.Y))
}

func (m *Model) updatePaste(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return nil
		}
		d, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return nil
		}
		m.selPath = ""
		m.stopWatch()
		m.setPoints(d.Points)
		m.status = fmt.Sprintf("plotted WKT  points=%d", len(d.Points))
		m.pasteMode = false
		m.ta.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return cmd
}

func (m *Model) updateTable(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopWatch()
		return tea.Quit
	case "esc", "a":
		m.showTable = false
		return nil
	case "d", "delete", "backspace":
		m.removeSelected()
		return nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return cmd
}

// updateKey handles view-mode keys. done is false for keys the sidebar list
// should see instead.
func (m *Model) updateKey(msg tea.KeyMsg) (cmd tea.Cmd, done bool) {
	in := m.cfg.Input
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopWatch()
		return tea.Quit, true
	case "+", "=":
		m.graph.Wheel(m.canvas.size().Scale(0.5), -in.WheelStep, gesture.Modifiers{})
		m.status = "zoom in"
	case "-", "_":
		m.graph.Wheel(m.canvas.size().Scale(0.5), in.WheelStep, gesture.Modifiers{})
		m.status = "zoom out"
	case "0":
		m.resetView()
		m.status = "view reset"
	case "f":
		if m.graph.FitPoints() {
			m.status = fmt.Sprintf("fit %d points", len(m.graph.Points()))
		} else {
			m.status = "no points to fit"
		}
	case "c":
		m.graph.ClearPoints()
		m.status = "points cleared"
	case "b":
		*m.showBounds = !*m.showBounds
		m.status = fmt.Sprintf("bounds: %v", *m.showBounds)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
		m.resize()
		return nil, true
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		m.ta.Focus()
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showTable = true
		m.refreshTable()
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
				if m.cfg.Watch && m.selPath == it.path {
					m.startWatch(it.path)
				}
			}
		}
	case "up", "down", "left", "right":
		// with the sidebar open the arrows move the list selection
		if m.showSidebar {
			return nil, false
		}
		m.pan(msg.String())
	default:
		return nil, false
	}
	return nil, true
}

// pan moves the centre by PanStep of the visible extent in the arrow's
// direction.
func (m *Model) pan(key string) {
	step := m.cfg.Input.PanStep
	var frac vec.Vec2
	switch key {
	case "up":
		frac = vec.New(0, step)
	case "down":
		frac = vec.New(0, -step)
	case "left":
		frac = vec.New(-step, 0)
	case "right":
		frac = vec.New(step, 0)
	}
	ext := m.graph.Viewport().Extent()
	m.graph.SetCenter(m.graph.Center().Add(frac.Mul(ext)))
}

// updateMouse feeds the pointer to the graph. Cell (x, y) maps to the centre
// of its 2x4 micro-pixel block.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	l := m.layout()
	inside := l.inMap(msg.X, msg.Y)
	pos := vec.New(float64((msg.X-l.mapX)*cellW+1), float64((msg.Y-l.mapY)*cellH+2))

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside {
			return
		}
		mods := gesture.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.graph.Wheel(pos, -m.cfg.Input.WheelStep, mods)
		case tea.MouseButtonWheelDown:
			m.graph.Wheel(pos, m.cfg.Input.WheelStep, mods)
		case tea.MouseButtonLeft:
			if !m.pressed {
				m.pressed = true
				m.graph.PointerDown(0, pos)
			}
		}
	case tea.MouseActionMotion:
		m.hover = inside
		if inside || m.pressed {
			m.graph.PointerMove(0, pos)
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.graph.PointerUp(0, pos)
		}
	}
}
