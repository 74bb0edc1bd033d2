package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planeview/internal/config"
	"planeview/internal/numfmt"
	"planeview/internal/remote"
	"planeview/internal/vec"
)

// A 81x23 terminal leaves an 80x20 cell map at (0, 1): 160x80 micro-pixels
// over the default range of -10..10 by -6..6.
func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Config.View.FrameInterval == 0 {
		opts.Config = config.Default()
	}
	m, err := New(opts)
	require.NoError(t, err)
	require.NotNil(t, m.Init())
	return update(t, m, tea.WindowSizeMsg{Width: 81, Height: 23})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, a tea.MouseAction, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: a, Button: b}
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m = update(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	return update(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestResizeAppliesConfiguredRange(t *testing.T) {
	m := newModel(t, Options{})
	assert.Equal(t, vec.New(160, 80), m.graph.Viewport().Size())
	assert.InDelta(t, 0, m.graph.Center().X, 1e-9)
	assert.InDelta(t, 0, m.graph.Center().Y, 1e-9)
	ext := m.graph.Viewport().Extent()
	assert.InDelta(t, 20, ext.X, 1e-9)
	assert.InDelta(t, 12, ext.Y, 1e-9)
}

func TestClickAddsThenRemoves(t *testing.T) {
	m := newModel(t, Options{})

	m = click(t, m, 40, 11)
	pts := m.graph.Positions()
	require.Len(t, pts, 1)
	assert.InDelta(t, 0.125, pts[0].X, 1e-9)
	assert.InDelta(t, -0.3, pts[0].Y, 1e-9)

	m = click(t, m, 40, 11)
	assert.Empty(t, m.graph.Positions())
}

func TestDragPans(t *testing.T) {
	m := newModel(t, Options{})
	m = update(t, m, mouse(40, 11, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, frameMsg{})
	m = update(t, m, mouse(44, 11, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = update(t, m, frameMsg{})
	m = update(t, m, mouse(44, 11, tea.MouseActionRelease, tea.MouseButtonLeft))

	assert.Empty(t, m.graph.Positions())
	assert.InDelta(t, -1, m.graph.Center().X, 1e-9)
	assert.InDelta(t, 0, m.graph.Center().Y, 1e-9)
}

func TestDragMovesPoint(t *testing.T) {
	m := newModel(t, Options{})
	m.graph.AddPoint(vec.New(0, 0))

	m = update(t, m, mouse(40, 11, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.True(t, m.graph.Dragging())
	m = update(t, m, frameMsg{})
	m = update(t, m, mouse(44, 11, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = update(t, m, frameMsg{})
	m = update(t, m, mouse(44, 11, tea.MouseActionRelease, tea.MouseButtonLeft))

	pts := m.graph.Positions()
	require.Len(t, pts, 1)
	assert.InDelta(t, 1.125, pts[0].X, 1e-9)
	assert.InDelta(t, -0.3, pts[0].Y, 1e-9)
	assert.InDelta(t, 0, m.graph.Center().X, 1e-9)
}

func TestMouseOutsideMapIgnored(t *testing.T) {
	m := newModel(t, Options{})
	m = click(t, m, 40, 0) // header row
	assert.Empty(t, m.graph.Positions())
	assert.Equal(t, "", m.readout())
}

func TestHoverReadout(t *testing.T) {
	m := newModel(t, Options{})
	m = update(t, m, mouse(40, 11, tea.MouseActionMotion, tea.MouseButtonNone))
	assert.Equal(t, "0.125, -0.300", m.readout())

	m.graph.AddPoint(vec.New(0, 0))
	m = update(t, m, mouse(40, 11, tea.MouseActionMotion, tea.MouseButtonNone))
	assert.Equal(t, "point 0, 0", m.readout())
}

func TestWheelZoomsAboutPointer(t *testing.T) {
	m := newModel(t, Options{})
	m = update(t, m, mouse(40, 11, tea.MouseActionPress, tea.MouseButtonWheelUp))
	s := m.graph.Viewport().Scale()
	assert.InDelta(t, 0.125*5/6, s.X, 1e-12)
	assert.InDelta(t, -0.15*5/6, s.Y, 1e-12)
	assert.Empty(t, m.graph.Positions())

	m = newModel(t, Options{})
	wheel := mouse(40, 11, tea.MouseActionPress, tea.MouseButtonWheelDown)
	wheel.Ctrl = true
	m = update(t, m, wheel)
	s = m.graph.Viewport().Scale()
	assert.InDelta(t, 0.125, s.X, 1e-12)
	assert.InDelta(t, -0.15*7/6, s.Y, 1e-12)
}

func TestKeysMoveTheView(t *testing.T) {
	m := newModel(t, Options{})

	m = update(t, m, key("right"))
	m = update(t, m, key("up"))
	assert.InDelta(t, 2, m.graph.Center().X, 1e-9)
	assert.InDelta(t, 1.2, m.graph.Center().Y, 1e-9)

	m = update(t, m, key("+"))
	assert.Less(t, m.graph.Viewport().Extent().X, 20.0)
	assert.Equal(t, "zoom in", m.status)

	m = update(t, m, key("0"))
	assert.InDelta(t, 0, m.graph.Center().X, 1e-9)
	assert.InDelta(t, 20, m.graph.Viewport().Extent().X, 1e-9)

	m = update(t, m, key("-"))
	assert.Greater(t, m.graph.Viewport().Extent().X, 20.0)
}

func TestFitAndClear(t *testing.T) {
	m := newModel(t, Options{})
	m = update(t, m, key("f"))
	assert.Equal(t, "no points to fit", m.status)

	m.graph.AddPoints([]vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}})
	m = update(t, m, key("f"))
	assert.Equal(t, "fit 2 points", m.status)
	assert.InDelta(t, 2, m.graph.Center().X, 1e-9)
	assert.InDelta(t, 3, m.graph.Center().Y, 1e-9)

	m = update(t, m, key("c"))
	assert.Empty(t, m.graph.Positions())
}

func TestPasteWKT(t *testing.T) {
	m := newModel(t, Options{})
	m = update(t, m, key("p"))
	require.True(t, m.pasteMode)

	m.ta.SetValue("BOGUS (1 2)")
	m = update(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "wkt error")

	m.ta.SetValue("MULTIPOINT ((1 2), (3 4))")
	m = update(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}, m.graph.Positions())
	assert.InDelta(t, 2, m.graph.Center().X, 1e-9)

	// the map ignores the mouse while pasting
	m = update(t, m, key("p"))
	m = click(t, m, 40, 11)
	assert.Len(t, m.graph.Positions(), 2)
	m = update(t, m, key("esc"))
	assert.False(t, m.pasteMode)
}

func TestPointsTable(t *testing.T) {
	m := newModel(t, Options{})
	m.graph.AddPoints([]vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}})

	m = update(t, m, key("a"))
	require.True(t, m.showTable)
	rows := m.tbl.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2", numfmt.Format(3), numfmt.Format(4)}, []string(rows[1]))

	m = update(t, m, key("d"))
	assert.Equal(t, []vec.Vec2{{X: 3, Y: 4}}, m.graph.Positions())
	assert.Len(t, m.tbl.Rows(), 1)

	m.graph.AddPoint(vec.New(5, 6))
	m = update(t, m, frameMsg{})
	assert.Len(t, m.tbl.Rows(), 2)

	m = update(t, m, key("esc"))
	assert.False(t, m.showTable)
}

func TestLoadPathFitsOnResize(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "pts.csv", "x,y\n1,2\n3,4\n")

	m := newModel(t, Options{Path: p})
	assert.Equal(t, p, m.selPath)
	assert.Contains(t, m.status, "loaded: pts.csv")
	assert.Len(t, m.graph.Positions(), 2)
	assert.InDelta(t, 2, m.graph.Center().X, 1e-9)
	assert.InDelta(t, 3, m.graph.Center().Y, 1e-9)

	writeFile(t, dir, "pts.csv", "x,y\n7,8\n")
	m = update(t, m, fileChangedMsg{path: p})
	assert.Equal(t, []vec.Vec2{{X: 7, Y: 8}}, m.graph.Positions())
	assert.Contains(t, m.status, "reloaded")
	assert.InDelta(t, 2, m.graph.Center().X, 1e-9)
}

func TestLoadErrorKeepsPoints(t *testing.T) {
	m := newModel(t, Options{})
	m.graph.AddPoint(vec.New(1, 1))
	m.loadPath(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Contains(t, m.status, "load error")
	assert.Len(t, m.graph.Positions(), 1)
	assert.Empty(t, m.selPath)
}

func TestSidebarLoadsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.wkt", "POINT (5 5)")
	writeFile(t, dir, "notes.txt", "x")

	m := newModel(t, Options{})
	m.cwd = dir
	m = update(t, m, key("tab"))
	require.True(t, m.showSidebar)
	require.Len(t, m.items, 1)
	assert.Equal(t, 81-sidebarWidth-1, m.canvas.buf.w)

	// clicks on the sidebar do not reach the map
	m = click(t, m, 5, 5)
	assert.Empty(t, m.graph.Positions())

	m = update(t, m, key("enter"))
	assert.Equal(t, []vec.Vec2{{X: 5, Y: 5}}, m.graph.Positions())
	assert.Equal(t, filepath.Join(dir, "a.wkt"), m.selPath)
}

func TestRemoteMsgAppliesCommand(t *testing.T) {
	m := newModel(t, Options{})

	reply := make(chan error, 1)
	x, y := 1.0, 2.0
	m = update(t, m, remoteMsg{cmd: remote.Command{Op: remote.OpAdd, X: &x, Y: &y}, reply: reply})
	assert.NoError(t, <-reply)
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 2}}, m.graph.Positions())
	assert.Equal(t, "remote: add", m.status)

	m = update(t, m, remoteMsg{cmd: remote.Command{Op: remote.OpRemove, X: &y, Y: &x}, reply: reply})
	assert.ErrorIs(t, <-reply, remote.ErrNoPoint)
	assert.Contains(t, m.status, "no such point")
}

type sendFunc func(tea.Msg)

func (f sendFunc) Send(msg tea.Msg) { f(msg) }

func TestRemoteSink(t *testing.T) {
	boom := errors.New("boom")
	var got remote.Command
	sink := RemoteSink(sendFunc(func(msg tea.Msg) {
		rm := msg.(remoteMsg)
		got = rm.cmd
		rm.reply <- boom
	}))
	err := sink(context.Background(), remote.Command{Op: remote.OpClear})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, remote.OpClear, got.Op)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	idle := RemoteSink(sendFunc(func(tea.Msg) {}))
	assert.ErrorIs(t, idle(ctx, remote.Command{Op: remote.OpFit}), context.Canceled)
}

func TestFrameDrawsPlane(t *testing.T) {
	m := newModel(t, Options{})
	m = update(t, m, frameMsg{})

	b := m.canvas.buf
	assert.NotZero(t, b.m[2][40], "vertical axis")
	assert.NotZero(t, b.m[10][5], "horizontal axis")

	m = update(t, m, key("b"))
	assert.Equal(t, "bounds: true", m.status)
	m.graph.AddPoints([]vec.Vec2{{X: -5, Y: -3}, {X: 5, Y: 3}})
	m = update(t, m, frameMsg{})

	view := m.View()
	assert.Contains(t, view, "planeview")
	assert.NotEmpty(t, m.canvas.lines())
}

func TestQuit(t *testing.T) {
	m := newModel(t, Options{})
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
