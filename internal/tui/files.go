package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"planeview/internal/geom"
	"planeview/internal/vec"
	"planeview/internal/watch"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: filepath.Ext(name), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath replaces the points with the file's and fits the view to them.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("load failed", "path", p, "err", err)
		return
	}
	m.selPath = p
	m.setPoints(d.Points)
	m.status = fmt.Sprintf("loaded: %s  points=%d", filepath.Base(p), len(d.Points))
	m.log.Info("loaded", "path", p, "points", len(d.Points))
}

// reload re-reads the open file after it changed on disk. The view is kept.
func (m *Model) reload(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "reload error: " + err.Error()
		m.log.Warn("reload failed", "path", p, "err", err)
		return
	}
	m.graph.ClearPoints()
	m.graph.AddPoints(d.Points)
	m.status = fmt.Sprintf("reloaded: %s  points=%d", filepath.Base(p), len(d.Points))
}

func (m *Model) setPoints(pts []vec.Vec2) {
	m.graph.ClearPoints()
	m.graph.AddPoints(pts)
	if m.ranged {
		m.graph.FitPoints()
	} else {
		m.fitDue = true
	}
}

type fileChangedMsg struct{ path string }

// startWatch follows p for changes, replacing any earlier watch.
func (m Model) startWatch(p string) {
	if cancel := *m.watchCancel; cancel != nil {
		cancel()
	}
	w, err := watch.New(p, watch.DefaultDelay, m.log)
	if err != nil {
		m.log.Warn("watch failed", "path", p, "err", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	*m.watchCancel = cancel
	changes := m.changes
	go w.Run(ctx, func(path string) {
		select {
		case changes <- path:
		default:
		}
	})
}

func (m Model) stopWatch() {
	if cancel := *m.watchCancel; cancel != nil {
		cancel()
		*m.watchCancel = nil
	}
}

// waitForChange delivers the next file change as a message.
func waitForChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg { return fileChangedMsg{path: <-ch} }
}
