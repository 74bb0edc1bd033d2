package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"planeview/internal/config"
	"planeview/internal/plane"
	"planeview/internal/vec"
)

// Options configure a Model.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	// Path is loaded at start when set.
	Path string
}

type Model struct {
	cfg    config.Config
	log    *slog.Logger
	styles styles

	width  int
	height int

	showSidebar bool
	helpVisible bool
	showBounds  *bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Plane
	graph  *plane.Graph
	canvas *canvas
	frames *frameScheduler
	ranged bool // initial range applied
	fitDue bool // fit once the map has a size

	// left button held on the map
	pressed bool
	hover   bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// points table
	showTable    bool
	tbl          table.Model
	tableVersion uint64

	// file watching
	changes     chan string
	watchCancel *context.CancelFunc
}

func New(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := opts.Config
	m := Model{
		cfg:         cfg,
		log:         log,
		styles:      newStyles(cfg.Theme),
		helpVisible: true,
		showBounds:  new(bool),
		status:      "planeview ready",
		changes:     make(chan string, 1),
		watchCancel: new(context.CancelFunc),
	}
	m.cwd, _ = os.Getwd()

	m.canvas = newCanvas(0, 0)
	g, err := plane.New(m.canvas, plane.Options{
		Rem:          cellH,
		HitRadius:    cfg.Input.HitRadius,
		FitMargin:    cfg.View.FitMargin,
		ZoomDivisor:  cfg.Input.ZoomDivisor,
		WheelDivisor: cfg.Input.WheelDivisor,
		PinchFactor:  cfg.Input.PinchFactor,
		MinScale:     cfg.View.MinScale,
		MaxScale:     cfg.View.MaxScale,
		Theme:        planeTheme(cfg.Theme),
		HideReadout:  true,
		Logger:       log,
	})
	if err != nil {
		return m, err
	}
	bounds := m.showBounds
	g.AddDrawFunc(func(g *plane.Graph) {
		if *bounds {
			drawBounds(g)
		}
	})
	m.graph = g
	m.frames = &frameScheduler{interval: cfg.View.FrameInterval}

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to plot; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// points table setup
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(pointColumns()))
	m.tbl.SetHeight(12)
	m.refreshDir()

	if opts.Path != "" {
		m.loadPath(opts.Path)
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.frames.start(m.graph), waitForChange(m.changes)}
	if m.cfg.Watch && m.selPath != "" {
		m.startWatch(m.selPath)
	}
	return tea.Batch(cmds...)
}

type frameMsg struct{}

// frameScheduler paces plane.Graph.Animate with tea.Tick.
type frameScheduler struct {
	interval time.Duration
	pending  func()
	stop     func()
}

func (s *frameScheduler) RequestFrame(fn func()) { s.pending = fn }

func (s *frameScheduler) start(g *plane.Graph) tea.Cmd {
	if s.stop == nil {
		s.stop = g.Animate(s)
	}
	return s.tick()
}

func (s *frameScheduler) tick() tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return frameMsg{} })
}

// run draws the pending frame and reports whether another was requested.
func (s *frameScheduler) run() bool {
	fn := s.pending
	s.pending = nil
	if fn == nil {
		return false
	}
	fn()
	return s.pending != nil
}

// drawBounds outlines the bounding box of the points.
func drawBounds(g *plane.Graph) {
	ps := g.Positions()
	if len(ps) == 0 {
		return
	}
	lo, hi := ps[0], ps[0]
	for _, p := range ps[1:] {
		lo = vec.New(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = vec.New(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	vp := g.Viewport()
	a, b := vp.ToSurface(lo), vp.ToSurface(hi)
	s := g.Surface()
	s.SetStroke(g.Theme().Grid, 1)
	s.BeginPath()
	s.MoveTo(a.X, a.Y)
	s.LineTo(b.X, a.Y)
	s.LineTo(b.X, b.Y)
	s.LineTo(a.X, b.Y)
	s.LineTo(a.X, a.Y)
	s.Stroke()
}
