// Package plane composes the viewport, gestures, gridlines and point store
// into an interactive coordinate-plane Graph that paints into a Surface.
package plane

import (
	"errors"
	"io"
	"log/slog"

	"planeview/internal/gesture"
	"planeview/internal/points"
	"planeview/internal/vec"
	"planeview/internal/viewport"
)

// ErrNoSurface is returned by New when no drawing surface is supplied.
var ErrNoSurface = errors.New("plane: no drawing surface")

const (
	DefaultRem       = 16
	DefaultHitRadius = 0.5
	DefaultFitMargin = 0.05
)

// Options configures a Graph. Zero values select the defaults.
type Options struct {
	// Size is the initial surface size in surface units.
	Size vec.Vec2
	// Rem is the label size before device-pixel scaling.
	Rem float64
	// HitRadius is the point pick radius in rems.
	HitRadius float64
	// FitMargin is the fraction of the point span added around FitPoints.
	FitMargin float64

	ZoomDivisor  float64
	WheelDivisor float64
	PinchFactor  float64
	MinScale     float64
	MaxScale     float64

	Theme Theme
	// HideReadout suppresses the pointer position box in the top-right corner.
	HideReadout bool

	Logger *slog.Logger
}

// Graph is an interactive coordinate plane. All methods must be called from
// one goroutine: the host's event loop.
type Graph struct {
	surface Surface
	log     *slog.Logger

	vp       *viewport.Viewport
	gestures *gesture.Controller
	store    *points.Store
	editor   *points.Editor

	// editorID is the contact that owns the current editor press.
	editorID gesture.PointerID
	mouse    vec.Vec2
	dpr      float64

	baseRem   float64
	rem       float64
	hitRadius float64
	fitMargin float64

	theme       Theme
	hideReadout bool
	curve       CurveDrawer
	points      PointDrawer
	hooks       []DrawFunc
}

// New creates a Graph centred on the origin.
func New(s Surface, opts Options) (*Graph, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	g := &Graph{
		surface:     s,
		log:         opts.Logger,
		vp:          viewport.New(opts.Size),
		gestures:    gesture.New(),
		store:       points.NewStore(),
		dpr:         1,
		baseRem:     orDefault(opts.Rem, DefaultRem),
		hitRadius:   orDefault(opts.HitRadius, DefaultHitRadius),
		fitMargin:   orDefault(opts.FitMargin, DefaultFitMargin),
		theme:       opts.Theme,
		hideReadout: opts.HideReadout,
		curve:       DefaultCurve{},
		points:      DefaultPoints{},
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.theme == (Theme{}) {
		g.theme = DefaultTheme()
	}
	g.vp.ZoomDivisor = opts.ZoomDivisor
	g.vp.MinScale = opts.MinScale
	g.vp.MaxScale = opts.MaxScale
	if opts.WheelDivisor > 0 {
		g.gestures.WheelDivisor = opts.WheelDivisor
	}
	if opts.PinchFactor > 0 {
		g.gestures.PinchFactor = opts.PinchFactor
	}
	g.rem = g.baseRem
	g.editor = points.NewEditor(g.store, g.rem*g.hitRadius)
	g.vp.SetCenter(vec.Zero())
	return g, nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func (g *Graph) Surface() Surface                   { return g.surface }
func (g *Graph) Viewport() *viewport.Viewport       { return g.vp }
func (g *Graph) Theme() Theme                       { return g.theme }
func (g *Graph) Rem() float64                       { return g.rem }
func (g *Graph) SetCurveDrawer(d CurveDrawer)       { g.curve = d }
func (g *Graph) SetPointDrawer(d PointDrawer)       { g.points = d }
func (g *Graph) AddDrawFunc(f DrawFunc)             { g.hooks = append(g.hooks, f) }
func (g *Graph) Gestures() *gesture.Controller      { return g.gestures }
func (g *Graph) Positions() []vec.Vec2              { return g.store.Positions() }
func (g *Graph) Points() []*points.Point            { return g.store.Points() }
func (g *Graph) Close() *points.Point               { return g.editor.Close() }
func (g *Graph) Dragging() bool                     { return g.editor.Dragging() }
func (g *Graph) MousePos() vec.Vec2                 { return g.vp.ToGraph(g.mouse) }
func (g *Graph) PointsVersion() uint64              { return g.store.Version() }
func (g *Graph) SurfaceToGraph(p vec.Vec2) vec.Vec2 { return g.vp.ToGraph(p) }

// Resize records a new surface size of w x h device-independent units at
// device pixel ratio dpr. Scale and offset are kept.
func (g *Graph) Resize(w, h, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	g.dpr = dpr
	g.rem = g.baseRem * dpr
	g.editor.Radius = g.rem * g.hitRadius
	g.vp.Resize(vec.New(w, h).Scale(dpr))
}

func (g *Graph) device(pos vec.Vec2) vec.Vec2 { return pos.Scale(g.dpr) }

// PointerDown starts a contact. The first contact also starts an editor
// press; while it drags a point the view does not pan.
func (g *Graph) PointerDown(id gesture.PointerID, pos vec.Vec2) {
	p := g.device(pos)
	if !g.gestures.Pressed() {
		g.mouse = p
		g.editorID = id
		g.editor.Hover(g.vp, p)
		g.editor.Press(p)
		g.gestures.Disabled = g.editor.Dragging()
	} else {
		g.editor.Cancel()
	}
	g.gestures.Down(id, p)
}

// PointerMove tracks a contact or, with nothing pressed, the hover position.
func (g *Graph) PointerMove(id gesture.PointerID, pos vec.Vec2) {
	p := g.device(pos)
	g.gestures.Move(id, p)
	switch {
	case !g.editor.Pressed():
		g.mouse = p
		g.editor.Hover(g.vp, p)
	case id == g.editorID:
		g.mouse = p
		g.editor.Move(p)
	}
}

// PointerUp ends a contact; it also serves pointer leave and cancel.
func (g *Graph) PointerUp(id gesture.PointerID, pos vec.Vec2) {
	p := g.device(pos)
	if g.editor.Pressed() && id == g.editorID {
		g.mouse = p
		ed := g.editor.Release(g.vp, p)
		switch {
		case ed.Added != nil:
			g.log.Debug("point added", "pos", ed.Added.Pos().String(), "count", g.store.Len())
		case ed.Removed != nil:
			g.log.Debug("point removed", "pos", ed.Removed.Pos().String(), "count", g.store.Len())
		}
	}
	g.gestures.Up(id)
	if !g.gestures.Pressed() {
		g.gestures.Disabled = false
	}
}

// Wheel zooms about pos. Positive deltaY zooms out; Ctrl limits the zoom to
// y and Shift to x.
func (g *Graph) Wheel(pos vec.Vec2, deltaY float64, mods gesture.Modifiers) {
	g.gestures.Wheel(g.vp, g.device(pos), deltaY, mods)
}

func (g *Graph) AddPoint(v vec.Vec2) *points.Point { return g.store.Add(v) }

func (g *Graph) AddPoints(vs []vec.Vec2) []*points.Point { return g.store.AddMany(vs) }

// RemovePoint removes p by identity; it is a no-op when p is not present.
func (g *Graph) RemovePoint(p *points.Point) bool { return g.store.Remove(p) }

// RemovePointAt removes the first point located exactly at v.
func (g *Graph) RemovePointAt(v vec.Vec2) bool {
	return g.store.Remove(g.store.Find(v))
}

func (g *Graph) ClearPoints() { g.store.Clear() }

// Center returns the graph position at the middle of the surface.
func (g *Graph) Center() vec.Vec2 { return g.vp.Center() }

func (g *Graph) SetCenter(p vec.Vec2) { g.vp.SetCenter(p) }

func (g *Graph) SetXRange(min, max float64) { g.vp.SetXRange(min, max) }

func (g *Graph) SetYRange(min, max float64) { g.vp.SetYRange(min, max) }

func (g *Graph) SetRange(bottomLeft, topRight vec.Vec2) { g.vp.SetRange(bottomLeft, topRight) }

// FitPoints sets the range to the points' bounding box plus a margin. It
// reports false when there are no points.
func (g *Graph) FitPoints() bool {
	lo, hi, ok := g.store.Bounds()
	if !ok {
		return false
	}
	pad := hi.Sub(lo).Scale(g.fitMargin)
	if hi.X == lo.X {
		pad.X = 1
	}
	if hi.Y == lo.Y {
		pad.Y = 1
	}
	g.vp.SetRange(lo.Sub(pad), hi.Add(pad))
	g.log.Debug("fit points", "lo", lo.String(), "hi", hi.String())
	return true
}
