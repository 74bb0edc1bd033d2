package plane

import (
	"planeview/internal/grid"
	"planeview/internal/numfmt"
	"planeview/internal/vec"
)

// Scheduler runs a callback before the host's next paint.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }

// Animate renders a frame on every tick of s until stop is called.
func (g *Graph) Animate(s Scheduler) (stop func()) {
	stopped := false
	var tick func()
	tick = func() {
		if stopped {
			return
		}
		g.Frame()
		s.RequestFrame(tick)
	}
	s.RequestFrame(tick)
	return func() { stopped = true }
}

// Frame applies one step of pan, pinch and drag, then repaints the surface.
func (g *Graph) Frame() {
	size := g.vp.Size()
	g.surface.ClearRect(0, 0, size.X, size.Y)

	g.gestures.Update(g.vp)
	g.editor.Frame(g.vp, g.mouse)

	lines := grid.Plan(g.vp)
	origin := g.vp.Origin()
	visible := g.store.Visible(g.vp)

	g.drawAxes(origin)
	g.drawGridlines(lines)
	g.curve.DrawCurve(g, visible)
	g.points.DrawPoints(g, visible)
	g.drawClose()
	g.drawLabels(lines, origin)
	if !g.hideReadout {
		g.drawReadout()
	}
	for _, f := range g.hooks {
		f(g)
	}
}

// Readout is the pointer's graph position to three significant digits.
func (g *Graph) Readout() string {
	p := g.MousePos()
	return numfmt.Precision(p.X, 3) + ", " + numfmt.Precision(p.Y, 3)
}

func (g *Graph) drawAxes(origin vec.Vec2) {
	g.surface.SetStroke(g.theme.Axis, 3)
	g.verticalLine(origin.X)
	g.horizontalLine(origin.Y)
}

func (g *Graph) drawGridlines(l grid.Lines) {
	g.surface.SetStroke(g.theme.Grid, 1)
	for _, x := range l.Xs {
		g.verticalLine(g.vp.ToSurfaceX(x))
	}
	for _, y := range l.Ys {
		g.horizontalLine(g.vp.ToSurfaceY(y))
	}
}

// drawClose rings the point under the pointer.
func (g *Graph) drawClose() {
	p := g.editor.Close()
	if p == nil {
		return
	}
	c := g.vp.ToSurface(p.Pos())
	g.surface.SetStroke(g.theme.Hover, 2)
	g.surface.BeginPath()
	g.surface.Arc(c.X, c.Y, g.editor.Radius)
	g.surface.Stroke()
}

// drawLabels writes the gridline values along the axes. X labels sit above
// the x axis unless it hugs the top edge; y labels sit right of the y axis
// unless they would run off the right edge.
func (g *Graph) drawLabels(l grid.Lines, origin vec.Vec2) {
	s := g.surface
	size := g.vp.Size()
	th := g.rem
	s.SetFill(g.theme.Label)
	s.SetFont(th)

	ty := origin.Y - th/2
	if origin.Y-th*2 < 0 {
		ty = th * 1.5
	}
	for _, x := range l.Xs {
		s.FillText(numfmt.Format(x), g.vp.ToSurfaceX(x)+th/2, ty)
	}
	for _, y := range l.Ys {
		text := numfmt.Format(y)
		w := s.MeasureText(text)
		tx := origin.X + th/2
		if origin.X+th+w > size.X {
			tx = size.X - th/2 - w
		}
		s.FillText(text, tx, g.vp.ToSurfaceY(y)-th/2)
	}
}

// drawReadout boxes the pointer position in the top-right corner.
func (g *Graph) drawReadout() {
	s := g.surface
	size := g.vp.Size()
	font := g.rem * 1.2
	pad := g.rem / 2
	text := g.Readout()

	s.SetFont(font)
	w := s.MeasureText(text)
	x := size.X - pad - w
	s.SetFill(g.theme.ReadoutBg)
	s.FillRect(x, 0, pad+w, g.rem*1.3+pad)
	s.SetFill(g.theme.Readout)
	s.FillText(text, x, g.rem*1.3+pad/2)
}

func (g *Graph) verticalLine(x float64) {
	s := g.surface
	s.BeginPath()
	s.MoveTo(x, 0)
	s.LineTo(x, g.vp.Size().Y)
	s.Stroke()
}

func (g *Graph) horizontalLine(y float64) {
	s := g.surface
	s.BeginPath()
	s.MoveTo(0, y)
	s.LineTo(g.vp.Size().X, y)
	s.Stroke()
}
