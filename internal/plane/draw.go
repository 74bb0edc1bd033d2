package plane

import "planeview/internal/vec"

// curveMinStep is the taxicab distance in surface units below which the
// default curve skips a point.
const curveMinStep = 3

// CurveDrawer draws the curve through the visible points, given in surface
// space and in store order.
type CurveDrawer interface {
	DrawCurve(g *Graph, pts []vec.Vec2)
}

// PointDrawer draws the visible points, given in surface space.
type PointDrawer interface {
	DrawPoints(g *Graph, pts []vec.Vec2)
}

// CurveFunc adapts a function to CurveDrawer.
type CurveFunc func(g *Graph, pts []vec.Vec2)

func (f CurveFunc) DrawCurve(g *Graph, pts []vec.Vec2) { f(g, pts) }

// PointFunc adapts a function to PointDrawer.
type PointFunc func(g *Graph, pts []vec.Vec2)

func (f PointFunc) DrawPoints(g *Graph, pts []vec.Vec2) { f(g, pts) }

// NoPoints draws nothing; use it to show the curve alone.
var NoPoints = PointFunc(func(*Graph, []vec.Vec2) {})

// DrawFunc is a per-frame hook run after the built-in layers.
type DrawFunc func(g *Graph)

// DefaultCurve strokes a polyline through the points, dropping points that
// are closer than curveMinStep to the last one drawn.
type DefaultCurve struct{}

func (DefaultCurve) DrawCurve(g *Graph, pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	s := g.Surface()
	s.SetStroke(g.theme.Curve, 2.5)
	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	last := pts[0]
	for _, p := range pts[1:] {
		if p.TaxiDist(last) < curveMinStep {
			continue
		}
		last = p
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
}

// DefaultPoints strokes a small circle at every point.
type DefaultPoints struct{}

func (DefaultPoints) DrawPoints(g *Graph, pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	s := g.Surface()
	r := g.Rem() * 0.25
	s.SetStroke(g.theme.Point, 1.5)
	for _, p := range pts {
		s.BeginPath()
		s.Arc(p.X, p.Y, r)
		s.Stroke()
	}
}
