// Package viewport maps between drawing-surface pixels and graph space.
//
// Surface space has its origin at the top-left corner with y growing down.
// Graph space is Cartesian. The mapping is a per-axis scale followed by an
// offset:
//
//	graph   = surface*scale - offset
//	surface = (graph + offset) / scale
//
// scale.Y is negative so that "up" on the surface is increasing graph y.
package viewport

import (
	"math"

	"planeview/internal/vec"
)

// Axis selects which axes a zoom applies to.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY

	AxisBoth = AxisX | AxisY
)

const (
	// DefaultZoomDivisor converts a raw wheel-style delta into a zoom fraction.
	DefaultZoomDivisor = 1000

	DefaultMinScale = 1e-12
	DefaultMaxScale = 1e12

	// minStepFactor bounds a single zoom step so it can never zero or flip
	// the scale.
	minStepFactor = 0.1
)

// Viewport is the graph <-> surface transform. The zero value is not usable;
// construct with New.
type Viewport struct {
	scale  vec.Vec2
	offset vec.Vec2
	size   vec.Vec2

	// ZoomDivisor is used by Zoom to turn deltaY into a zoom fraction.
	ZoomDivisor float64
	// MinScale and MaxScale bound |scale| per axis, in graph units per pixel.
	MinScale float64
	MaxScale float64
}

// New returns a viewport of the given surface size with 0.01 graph units per
// pixel and the graph origin at the top-left corner.
func New(size vec.Vec2) *Viewport {
	return &Viewport{
		scale:       vec.New(0.01, -0.01),
		size:        nonNegative(size),
		ZoomDivisor: DefaultZoomDivisor,
		MinScale:    DefaultMinScale,
		MaxScale:    DefaultMaxScale,
	}
}

func (v *Viewport) Scale() vec.Vec2  { return v.scale }
func (v *Viewport) Offset() vec.Vec2 { return v.offset }
func (v *Viewport) Size() vec.Vec2   { return v.size }

// ToGraph converts a surface position into graph space.
func (v *Viewport) ToGraph(p vec.Vec2) vec.Vec2 {
	return p.Mul(v.scale).Sub(v.offset)
}

// ToSurface converts a graph position into surface space.
func (v *Viewport) ToSurface(p vec.Vec2) vec.Vec2 {
	return p.Add(v.offset).Div(v.scale)
}

func (v *Viewport) ToSurfaceX(x float64) float64 { return (x + v.offset.X) / v.scale.X }
func (v *Viewport) ToSurfaceY(y float64) float64 { return (y + v.offset.Y) / v.scale.Y }

// DeltaToGraph converts a surface displacement (not a position) into graph units.
func (v *Viewport) DeltaToGraph(d vec.Vec2) vec.Vec2 { return d.Mul(v.scale) }

// Extent is the visible graph-space size; both components are non-negative.
func (v *Viewport) Extent() vec.Vec2 { return v.size.Mul(v.scale).Abs() }

// Center returns the graph position shown at the middle of the surface.
func (v *Viewport) Center() vec.Vec2 {
	return v.size.Mul(v.scale).Scale(0.5).Sub(v.offset)
}

// SetCenter moves the view so p sits at the middle of the surface. Scale is
// unchanged.
func (v *Viewport) SetCenter(p vec.Vec2) {
	v.offset = v.size.Mul(v.scale).Scale(0.5).Sub(p)
}

// SetXRange makes the left and right surface edges show min and max.
// A zero-width surface or an empty range leaves the axis untouched. A range
// whose scale falls outside [MinScale, MaxScale] is widened or narrowed about
// its midpoint.
func (v *Viewport) SetXRange(min, max float64) {
	if v.size.X == 0 || min == max {
		return
	}
	v.scale.X = v.clampScale((max - min) / v.size.X)
	v.offset.X = v.size.X*v.scale.X/2 - (min+max)/2
}

// SetYRange makes the bottom and top surface edges show min and max.
func (v *Viewport) SetYRange(min, max float64) {
	if v.size.Y == 0 || min == max {
		return
	}
	v.scale.Y = v.clampScale((max - min) / -v.size.Y)
	v.offset.Y = v.size.Y*v.scale.Y/2 - (min+max)/2
}

// SetRange is the two-axis form of SetXRange and SetYRange.
func (v *Viewport) SetRange(bottomLeft, topRight vec.Vec2) {
	v.SetXRange(bottomLeft.X, topRight.X)
	v.SetYRange(bottomLeft.Y, topRight.Y)
}

// Zoom scales the view about pivot (a surface position) by deltaY/ZoomDivisor.
// Positive deltas zoom out.
func (v *Viewport) Zoom(pivot vec.Vec2, deltaY float64, axes Axis) {
	div := v.ZoomDivisor
	if div == 0 {
		div = DefaultZoomDivisor
	}
	v.ZoomBy(pivot, deltaY/div, axes)
}

// ZoomBy multiplies the scale of the selected axes by 1+amount while keeping
// the graph position under pivot fixed.
func (v *Viewport) ZoomBy(pivot vec.Vec2, amount float64, axes Axis) {
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}
	if axes&AxisX != 0 {
		v.scale.X, v.offset.X = v.zoomAxis(v.scale.X, v.offset.X, pivot.X, amount)
	}
	if axes&AxisY != 0 {
		v.scale.Y, v.offset.Y = v.zoomAxis(v.scale.Y, v.offset.Y, pivot.Y, amount)
	}
}

func (v *Viewport) zoomAxis(scale, offset, pivot, amount float64) (float64, float64) {
	factor := math.Max(1+amount, minStepFactor)
	next := v.clampScale(scale * factor)
	applied := next/scale - 1
	return next, offset + pivot*applied*scale
}

func (v *Viewport) clampScale(s float64) float64 {
	lo, hi := v.MinScale, v.MaxScale
	if lo <= 0 {
		lo = DefaultMinScale
	}
	if hi <= 0 {
		hi = DefaultMaxScale
	}
	m := math.Min(math.Max(math.Abs(s), lo), hi)
	return math.Copysign(m, s)
}

// Pan shifts the view by a graph-space delta.
func (v *Viewport) Pan(delta vec.Vec2) { v.offset.AddTo(delta) }

// Resize records a new surface size. Scale and offset are kept, so the view
// grows or shrinks from the top-left corner.
func (v *Viewport) Resize(size vec.Vec2) { v.size = nonNegative(size) }

// Bounds returns the visible graph rectangle as (bottom-left, top-right).
func (v *Viewport) Bounds() (vec.Vec2, vec.Vec2) {
	a := v.ToGraph(vec.Zero())
	b := v.ToGraph(v.size)
	return vec.New(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		vec.New(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}

// Contains reports whether p lies strictly inside the visible rectangle.
func (v *Viewport) Contains(p vec.Vec2) bool {
	lo, hi := v.Bounds()
	return p.X > lo.X && p.X < hi.X && p.Y > lo.Y && p.Y < hi.Y
}

// Origin returns the surface position of the graph origin clamped into the
// surface, which is where the axes are drawn.
func (v *Viewport) Origin() vec.Vec2 {
	return v.offset.Div(v.scale).Clamp(vec.Zero(), v.size)
}

func nonNegative(s vec.Vec2) vec.Vec2 {
	return vec.New(math.Max(s.X, 0), math.Max(s.Y, 0))
}
