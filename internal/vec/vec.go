package vec

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for both surface and graph coordinates.
// It is a value type: copying a Vec2 copies its coordinates.
type Vec2 struct {
	X float64
	Y float64
}

func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func Zero() Vec2 { return Vec2{} }

func NaN() Vec2 { return Vec2{X: math.NaN(), Y: math.NaN()} }

// Inf returns a vector with both components set to +Inf if sign >= 0, -Inf otherwise.
func Inf(sign int) Vec2 { return Vec2{X: math.Inf(sign), Y: math.Inf(sign)} }

// Polar builds a vector from a radius and an angle in radians.
func Polar(r, theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{X: r * c, Y: r * s}
}

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise. A zero component yields ±Inf or NaN.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Abs() Vec2            { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

// Clamp limits each component to [lo, hi] of the matching component.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Gradient returns y/x.
func (v Vec2) Gradient() float64 { return v.Y / v.X }

func (v Vec2) SqrDist(o Vec2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

func (v Vec2) Dist(o Vec2) float64 { return math.Sqrt(v.SqrDist(o)) }

// TaxiDist is the Manhattan distance between v and o.
func (v Vec2) TaxiDist(o Vec2) float64 { return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y) }

// Lerp returns a*(1-t) + b*t.
func Lerp(a, b Vec2, t float64) Vec2 { return a.Scale(1 - t).Add(b.Scale(t)) }

// Mean averages vs; it returns the zero vector for an empty slice.
func Mean(vs []Vec2) Vec2 {
	if len(vs) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, v := range vs {
		sum.AddTo(v)
	}
	return sum.Scale(1 / float64(len(vs)))
}

// in-place forms

func (v *Vec2) Set(x, y float64) { v.X, v.Y = x, y }

func (v *Vec2) AddTo(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2) SubFrom(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v *Vec2) MulBy(o Vec2) {
	v.X *= o.X
	v.Y *= o.Y
}

func (v *Vec2) DivBy(o Vec2) {
	v.X /= o.X
	v.Y /= o.Y
}

func (v *Vec2) ScaleBy(s float64) {
	v.X *= s
	v.Y *= s
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
