package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New(3, -4)
	b := New(1, 2)

	assert.Equal(t, Vec2{4, -2}, a.Add(b))
	assert.Equal(t, Vec2{2, -6}, a.Sub(b))
	assert.Equal(t, Vec2{3, -8}, a.Mul(b))
	assert.Equal(t, Vec2{3, -2}, a.Div(b))
	assert.Equal(t, Vec2{6, -8}, a.Scale(2))
	assert.Equal(t, Vec2{-3, 4}, a.Neg())
	assert.Equal(t, Vec2{3, 4}, a.Abs())
	assert.Equal(t, -5.0, a.Dot(b))
	assert.InDelta(t, -4.0/3, a.Gradient(), 1e-15)

	// pure forms leave operands alone
	assert.Equal(t, Vec2{3, -4}, a)
}

func TestInPlace(t *testing.T) {
	v := New(1, 1)
	v.AddTo(New(1, 2))
	assert.Equal(t, Vec2{2, 3}, v)
	v.SubFrom(New(1, 1))
	assert.Equal(t, Vec2{1, 2}, v)
	v.MulBy(New(3, 3))
	assert.Equal(t, Vec2{3, 6}, v)
	v.DivBy(New(3, 2))
	assert.Equal(t, Vec2{1, 3}, v)
	v.ScaleBy(-1)
	assert.Equal(t, Vec2{-1, -3}, v)
	v.Set(7, 8)
	assert.Equal(t, Vec2{7, 8}, v)
}

func TestDistances(t *testing.T) {
	a := New(0, 0)
	b := New(3, 4)
	assert.Equal(t, 25.0, a.SqrDist(b))
	assert.Equal(t, 5.0, a.Dist(b))
	assert.Equal(t, 7.0, a.TaxiDist(b))
}

func TestClampLerpPolar(t *testing.T) {
	assert.Equal(t, Vec2{0, 10}, New(-5, 20).Clamp(New(0, 0), New(10, 10)))
	assert.Equal(t, Vec2{5, 5}, New(5, 5).Clamp(New(0, 0), New(10, 10)))

	assert.Equal(t, Vec2{2.5, 5}, Lerp(New(0, 0), New(10, 20), 0.25))

	p := Polar(2, math.Pi/2)
	assert.InDelta(t, 0, p.X, 1e-15)
	assert.InDelta(t, 2, p.Y, 1e-15)
}

func TestSentinels(t *testing.T) {
	assert.True(t, NaN().IsNaN())
	assert.False(t, Zero().IsNaN())
	assert.True(t, math.IsInf(Inf(1).X, 1))
	assert.True(t, math.IsInf(Inf(-1).Y, -1))

	// division by zero follows IEEE semantics
	d := New(1, 0).Div(New(0, 0))
	assert.True(t, math.IsInf(d.X, 1))
	assert.True(t, math.IsNaN(d.Y))
}

func TestMean(t *testing.T) {
	assert.Equal(t, Vec2{}, Mean(nil))
	assert.Equal(t, Vec2{2, 3}, Mean([]Vec2{{1, 1}, {3, 5}}))
}
