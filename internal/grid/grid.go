// Package grid chooses where gridlines go for the current viewport.
package grid

import (
	"math"

	"planeview/internal/viewport"
)

// snapBelow is the magnitude under which a gridline is treated as the axis itself.
const snapBelow = 1e-9

// Lines holds gridline positions in graph space, ascending.
type Lines struct {
	Xs       []float64
	Ys       []float64
	SpacingX float64
	SpacingY float64
}

// Plan computes gridlines for v. Zero lines are kept in Xs but dropped from Ys
// so the horizontal axis is not drawn twice.
func Plan(v *viewport.Viewport) Lines {
	extent := v.Extent()
	lo, hi := v.Bounds()

	var l Lines
	l.SpacingX = Spacing(extent.X)
	l.SpacingY = Spacing(extent.Y)
	l.Xs = positions(lo.X, hi.X, l.SpacingX, false)
	l.Ys = positions(lo.Y, hi.Y, l.SpacingY, true)
	return l
}

// Spacing returns a 1/2/5 x 10^n step that puts roughly 2.5 to 12 lines
// across size. It returns 0 for sizes that cannot be gridded.
func Spacing(size float64) float64 {
	if !(size > 0) || math.IsInf(size, 0) {
		return 0
	}
	s := math.Pow(10, math.Floor(math.Log10(size)))
	switch n := size / s; {
	case n < 2.5:
		s /= 5
	case n < 6:
		s /= 2
	}
	return s
}

func positions(lead, trail, spacing float64, dropZero bool) []float64 {
	if spacing == 0 || math.IsNaN(lead) || math.IsNaN(trail) {
		return nil
	}
	first := math.Floor(lead/spacing) * spacing
	n := int(math.Ceil((trail - first) / spacing))
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		p := first + float64(i)*spacing
		if math.Abs(p) < snapBelow {
			if dropZero {
				continue
			}
			p = 0
		}
		out = append(out, p)
	}
	return out
}
