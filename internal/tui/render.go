package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"planeview/internal/plane"
	"planeview/internal/vec"
)

// canvas is the terminal plane.Surface. One surface unit is one braille
// micro-pixel, so a w x h cell area is 2w x 4h units.
type canvas struct {
	buf   *brailleBuf
	paths [][]vec.Vec2

	stroke plane.Color
	fill   plane.Color
}

var _ plane.Surface = (*canvas)(nil)

func newCanvas(w, h int) *canvas { return &canvas{buf: newBrailleBuf(w, h)} }

func (c *canvas) resize(w, h int) { c.buf.resize(w, h) }

// size is the drawable area in surface units.
func (c *canvas) size() vec.Vec2 { return vec.New(float64(c.buf.w*cellW), float64(c.buf.h*cellH)) }

func (c *canvas) BeginPath() { c.paths = c.paths[:0] }

func (c *canvas) MoveTo(x, y float64) { c.paths = append(c.paths, []vec.Vec2{vec.New(x, y)}) }

func (c *canvas) LineTo(x, y float64) {
	if len(c.paths) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.paths) - 1
	c.paths[last] = append(c.paths[last], vec.New(x, y))
}

// Arc adds a closed circle as its own subpath.
func (c *canvas) Arc(x, y, r float64) {
	n := max(8, int(2*math.Pi*r))
	ring := make([]vec.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		ring = append(ring, vec.New(x, y).Add(vec.Polar(r, 2*math.Pi*float64(i)/float64(n))))
	}
	c.paths = append(c.paths, ring)
}

// Stroke rasterizes the current path. Widths are ignored: every line is one
// micro-pixel wide.
func (c *canvas) Stroke() {
	for _, p := range c.paths {
		if len(p) == 1 {
			c.buf.setPixel(round(p[0].X), round(p[0].Y), c.stroke)
			continue
		}
		for i := 1; i < len(p); i++ {
			a, b, ok := c.clip(p[i-1], p[i])
			if !ok {
				continue
			}
			c.buf.drawLineMicro(round(a.X), round(a.Y), round(b.X), round(b.Y), c.stroke)
		}
	}
}

// FillText writes text into the cell row holding the pixel just above the
// baseline y, starting at the cell holding x.
func (c *canvas) FillText(text string, x, y float64) {
	c.buf.putText(int(math.Floor(x/cellW)), int(math.Floor((y-1)/cellH)), text, c.fill)
}

func (c *canvas) MeasureText(text string) float64 {
	return float64(lipgloss.Width(text) * cellW)
}

func (c *canvas) FillRect(x, y, w, h float64) {
	x0, y0, x1, y1 := cells(x, y, w, h)
	c.buf.fillCells(x0, y0, x1, y1, c.fill)
}

func (c *canvas) ClearRect(x, y, w, h float64) {
	x0, y0, x1, y1 := cells(x, y, w, h)
	c.buf.clearCells(x0, y0, x1, y1)
}

func (c *canvas) SetStroke(col plane.Color, _ float64) { c.stroke = col }
func (c *canvas) SetFill(col plane.Color)              { c.fill = col }
func (c *canvas) SetFont(float64)                      {}

func (c *canvas) lines() []string { return c.buf.toLines() }

// clip cuts segment ab to the canvas plus a one-pixel margin so far away
// points never cost a long Bresenham walk.
func (c *canvas) clip(a, b vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	lo := vec.New(-1, -1)
	hi := c.size()
	if a.IsNaN() || b.IsNaN() {
		return a, b, false
	}
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - lo.X},
		{d.X, hi.X - a.X},
		{-d.Y, a.Y - lo.Y},
		{d.Y, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

// cells converts a surface rectangle to the cells it touches.
func cells(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(x / cellW))
	y0 = int(math.Floor(y / cellH))
	x1 = int(math.Ceil((x + w) / cellW))
	y1 = int(math.Ceil((y + h) / cellH))
	return
}

func round(f float64) int {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return int(math.Round(f))
}
