package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"planeview/internal/plane"
)

const (
	cellW = 2 // micro-pixels per cell, horizontally
	cellH = 4 // and vertically
)

// brailleBuf is a grid of braille cells, 2x4 micro-pixels each, with a
// colour per cell and a text layer drawn over the dots.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	fg    [][]plane.Color
	bg    [][]plane.Color
	text  [][]rune // 0 means no text
	tfg   [][]plane.Color
	cache map[[2]plane.Color]lipgloss.Style
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{cache: map[[2]plane.Color]lipgloss.Style{}}
	b.resize(w, h)
	return b
}

func (b *brailleBuf) resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	b.w, b.h = w, h
	b.m = make([][]uint8, h)
	b.fg = make([][]plane.Color, h)
	b.bg = make([][]plane.Color, h)
	b.text = make([][]rune, h)
	b.tfg = make([][]plane.Color, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.fg[i] = make([]plane.Color, w)
		b.bg[i] = make([]plane.Color, w)
		b.text[i] = make([]rune, w)
		b.tfg[i] = make([]plane.Color, w)
	}
}

func (b *brailleBuf) inside(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < b.w && cy < b.h
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c plane.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/cellW, mx%cellW
	cy, ry := my/cellH, my%cellH
	if !b.inside(cx, cy) {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.fg[cy][cx] = c
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c plane.Color) {
	// far off-grid segments are clipped by the caller
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// putText writes s into the text layer starting at cell (cx, cy).
func (b *brailleBuf) putText(cx, cy int, s string, c plane.Color) {
	if cy < 0 || cy >= b.h {
		return
	}
	for _, r := range s {
		if b.inside(cx, cy) {
			b.text[cy][cx] = r
			b.tfg[cy][cx] = c
		}
		cx++
	}
}

// fillCells blanks a cell rectangle and paints its background.
func (b *brailleBuf) fillCells(x0, y0, x1, y1 int, bg plane.Color) {
	for cy := max(y0, 0); cy < min(y1, b.h); cy++ {
		for cx := max(x0, 0); cx < min(x1, b.w); cx++ {
			b.m[cy][cx] = 0
			b.text[cy][cx] = ' '
			b.tfg[cy][cx] = ""
			b.bg[cy][cx] = bg
		}
	}
}

func (b *brailleBuf) clearCells(x0, y0, x1, y1 int) {
	for cy := max(y0, 0); cy < min(y1, b.h); cy++ {
		for cx := max(x0, 0); cx < min(x1, b.w); cx++ {
			b.m[cy][cx] = 0
			b.fg[cy][cx] = ""
			b.bg[cy][cx] = ""
			b.text[cy][cx] = 0
			b.tfg[cy][cx] = ""
		}
	}
}

// cell returns the rune and colours shown at (cx, cy).
func (b *brailleBuf) cell(cx, cy int) (rune, plane.Color, plane.Color) {
	if t := b.text[cy][cx]; t != 0 {
		return t, b.tfg[cy][cx], b.bg[cy][cx]
	}
	if mask := b.m[cy][cx]; mask != 0 {
		return rune(0x2800 + int(mask)), b.fg[cy][cx], b.bg[cy][cx]
	}
	return ' ', "", b.bg[cy][cx]
}

func (b *brailleBuf) style(fg, bg plane.Color) lipgloss.Style {
	key := [2]plane.Color{fg, bg}
	if s, ok := b.cache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(string(fg)))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(string(bg)))
	}
	b.cache[key] = s
	return s
}

// toLines renders every row, styling runs of cells that share colours.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	var sb, run strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		run.Reset()
		var runFg, runBg plane.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runFg == "" && runBg == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(b.style(runFg, runBg).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			r, fg, bg := b.cell(x, y)
			if fg != runFg || bg != runBg {
				flush()
				runFg, runBg = fg, bg
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// plain renders the runes without styling.
func (b *brailleBuf) plain() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x], _, _ = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}
