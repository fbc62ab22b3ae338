package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// Box-drawing runes for panel outlines.
const (
	boxH  = '─'
	boxV  = '│'
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
)

type cell struct {
	ch     rune
	fg, bg loop.RGB
}

// canvas is a grid of terminal cells that a frame is painted onto before
// being turned into styled text.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int, bg loop.RGB) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: loop.White, bg: bg}
	}
	return c
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

func (c *canvas) fill(r loop.Rect, bg loop.RGB) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if p := c.at(x, y); p != nil {
				p.ch, p.bg = ' ', bg
			}
		}
	}
}

// box draws a single-line border along the edge of r.
func (c *canvas) box(r loop.Rect, fg loop.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	put := func(x, y int, ch rune) {
		if p := c.at(x, y); p != nil {
			p.ch, p.fg = ch, fg
		}
	}
	for x := r.X + 1; x < right; x++ {
		put(x, r.Y, boxH)
		put(x, bottom, boxH)
	}
	for y := r.Y + 1; y < bottom; y++ {
		put(r.X, y, boxV)
		put(right, y, boxV)
	}
	put(r.X, r.Y, boxTL)
	put(right, r.Y, boxTR)
	put(r.X, bottom, boxBL)
	put(right, bottom, boxBR)
}

// text paints rows at x, y. Spaces are transparent. With outline set, every
// lit cell and its eight neighbours get the outline color as background
// first, so the fill sits on a solid border.
func (c *canvas) text(rows []string, x, y int, fill, outline loop.RGB, withOutline bool) {
	if withOutline {
		c.eachLit(rows, x, y, func(cx, cy int, _ rune) {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if p := c.at(cx+dx, cy+dy); p != nil {
						p.ch, p.bg = ' ', outline
					}
				}
			}
		})
	}
	c.eachLit(rows, x, y, func(cx, cy int, ch rune) {
		if p := c.at(cx, cy); p != nil {
			p.ch, p.fg = ch, fill
		}
	})
}

func (c *canvas) eachLit(rows []string, x, y int, fn func(cx, cy int, ch rune)) {
	for dy, row := range rows {
		dx := 0
		for _, ch := range row {
			if ch != ' ' {
				fn(x+dx, y+dy, ch)
			}
			dx++
		}
	}
}

// String renders the grid, one styled run per stretch of equal colors.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			var run strings.Builder
			for _, p := range row[start:x] {
				run.WriteRune(p.ch)
			}
			b.WriteString(cellStyle(row[start].fg, row[start].bg).Render(run.String()))
			start = x
		}
	}
	return b.String()
}

// Plain returns the grid characters without styling.
func (c *canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, p := range c.cells[y*c.w : (y+1)*c.w] {
			b.WriteRune(p.ch)
		}
	}
	return b.String()
}

func cellStyle(fg, bg loop.RGB) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.String())).
		Background(lipgloss.Color(bg.String()))
}

// paint draws f with the given glyph set: background, outlined panels, then
// the centered time text.
func paint(f loop.Frame, glyphs GlyphSet) *canvas {
	c := newCanvas(f.Width, f.Height, f.Background)
	for _, p := range f.Panels {
		c.fill(p.Rect, p.Fill)
		c.box(p.Rect, p.Outline)
	}

	rows := glyphs.Render(f.Text)
	w, h := glyphs.Size(f.Text)
	x, y := f.Centered(w, h)
	c.text(rows, x, y, f.TextFill, f.TextOutline, f.OutlineSize > 0)
	return c
}
