package loop

import "github.com/LISSConsulting/LISSTech.BCDClock/internal/bcd"

// Rect is a rectangle on the drawing surface, in surface units (pixels for
// the window, cells for the terminal).
type Rect struct {
	X, Y, W, H int
}

// Panel is one lit BCD cell.
type Panel struct {
	Rect
	Row, Col int
	Fill     RGB
	Outline  RGB
}

// Frame is everything one tick draws, in drawing order: background, panels,
// outlined text, then the title.
type Frame struct {
	Width, Height int
	Background    RGB
	Matrix        bcd.Matrix
	Panels        []Panel

	Text        string
	TextFill    RGB
	TextOutline RGB
	OutlineSize int // outline offset in surface units; 0 = none
	FontIndex   int

	Title string
	Quit  bool
}

// PanelRect returns the rectangle for the panel at row, col on a surface of
// the given size. The surface is split into a 6×4 grid and every panel is
// inset by one unit so neighbours stay visually separate.
func PanelRect(width, height, row, col int) Rect {
	cellW := width / bcd.Cols
	cellH := height / bcd.Rows
	return Rect{
		X: cellW*col + 1,
		Y: cellH*row + 1,
		W: cellW - 2,
		H: cellH - 2,
	}
}

// Centered returns the origin that centers a w×h box on the frame.
func (f Frame) Centered(w, h int) (x, y int) {
	return f.Width/2 - w/2, f.Height/2 - h/2
}

// Resized returns f laid out on a width×height surface, keeping its colors.
func (f Frame) Resized(width, height int) Frame {
	fill := White
	if len(f.Panels) > 0 {
		fill = f.Panels[0].Fill
	}
	f.Width, f.Height = width, height
	f.Panels = panels(f.Matrix, width, height, fill)
	return f
}

// panels returns one outlined panel per lit cell of m, row by row.
func panels(m bcd.Matrix, width, height int, fill RGB) []Panel {
	var out []Panel
	for row := 0; row < bcd.Rows; row++ {
		for col := 0; col < bcd.Cols; col++ {
			if !m[row][col] {
				continue
			}
			out = append(out, Panel{
				Rect:    PanelRect(width, height, row, col),
				Row:     row,
				Col:     col,
				Fill:    fill,
				Outline: White,
			})
		}
	}
	return out
}
