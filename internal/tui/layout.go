package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Header, Canvas, Log, Footer Rect
	TooSmall                    bool // true when terminal is below the minimum size
}

// Minimum terminal size that still shows a recognisable clock.
const (
	minWidth  = 24
	minHeight = 8
)

// logRows is the height of the log strip when the terminal is tall enough.
const logRows = 3

// Calculate computes the layout for a terminal of the given dimensions.
// footerRows is the height of the help footer (1, or more with full help).
//
//   - Header: full width, 1 row at top
//   - Footer: full width, footerRows at bottom
//   - Log: full width, logRows above the footer when at least 20 rows remain
//   - Canvas: everything in between
func Calculate(width, height, footerRows int) Layout {
	if footerRows < 1 {
		footerRows = 1
	}
	if width < minWidth || height < minHeight+footerRows-1 {
		return Layout{TooSmall: true}
	}

	body := height - 1 - footerRows
	logH := 0
	if body >= 20 {
		logH = logRows
	}
	canvasH := body - logH

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Canvas: Rect{X: 0, Y: 1, Width: width, Height: canvasH},
		Log:    Rect{X: 0, Y: 1 + canvasH, Width: width, Height: logH},
		Footer: Rect{X: 0, Y: height - footerRows, Width: width, Height: footerRows},
	}
}
