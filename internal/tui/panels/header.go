// Package panels renders the bars around the clock canvas.
package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar. Plain strings
// keep this package free of the loop and tui types.
type HeaderProps struct {
	Title      string // e.g. "BCD Clock (24h UTC)"
	Color      string // panel color, "#RRGGBB"
	Glyphs     string // rendered glyph set tab bar
	Fullscreen bool
	StateLabel string // "RUNNING" or "STOPPED"
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	title := props.Title
	if title == "" {
		title = "BCD Clock"
	}

	parts := []string{"▦ " + title}
	if props.Color != "" {
		parts = append(parts, "color: "+props.Color)
	}
	if props.Glyphs != "" {
		parts = append(parts, props.Glyphs)
	}
	if props.Fullscreen {
		parts = append(parts, "fullscreen")
	}
	if props.StateLabel != "" {
		parts = append(parts, props.StateLabel)
	}

	content := strings.Join(parts, "  │  ")
	if gap := width - lipgloss.Width(content); gap > 0 {
		content += strings.Repeat(" ", gap)
	}
	return accentStyle.MaxWidth(width).Render(content)
}
