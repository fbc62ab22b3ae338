package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// Theme holds the styles derived from the current panel color, so the
// header follows the clock when it is recolored.
type Theme struct {
	accent      loop.RGB
	accentStyle lipgloss.Style
	tabActive   lipgloss.Style
}

// NewTheme builds a Theme around the accent color.
func NewTheme(accent loop.RGB) Theme {
	c := lipgloss.Color(accent.String())
	return Theme{
		accent: accent,
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color(contrast(accent).String())).
			Bold(true),
		tabActive: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
	}
}

// Accent returns the color the theme was built from.
func (t Theme) Accent() loop.RGB { return t.accent }

// HeaderStyle returns the style for the header bar.
func (t Theme) HeaderStyle() lipgloss.Style { return t.accentStyle }

// TabStyle returns the style for the active glyph set tab.
func (t Theme) TabStyle() lipgloss.Style { return t.tabActive }

// contrast picks black or white text for legibility on bg.
func contrast(bg loop.RGB) loop.RGB {
	// Rec. 601 luma, scaled by 1000.
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return loop.Black
	}
	return loop.White
}

// RenderLogLine styles one line written by the loop. Timestamped log lines
// get a dim timestamp; anything else is a pointer-click time print.
func RenderLogLine(line string) string {
	if ts, msg, ok := splitTimestamp(line); ok {
		style := infoStyle
		if strings.HasPrefix(msg, "Stopped") {
			style = warnStyle
		}
		return timestampStyle.Render(ts) + "  " + style.Render(msg)
	}
	return clickStyle.Render("⏱ " + line)
}

// splitTimestamp splits "[15:04:05]  msg" into its parts.
func splitTimestamp(line string) (ts, msg string, ok bool) {
	if len(line) < 10 || line[0] != '[' || line[9] != ']' {
		return "", "", false
	}
	return line[:10], strings.TrimLeft(line[10:], " "), true
}
