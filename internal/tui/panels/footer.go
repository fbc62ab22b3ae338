package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Help string // rendered bubbles/help view
	Time string // current time text, shown on the right
}

// RenderFooter renders the footer: key help on the left, the time text on
// the right of the last line.
func RenderFooter(props FooterProps, width int) string {
	lines := strings.Split(props.Help, "\n")
	last := len(lines) - 1

	gap := width - lipgloss.Width(lines[last]) - lipgloss.Width(props.Time)
	if gap < 2 {
		gap = 2
	}
	lines[last] += strings.Repeat(" ", gap) + props.Time

	for i, line := range lines {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = footerStyle.MaxWidth(width).Render(line)
	}
	return strings.Join(lines, "\n")
}
