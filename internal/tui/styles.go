// Package tui is the terminal face of the clock: a bubbletea program that
// ticks the loop and paints each frame with lipgloss cell colors.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorRed   = lipgloss.Color("#FF6B6B")
)

var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	clickStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
