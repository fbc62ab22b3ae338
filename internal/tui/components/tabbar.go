// Package components provides small reusable pieces of the clock's terminal
// face.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabInactiveStyle renders inactive tabs in a dimmed style.
var tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// TabBar is a stateless row of labels with one marked active. The clock
// uses it to show which glyph set is selected.
type TabBar struct {
	tabs        []string
	active      int
	activeStyle lipgloss.Style
}

// NewTabBar creates a TabBar with the given labels. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{tabs: tabs, activeStyle: lipgloss.NewStyle().Bold(true)}
}

// Active returns the index of the active tab.
func (t TabBar) Active() int { return t.active }

// Select returns a TabBar with tab i active. Out-of-range indexes wrap.
func (t TabBar) Select(i int) TabBar {
	if n := len(t.tabs); n > 0 {
		t.active = ((i % n) + n) % n
	}
	return t
}

// WithActiveStyle returns a TabBar that renders the active tab with s.
func (t TabBar) WithActiveStyle(s lipgloss.Style) TabBar {
	t.activeStyle = s
	return t
}

// View renders the bar as one line: the active label is prefixed with "▸"
// and styled, the others dimmed, separated by " · ".
func (t TabBar) View() string {
	parts := make([]string, 0, len(t.tabs))
	for i, label := range t.tabs {
		if i == t.active {
			parts = append(parts, t.activeStyle.Render("▸"+label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, " · ")
}
