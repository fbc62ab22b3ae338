package tui

import (
	"strings"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/tui/panels"
)

// View renders the header, clock canvas, log strip and help footer.
func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.layout.TooSmall {
		return warnStyle.Render("terminal too small for the clock")
	}

	parts := []string{m.renderHeader(), m.renderCanvas()}
	if m.layout.Log.Height > 0 {
		parts = append(parts, m.log.View())
	}
	parts = append(parts, m.renderFooter())
	return strings.Join(parts, "\n")
}

func (m Model) renderHeader() string {
	s := m.loop.State()
	props := panels.HeaderProps{
		Title:      m.frame.Title,
		Color:      s.Color.String(),
		Glyphs:     m.tabs.WithActiveStyle(m.theme.TabStyle()).View(),
		Fullscreen: s.Fullscreen,
		StateLabel: s.Run.String(),
	}
	return panels.RenderHeader(props, m.width, m.theme.HeaderStyle())
}

// renderCanvas paints the last frame, or a blank area before the first tick.
func (m Model) renderCanvas() string {
	c := m.layout.Canvas
	if !m.ticked {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", c.Width)+"\n", c.Height), "\n")
	}
	return paint(m.frame, m.glyphs()).String()
}

func (m Model) renderFooter() string {
	return panels.RenderFooter(panels.FooterProps{
		Help: m.help.View(m.keys),
		Time: m.frame.Text,
	}, m.width)
}
