package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// Update handles incoming messages and updates the model. Input only queues
// commands; they take effect on the next tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.pending = append(m.pending, loop.PointerClick)
		}
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m.resize(m.width, m.height), nil
	}
	if cmd, ok := m.keys.Command(msg); ok {
		m.pending = append(m.pending, cmd)
	}
	return m, nil
}

// handleTick runs one loop tick with the queued commands, collects the
// loop's output into the log strip and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	cmds := m.pending
	m.pending = nil
	f := m.loop.Tick(now, cmds)

	// The terminal has one size whichever screen is active, so the restored
	// windowed size may be stale.
	canvas := m.layout.Canvas
	if !m.layout.TooSmall && (f.Width != canvas.Width || f.Height != canvas.Height) {
		m.loop.Resize(canvas.Width, canvas.Height)
		f = f.Resized(canvas.Width, canvas.Height)
	}
	m.frame, m.ticked = f, true

	if c := m.loop.State().Color; c != m.theme.Accent() {
		m.theme = NewTheme(c)
	}
	m.tabs = m.tabs.Select(f.FontIndex)

	var rendered []string
	for _, line := range m.output.Lines() {
		rendered = append(rendered, RenderLogLine(line))
	}
	m.log = m.log.Append(rendered...)

	if f.Quit {
		m.done = true
		return m, tea.Quit
	}

	next := m.surface.drain()
	next = append(next, tickCmd(m.loop.Interval()))
	return m, tea.Batch(next...)
}
