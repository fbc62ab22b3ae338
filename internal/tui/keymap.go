package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// KeyMap holds the terminal face's key bindings. It implements help.KeyMap
// for the footer.
type KeyMap struct {
	Color      key.Binding
	HourMode   key.Binding
	Timezone   key.Binding
	Fullscreen key.Binding
	NextFont   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap mirrors the window face's keys, plus q and ? for the
// terminal.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Color:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "recolor")),
		HourMode:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "12h/24h")),
		Timezone:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "local/utc")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		NextFont:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "glyphs")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Fullscreen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Color, k.HourMode, k.Timezone},
		{k.Fullscreen, k.NextFont},
		{k.Help, k.Quit},
	}
}

// Command returns the loop command bound to msg, if any. Help is handled by
// the model and has no command.
func (k KeyMap) Command(msg tea.KeyMsg) (loop.Command, bool) {
	switch {
	case key.Matches(msg, k.Color):
		return loop.ColorCycle, true
	case key.Matches(msg, k.HourMode):
		return loop.ToggleHourMode, true
	case key.Matches(msg, k.Timezone):
		return loop.ToggleTimezone, true
	case key.Matches(msg, k.Fullscreen):
		return loop.ToggleFullscreen, true
	case key.Matches(msg, k.NextFont):
		return loop.NextFont, true
	case key.Matches(msg, k.Quit):
		return loop.Quit, true
	}
	return 0, false
}
