package tui

import tea "github.com/charmbracelet/bubbletea"

// termSurface maps the loop's window operations onto the terminal: the
// alternate screen stands in for fullscreen. Calls are queued as tea
// commands and handed to the program after the tick that made them.
type termSurface struct {
	width, height int
	pending       []tea.Cmd
}

func (s *termSurface) SetFullscreen(on bool) {
	if on {
		s.pending = append(s.pending, tea.EnterAltScreen)
	} else {
		s.pending = append(s.pending, tea.ExitAltScreen)
	}
}

// ScreenSize is the terminal size; the alternate screen has the same
// dimensions as the main one.
func (s *termSurface) ScreenSize() (int, int) { return s.width, s.height }

func (s *termSurface) SetCursorVisible(visible bool) {
	if visible {
		s.pending = append(s.pending, tea.ShowCursor)
	} else {
		s.pending = append(s.pending, tea.HideCursor)
	}
}

// drain returns the queued commands in call order and clears the queue.
func (s *termSurface) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}
