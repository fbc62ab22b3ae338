package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// Run starts the terminal face and blocks until the user quits. The glyph
// set named first in l.Fonts is shown first. Resources on l are released
// before Run returns.
func Run(l *loop.Loop, opts ...tea.ProgramOption) (err error) {
	if l.Resources == nil {
		l.Resources = &loop.Resources{}
	}
	defer func() {
		err = errors.Join(err, l.Resources.Close())
	}()

	if len(l.Fonts) == 0 {
		l.Fonts = GlyphOrder("")
	}
	m, err := New(l)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithMouseCellMotion()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
