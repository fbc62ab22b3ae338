package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/tui/components"
)

// Model is the bubbletea model for the terminal clock.
type Model struct {
	loop    *loop.Loop
	surface *termSurface
	output  *lineBuffer

	keys KeyMap
	help help.Model

	// Display state
	layout Layout
	theme  Theme
	tabs   components.TabBar
	log    components.LogView
	width  int
	height int

	// Commands received since the last tick, in arrival order.
	pending []loop.Command

	frame  loop.Frame
	ticked bool
	done   bool
}

// New creates a Model around l. It wires the loop's surface and output to
// the terminal and initializes it; l.Fonts should name glyph sets (see
// GlyphOrder).
func New(l *loop.Loop) (Model, error) {
	surface := &termSurface{}
	output := &lineBuffer{}
	l.Surface = surface
	l.Log = output
	l.Out = output
	if err := l.Init(); err != nil {
		return Model{}, err
	}

	m := Model{
		loop:    l,
		surface: surface,
		output:  output,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   NewTheme(l.State().Color),
		tabs:    components.NewTabBar(l.Fonts),
		log:     components.NewLogView(80, 0),
	}
	return m.resize(80, 24), nil
}

// Init returns the initial commands: any pending surface changes (a
// fullscreen start) and the first tick.
func (m Model) Init() tea.Cmd {
	cmds := m.surface.drain()
	cmds = append(cmds, tickCmd(0))
	return tea.Batch(cmds...)
}

// Done reports whether the loop has stopped.
func (m Model) Done() bool { return m.done }

// glyphs returns the glyph set selected by the loop's font index.
func (m Model) glyphs() GlyphSet {
	if i := m.frame.FontIndex; i >= 0 && i < len(m.loop.Fonts) {
		if g, ok := LookupGlyphs(m.loop.Fonts[i]); ok {
			return g
		}
	}
	return glyphSets[0]
}

// resize recomputes the layout for a terminal of w×h and tells the loop the
// new canvas size.
func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	m.help.Width = w

	m.layout = Calculate(w, h, lipgloss.Height(m.help.View(m.keys)))
	if m.layout.TooSmall {
		return m
	}
	m.surface.width, m.surface.height = m.layout.Canvas.Width, m.layout.Canvas.Height
	m.loop.Resize(m.layout.Canvas.Width, m.layout.Canvas.Height)
	m.log = m.log.SetSize(m.layout.Log.Width, m.layout.Log.Height)
	return m
}
