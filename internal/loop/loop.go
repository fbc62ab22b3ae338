// Package loop implements the clock's per-tick cycle: sample the time, apply
// input commands to the display state, build the BCD matrix and describe the
// frame to draw.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/bcd"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/clock"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/config"
)

// Backend is a face driven by Run: it hands over pending input once per tick
// and presents the frames it is given.
type Backend interface {
	// Poll drains pending input without blocking.
	Poll() []Command
	Render(f Frame) error
}

// Loop owns the display state and turns ticks into frames.
type Loop struct {
	Config    *config.Config
	Fonts     []string   // font set names, in selection order
	Surface   Surface    // defaults to a surface with no window behind it
	Rand      *rand.Rand // defaults to a randomly seeded source
	Now       func() time.Time
	Log       io.Writer  // log destination; defaults to os.Stdout
	Out       io.Writer  // pointer-click output; defaults to os.Stdout
	Resources *Resources // released when Run returns

	state      State
	background RGB
	ready      bool
}

// Init builds the initial state from the configuration. It must be called
// before Tick; Run calls it itself.
func (l *Loop) Init() error {
	if l.Config == nil {
		cfg := config.Defaults()
		l.Config = &cfg
	}
	if l.Rand == nil {
		l.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if l.Surface == nil {
		l.Surface = noSurface{}
	}
	if l.Now == nil {
		l.Now = time.Now
	}

	cfg := l.Config
	r, g, b, err := config.ParseHex(cfg.Colors.Background)
	if err != nil {
		return fmt.Errorf("loop: background: %w", err)
	}
	l.background = RGB{r, g, b}

	var panel RGB
	if cfg.Colors.Panel == "" {
		panel = RandomColor(l.Rand, cfg.Colors.MinChannel, cfg.Colors.MaxChannel)
	} else {
		r, g, b, err := config.ParseHex(cfg.Colors.Panel)
		if err != nil {
			return fmt.Errorf("loop: panel color: %w", err)
		}
		panel = RGB{r, g, b}
	}

	l.state = State{
		Hour24:     cfg.Clock.Hour24,
		Local:      cfg.Clock.Local,
		Color:      panel,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		OrigWidth:  cfg.Window.Width,
		OrigHeight: cfg.Window.Height,
		Run:        Running,
	}

	if len(l.Fonts) > 0 {
		l.logf("Found %d fonts.", len(l.Fonts))
		l.logf("Selected font %d: %s", 0, l.Fonts[0])
	}
	if cfg.Window.Fullscreen {
		l.state = Apply(l.state, ToggleFullscreen, l.env())
	}

	l.ready = true
	return nil
}

// State returns a copy of the current display state.
func (l *Loop) State() State { return l.state }

// Resize records a new surface size reported by the face (e.g. a terminal
// resize). Outside fullscreen it also becomes the size restored on leaving
// fullscreen.
func (l *Loop) Resize(width, height int) {
	l.state.Width, l.state.Height = width, height
	if !l.state.Fullscreen {
		l.state.OrigWidth, l.state.OrigHeight = width, height
	}
}

// Tick runs one iteration for the time now: it formats the time from the
// current modes, applies cmds in order, then describes the frame. Mode
// changes made by cmds show up in the time text from the next tick on.
func (l *Loop) Tick(now time.Time, cmds []Command) Frame {
	if !l.ready {
		panic("loop: Tick called before Init")
	}

	s := l.state
	text := clock.Format(now, s.Hour24, s.Local)

	env := l.env()
	for _, cmd := range cmds {
		s = Apply(s, cmd, env)
		l.report(cmd, s, text)
	}
	l.state = s

	m := bcd.FromTime(text)
	f := Frame{
		Width:       s.Width,
		Height:      s.Height,
		Background:  l.background,
		Matrix:      m,
		Text:        text,
		TextFill:    White,
		TextOutline: Black,
		OutlineSize: l.Config.Fonts.Outline,
		FontIndex:   s.FontIndex,
		Title:       clock.Title(now, s.Hour24, s.Local),
		Quit:        s.Run == Stopped,
	}
	f.Panels = panels(m, s.Width, s.Height, s.Color)
	return f
}

// Interval is the fixed sleep between ticks.
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.Config.Clock.UpdatesPerSecond)
}

// Run ticks at the configured rate until a Quit command arrives or ctx is
// cancelled, rendering every frame through b. The sleep between ticks is
// fixed; a slow tick is not compensated. Resources are released when Run
// returns.
func (l *Loop) Run(ctx context.Context, b Backend) (err error) {
	defer func() {
		err = errors.Join(err, l.Resources.Close())
	}()

	if !l.ready {
		if err := l.Init(); err != nil {
			return err
		}
	}

	for {
		now := l.Now()
		cmds := b.Poll()
		if ctx.Err() != nil {
			cmds = append(cmds, Quit)
		}

		f := l.Tick(now, cmds)
		if renderErr := b.Render(f); renderErr != nil {
			return fmt.Errorf("loop: render: %w", renderErr)
		}
		if f.Quit {
			l.logf("Stopped")
			return nil
		}

		timer := time.NewTimer(l.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
}

func (l *Loop) env() Env {
	return Env{
		Surface:    l.Surface,
		Rand:       l.Rand,
		Fonts:      len(l.Fonts),
		MinChannel: l.Config.Colors.MinChannel,
		MaxChannel: l.Config.Colors.MaxChannel,
	}
}

// report writes the user-visible output of a command that was just applied.
func (l *Loop) report(cmd Command, s State, text string) {
	switch cmd {
	case PointerClick:
		w := l.Out
		if w == nil {
			w = os.Stdout
		}
		fmt.Fprintln(w, text)
	case NextFont:
		if len(l.Fonts) > 0 {
			l.logf("Selected font %d: %s", s.FontIndex, l.Fonts[s.FontIndex])
		}
	case ToggleFullscreen:
		if s.Fullscreen {
			l.logf("Fullscreen %dx%d", s.Width, s.Height)
		} else {
			l.logf("Windowed %dx%d", s.Width, s.Height)
		}
	}
}

func (l *Loop) logf(format string, args ...any) {
	w := l.Log
	if w == nil {
		w = os.Stdout
	}
	ts := time.Now().Format("15:04:05")
	fmt.Fprintf(w, "[%s]  %s\n", ts, fmt.Sprintf(format, args...))
}

// noSurface stands in when no window exists (headless runs, tests).
type noSurface struct{}

func (noSurface) SetFullscreen(bool)     {}
func (noSurface) ScreenSize() (int, int) { return 0, 0 }
func (noSurface) SetCursorVisible(bool)  {}
