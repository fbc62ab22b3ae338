package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/config"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/tui"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/window"
)

// loadConfig loads the file named by --config, or searches for one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLoop(cfg *config.Config, log, out io.Writer) *loop.Loop {
	return &loop.Loop{
		Config:    cfg,
		Log:       log,
		Out:       out,
		Resources: &loop.Resources{},
	}
}

func runWindow(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return executeWindow(cfg)
}

// executeWindow discovers the font set and opens the window face.
func executeWindow(cfg *config.Config) error {
	set, err := fonts.Discover(cfg.Fonts.Dir)
	if err != nil {
		return err
	}
	return window.Run(newLoop(cfg, os.Stdout, os.Stdout), set)
}

// executeTUI runs the terminal face, starting with the configured glyph set.
func executeTUI(cfg *config.Config) error {
	l := newLoop(cfg, os.Stdout, os.Stdout)
	l.Fonts = tui.GlyphOrder(cfg.TUI.Glyphs)
	return tui.Run(l)
}

// executeStream drives the loop headless until ctx is cancelled or maxTicks
// ticks have run (0 = no limit). Matrices go to out, log lines to log.
func executeStream(ctx context.Context, cfg *config.Config, maxTicks int, out, log io.Writer) error {
	l := newLoop(cfg, log, out)
	return l.Run(ctx, &textBackend{w: out, limit: maxTicks})
}

// textBackend renders frames as text. It has no input of its own; Poll only
// asks to quit once the tick limit is reached.
type textBackend struct {
	w     io.Writer
	limit int
	ticks int
	last  string
}

func (b *textBackend) Poll() []loop.Command {
	b.ticks++
	if b.limit > 0 && b.ticks >= b.limit {
		return []loop.Command{loop.Quit}
	}
	return nil
}

// Render prints the time and its matrix whenever the time text changes.
func (b *textBackend) Render(f loop.Frame) error {
	if f.Text == b.last {
		return nil
	}
	b.last = f.Text
	if _, err := fmt.Fprintf(b.w, "%s\n%s\n\n", f.Text, f.Matrix); err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	return nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
// Calling cancel stops listening for the signals.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}
