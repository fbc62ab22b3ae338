//go:build linux && !cgo

// Package window is the desktop face of the clock. This build has no window
// support; use the tui or stream faces instead.
package window

import (
	"errors"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// ErrUnavailable is returned by Run when the binary was built without cgo.
var ErrUnavailable = errors.New("window: not available in this build (requires cgo)")

// Run always fails in this build.
func Run(l *loop.Loop, set fonts.Set) error {
	return errors.Join(ErrUnavailable, l.Resources.Close())
}
