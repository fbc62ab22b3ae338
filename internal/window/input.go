//go:build !linux || cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// binding maps one key to the command it triggers.
type binding struct {
	key ebiten.Key
	cmd loop.Command
}

var keyBindings = []binding{
	{ebiten.KeySpace, loop.ColorCycle},
	{ebiten.KeyH, loop.ToggleHourMode},
	{ebiten.KeyL, loop.ToggleTimezone},
	{ebiten.KeyF, loop.ToggleFullscreen},
	{ebiten.KeyT, loop.NextFont},
}

// inputState is one poll's worth of edge-triggered input.
type inputState struct {
	justPressed func(ebiten.Key) bool
	clicked     bool
	closing     bool
}

// translate turns raw input into commands, keys first in binding order, then
// the pointer click, then window close.
func translate(in inputState) []loop.Command {
	var cmds []loop.Command
	for _, b := range keyBindings {
		if in.justPressed != nil && in.justPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	if in.clicked {
		cmds = append(cmds, loop.PointerClick)
	}
	if in.closing {
		cmds = append(cmds, loop.Quit)
	}
	return cmds
}

// pollInput drains this frame's input from ebiten.
func pollInput() []loop.Command {
	return translate(inputState{
		justPressed: inpututil.IsKeyJustPressed,
		clicked:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		closing:     ebiten.IsWindowBeingClosed(),
	})
}
