//go:build !linux || cgo

package window

import "github.com/hajimehoshi/ebiten/v2"

// surface drives the ebiten window on behalf of loop.Apply.
type surface struct{}

func (surface) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }

func (surface) ScreenSize() (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0
	}
	return m.Size()
}

func (surface) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}
