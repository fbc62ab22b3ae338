//go:build !linux || cgo

// Package window is the desktop face of the clock: an ebiten window that
// ticks the loop at the configured rate and draws each frame.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

// Run opens the window and blocks until it is closed. Resources acquired here
// are pushed onto l.Resources and released before Run returns.
func Run(l *loop.Loop, set fonts.Set) (err error) {
	if l.Resources == nil {
		l.Resources = &loop.Resources{}
	}
	defer func() {
		err = errors.Join(err, l.Resources.Close())
	}()

	l.Surface = surface{}
	l.Fonts = set.Names
	if err := l.Init(); err != nil {
		return err
	}

	faces := newFaceCache(set, l.Config.Fonts.Size)
	l.Resources.Push("font face", faces.Close)
	if err := faces.Select(l.State().FontIndex); err != nil {
		return err
	}

	s := l.State()
	ebiten.SetWindowSize(s.OrigWidth, s.OrigHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(l.Config.Clock.UpdatesPerSecond)

	g := &game{loop: l, faces: faces}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// game adapts the loop to ebiten's Update/Draw/Layout cycle. Every Update is
// one tick.
type game struct {
	loop  *loop.Loop
	faces *faceCache

	frame         loop.Frame
	ticked        bool
	title         string
	outW, outH    int
	width, height int
}

func (g *game) Update() error {
	if g.outW > 0 && (g.outW != g.width || g.outH != g.height) {
		g.width, g.height = g.outW, g.outH
		g.loop.Resize(g.width, g.height)
	}

	g.frame = g.loop.Tick(g.loop.Now(), pollInput())
	g.ticked = true

	if g.frame.Title != g.title {
		ebiten.SetWindowTitle(g.frame.Title)
		g.title = g.frame.Title
	}
	if err := g.faces.Select(g.frame.FontIndex); err != nil {
		return err
	}
	if g.frame.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.ticked {
		return
	}
	f := g.frame
	screen.Fill(rgba(f.Background))

	for _, p := range f.Panels {
		x, y := float32(p.X), float32(p.Y)
		w, h := float32(p.W), float32(p.H)
		vector.DrawFilledRect(screen, x, y, w, h, rgba(p.Fill), false)
		vector.StrokeRect(screen, x, y, w, h, 1, rgba(p.Outline), false)
	}

	if face := g.faces.Face(); face != nil {
		drawOutlined(screen, f, face)
	}
}

// Layout keeps one logical pixel per window pixel; the panel grid follows the
// window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// drawOutlined draws the frame text centered: the outline color at the eight
// compass offsets, then the fill on top.
func drawOutlined(screen *ebiten.Image, f loop.Frame, face text.Face) {
	w, h := text.Measure(f.Text, face, 0)
	x, y := f.Centered(int(w), int(h))

	draw := func(dx, dy int, c loop.RGB) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+dx), float64(y+dy))
		op.ColorScale.ScaleWithColor(rgba(c))
		text.Draw(screen, f.Text, face, op)
	}

	if n := f.OutlineSize; n > 0 {
		for _, d := range outlineOffsets(n) {
			draw(d[0], d[1], f.TextOutline)
		}
	}
	draw(0, 0, f.TextFill)
}

// outlineOffsets returns the eight neighbour offsets at distance n.
func outlineOffsets(n int) [][2]int {
	return [][2]int{
		{-n, -n}, {0, -n}, {n, -n},
		{-n, 0}, {n, 0},
		{-n, n}, {0, n}, {n, n},
	}
}

func rgba(c loop.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
