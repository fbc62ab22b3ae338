//go:build !linux || cgo

package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
)

// faceCache keeps the face for the selected font open and swaps it when the
// selection changes. Only one face is open at a time.
type faceCache struct {
	set  fonts.Set
	size int
	load func(path string, size int) (font.Face, error)

	index int
	raw   font.Face
	face  *text.GoXFace
}

func newFaceCache(set fonts.Set, size int) *faceCache {
	return &faceCache{set: set, size: size, load: fonts.Load, index: -1}
}

// Select makes font i the current face, loading it on first use. The
// previous face is closed after the new one loads.
func (c *faceCache) Select(i int) error {
	if i == c.index && c.face != nil {
		return nil
	}
	if i < 0 || i >= c.set.Len() {
		return fmt.Errorf("window: font index %d out of range [0,%d)", i, c.set.Len())
	}
	raw, err := c.load(c.set.Path(i), c.size)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if err := c.Close(); err != nil {
		_ = raw.Close()
		return err
	}
	c.index, c.raw, c.face = i, raw, text.NewGoXFace(raw)
	return nil
}

// Face returns the current face, or nil before the first Select.
func (c *faceCache) Face() *text.GoXFace { return c.face }

// Close releases the current face.
func (c *faceCache) Close() error {
	if c.raw == nil {
		return nil
	}
	err := c.raw.Close()
	c.index, c.raw, c.face = -1, nil, nil
	if err != nil {
		return fmt.Errorf("window: close face: %w", err)
	}
	return nil
}
