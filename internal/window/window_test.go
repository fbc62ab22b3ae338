//go:build !linux || cgo

package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   inputState
		want []loop.Command
	}{
		{"nothing", inputState{justPressed: pressed()}, nil},
		{"space", inputState{justPressed: pressed(ebiten.KeySpace)}, []loop.Command{loop.ColorCycle}},
		{"h", inputState{justPressed: pressed(ebiten.KeyH)}, []loop.Command{loop.ToggleHourMode}},
		{"l", inputState{justPressed: pressed(ebiten.KeyL)}, []loop.Command{loop.ToggleTimezone}},
		{"f", inputState{justPressed: pressed(ebiten.KeyF)}, []loop.Command{loop.ToggleFullscreen}},
		{"t", inputState{justPressed: pressed(ebiten.KeyT)}, []loop.Command{loop.NextFont}},
		{"unbound key", inputState{justPressed: pressed(ebiten.KeyQ)}, nil},
		{"click", inputState{justPressed: pressed(), clicked: true}, []loop.Command{loop.PointerClick}},
		{"close", inputState{closing: true}, []loop.Command{loop.Quit}},
		{
			"several at once",
			inputState{justPressed: pressed(ebiten.KeyT, ebiten.KeyH), clicked: true, closing: true},
			[]loop.Command{loop.ToggleHourMode, loop.NextFont, loop.PointerClick, loop.Quit},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("translate() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("cmd[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOutlineOffsets(t *testing.T) {
	offsets := outlineOffsets(2)
	if len(offsets) != 8 {
		t.Fatalf("got %d offsets, want 8", len(offsets))
	}
	seen := map[[2]int]bool{}
	for _, d := range offsets {
		if d == [2]int{0, 0} {
			t.Error("offset set includes the center")
		}
		if d[0] < -2 || d[0] > 2 || d[1] < -2 || d[1] > 2 {
			t.Errorf("offset %v beyond outline size", d)
		}
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Errorf("offsets not distinct: %v", offsets)
	}
}

// closeCounter wraps a face and counts Close calls.
type closeCounter struct {
	font.Face
	closed *int
}

func (c closeCounter) Close() error {
	*c.closed++
	return nil
}

func TestFaceCache(t *testing.T) {
	set := fonts.Set{Dir: "fonts", Names: []string{"a.ttf", "b.ttf"}}
	var loads []string
	closed := 0

	c := newFaceCache(set, 32)
	c.load = func(path string, size int) (font.Face, error) {
		loads = append(loads, path)
		f, err := fonts.Parse(goregular.TTF, size)
		if err != nil {
			return nil, err
		}
		return closeCounter{Face: f, closed: &closed}, nil
	}

	if c.Face() != nil {
		t.Fatal("Face() before Select should be nil")
	}
	if err := c.Select(0); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(0); err != nil {
		t.Fatal(err)
	}
	if len(loads) != 1 {
		t.Errorf("reselecting loaded again: %v", loads)
	}

	if err := c.Select(1); err != nil {
		t.Fatal(err)
	}
	if len(loads) != 2 || closed != 1 {
		t.Errorf("loads=%v closed=%d, want 2 loads and 1 close", loads, closed)
	}
	if c.Face() == nil {
		t.Error("Face() nil after Select")
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if closed != 2 {
		t.Errorf("closed = %d, want 2", closed)
	}
}

func TestFaceCache_Errors(t *testing.T) {
	set := fonts.Set{Dir: "fonts", Names: []string{"a.ttf"}}
	c := newFaceCache(set, 32)

	if err := c.Select(3); err == nil {
		t.Error("expected out-of-range error")
	}

	loadErr := errors.New("bad font")
	c.load = func(string, int) (font.Face, error) { return nil, loadErr }
	if err := c.Select(0); !errors.Is(err, loadErr) {
		t.Errorf("Select() = %v, want wrapped load error", err)
	}
}
