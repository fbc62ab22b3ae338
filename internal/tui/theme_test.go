package tui

import (
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/loop"
)

func TestContrast(t *testing.T) {
	tests := []struct {
		bg   loop.RGB
		want loop.RGB
	}{
		{loop.Black, loop.White},
		{loop.White, loop.Black},
		{loop.RGB{R: 40, G: 40, B: 40}, loop.White},
		{loop.RGB{R: 200, G: 200, B: 200}, loop.Black},
		{loop.RGB{R: 0x40, G: 0x80, B: 0xC0}, loop.White},
	}
	for _, tt := range tests {
		if got := contrast(tt.bg); got != tt.want {
			t.Errorf("contrast(%v) = %v, want %v", tt.bg, got, tt.want)
		}
	}
}

func TestNewTheme(t *testing.T) {
	c := loop.RGB{R: 1, G: 2, B: 3}
	th := NewTheme(c)
	if th.Accent() != c {
		t.Errorf("Accent() = %v, want %v", th.Accent(), c)
	}
	if got := th.HeaderStyle().Render("x"); !strings.Contains(got, "x") {
		t.Errorf("HeaderStyle render = %q", got)
	}
}

func TestRenderLogLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"[12:00:00]  Found 3 fonts.", []string{"[12:00:00]", "Found 3 fonts."}},
		{"[12:00:01]  Stopped", []string{"[12:00:01]", "Stopped"}},
		{"12:34:56 PM", []string{"⏱", "12:34:56 PM"}},
		{"[bad", []string{"⏱", "[bad"}},
	}
	for _, tt := range tests {
		got := RenderLogLine(tt.line)
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Errorf("RenderLogLine(%q) = %q, missing %q", tt.line, got, want)
			}
		}
	}
}

func TestSplitTimestamp(t *testing.T) {
	ts, msg, ok := splitTimestamp("[09:08:07]  Windowed 80x19")
	if !ok || ts != "[09:08:07]" || msg != "Windowed 80x19" {
		t.Errorf("splitTimestamp = %q, %q, %v", ts, msg, ok)
	}
	if _, _, ok := splitTimestamp("09:08:07"); ok {
		t.Error("plain time should not split")
	}
}

func TestTermSurface(t *testing.T) {
	s := &termSurface{width: 70, height: 18}
	if w, h := s.ScreenSize(); w != 70 || h != 18 {
		t.Errorf("ScreenSize() = %dx%d", w, h)
	}
	s.SetCursorVisible(false)
	s.SetFullscreen(true)
	cmds := s.drain()
	if len(cmds) != 2 {
		t.Fatalf("drain() = %d cmds, want 2", len(cmds))
	}
	if len(s.drain()) != 0 {
		t.Error("second drain should be empty")
	}
}
