package components

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewLogView(t *testing.T) {
	lv := NewLogView(80, 3)
	if lv.Len() != 0 || lv.Last() != "" {
		t.Errorf("new view not empty: len=%d last=%q", lv.Len(), lv.Last())
	}
	if lv.width != 80 || lv.height != 3 {
		t.Errorf("dimensions: got %dx%d, want 80x3", lv.width, lv.height)
	}
}

func TestLogView_AppendShowsNewest(t *testing.T) {
	lv := NewLogView(80, 2)
	lv = lv.Append("line 1", "line 2")
	lv = lv.Append("line 3")

	if lv.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lv.Len())
	}
	if lv.Last() != "line 3" {
		t.Errorf("Last() = %q", lv.Last())
	}
	view := lv.View()
	if !strings.Contains(view, "line 3") || !strings.Contains(view, "line 2") {
		t.Errorf("View() should show the newest lines: %q", view)
	}
	if strings.Contains(view, "line 1") {
		t.Errorf("View() should have scrolled past line 1: %q", view)
	}
}

func TestLogView_AppendNothing(t *testing.T) {
	lv := NewLogView(80, 2).Append()
	if lv.Len() != 0 {
		t.Errorf("Len() = %d, want 0", lv.Len())
	}
}

func TestLogView_CapsHistory(t *testing.T) {
	lv := NewLogView(80, 3)
	for i := 0; i < DefaultMaxLines+25; i++ {
		lv = lv.Append(fmt.Sprintf("line %d", i))
	}
	if lv.Len() != DefaultMaxLines {
		t.Errorf("Len() = %d, want %d", lv.Len(), DefaultMaxLines)
	}
	if lv.lines[0] != "line 25" {
		t.Errorf("oldest kept = %q, want line 25", lv.lines[0])
	}
}

func TestLogView_AppendDoesNotAlias(t *testing.T) {
	a := NewLogView(80, 3).Append("shared")
	b := a.Append("only b")
	if a.Len() != 1 || b.Len() != 2 {
		t.Errorf("a.Len()=%d b.Len()=%d, want 1 and 2", a.Len(), b.Len())
	}
}

func TestLogView_SetSize(t *testing.T) {
	lv := NewLogView(80, 3).SetSize(100, 5)
	if lv.width != 100 || lv.height != 5 {
		t.Errorf("after SetSize: %dx%d", lv.width, lv.height)
	}
	if lv.vp.Width != 100 || lv.vp.Height != 5 {
		t.Errorf("viewport not resized: %dx%d", lv.vp.Width, lv.vp.Height)
	}
}

func TestLogView_ZeroHeight(t *testing.T) {
	lv := NewLogView(80, 0).Append("hidden")
	if got := lv.View(); got != "" {
		t.Errorf("View() with zero height = %q, want empty", got)
	}
}
