package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// DefaultMaxLines bounds the history a LogView keeps.
const DefaultMaxLines = 200

// LogView is a small log strip that wraps bubbles/viewport and always shows
// the newest lines. Older lines beyond maxLines are dropped.
type LogView struct {
	vp       viewport.Model
	lines    []string // rendered (pre-styled) lines
	maxLines int
	width    int
	height   int
}

// NewLogView creates a LogView with the given dimensions.
func NewLogView(w, h int) LogView {
	return LogView{
		vp:       viewport.New(w, h),
		maxLines: DefaultMaxLines,
		width:    w,
		height:   h,
	}
}

// Append adds pre-rendered lines and scrolls to the bottom.
func (v LogView) Append(rendered ...string) LogView {
	if len(rendered) == 0 {
		return v
	}
	lines := make([]string, 0, len(v.lines)+len(rendered))
	lines = append(lines, v.lines...)
	lines = append(lines, rendered...)
	if over := len(lines) - v.maxLines; over > 0 {
		lines = lines[over:]
	}
	v.lines = lines
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	v.vp.GotoBottom()
	return v
}

// Len returns the number of lines held.
func (v LogView) Len() int { return len(v.lines) }

// Last returns the newest line, or "" when empty.
func (v LogView) Last() string {
	if len(v.lines) == 0 {
		return ""
	}
	return v.lines[len(v.lines)-1]
}

// SetSize resizes the log view to the given dimensions.
func (v LogView) SetSize(w, h int) LogView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	v.vp.GotoBottom()
	return v
}

// View renders the visible lines.
func (v LogView) View() string {
	if v.height <= 0 {
		return ""
	}
	return v.vp.View()
}
