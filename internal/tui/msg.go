package tui

import (
	"bytes"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives one loop tick.
type tickMsg time.Time

// tickCmd schedules the next tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// lineBuffer collects the loop's log and click output so the model can show
// it without writing to the terminal behind bubbletea's back.
type lineBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Lines returns the complete lines written since the last call. A trailing
// partial line stays buffered.
func (b *lineBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := b.buf.String()
	end := strings.LastIndexByte(data, '\n')
	if end < 0 {
		return nil
	}
	b.buf.Reset()
	b.buf.WriteString(data[end+1:])
	return strings.Split(data[:end], "\n")
}
