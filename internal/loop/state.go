package loop

import "fmt"

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Fixed colors for panel outlines and the text overlay.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// String formats the color as "#RRGGBB".
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RunState is the render loop's lifecycle state.
type RunState int

const (
	Running RunState = iota // Ticking
	Stopped                 // Quit received; terminal
)

// validTransitions defines the allowed RunState transitions.
var validTransitions = map[RunState][]RunState{
	Running: {Stopped},
}

// CanTransitionTo reports whether transitioning from s to next is valid.
func (s RunState) CanTransitionTo(next RunState) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// String returns a short uppercase label for the state.
func (s RunState) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Stopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// State is everything the clock face remembers between ticks. It is a plain
// value: Apply takes one and returns the next.
type State struct {
	Hour24     bool // false = 12-hour clock with AM/PM
	Local      bool // false = UTC
	Fullscreen bool
	FontIndex  int
	Color      RGB // lit panel fill

	// Current drawing surface size, and the windowed size restored when
	// leaving fullscreen.
	Width, Height         int
	OrigWidth, OrigHeight int

	Run RunState
}
