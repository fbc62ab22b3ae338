package loop

import "math/rand/v2"

// Command is a recognized user input. Each face translates its platform
// events (ebiten keys, terminal key messages) into commands.
type Command int

const (
	ColorCycle       Command = iota // Pick a new random panel color
	ToggleHourMode                  // 24h <-> 12h
	ToggleTimezone                  // local <-> UTC
	ToggleFullscreen                // fullscreen <-> windowed
	NextFont                        // Select the next font, wrapping
	PointerClick                    // Print the current time
	Quit                            // Stop the loop after this tick
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case ColorCycle:
		return "color"
	case ToggleHourMode:
		return "hour-mode"
	case ToggleTimezone:
		return "timezone"
	case ToggleFullscreen:
		return "fullscreen"
	case NextFont:
		return "next-font"
	case PointerClick:
		return "click"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Surface is the part of a window the state machine drives directly.
type Surface interface {
	SetFullscreen(on bool)
	// ScreenSize reports the native screen size used in fullscreen mode.
	// A non-positive size keeps the current dimensions.
	ScreenSize() (width, height int)
	SetCursorVisible(visible bool)
}

// Env carries the collaborators Apply needs besides the state itself.
type Env struct {
	Surface Surface
	Rand    *rand.Rand
	Fonts   int // size of the font set

	// Random panel colors are drawn per channel from [MinChannel, MaxChannel].
	MinChannel, MaxChannel int
}

// Apply returns the state that results from cmd. PointerClick changes
// nothing; its output is produced by the loop.
func Apply(s State, cmd Command, env Env) State {
	switch cmd {
	case ColorCycle:
		s.Color = RandomColor(env.Rand, env.MinChannel, env.MaxChannel)
	case ToggleHourMode:
		s.Hour24 = !s.Hour24
	case ToggleTimezone:
		s.Local = !s.Local
	case ToggleFullscreen:
		s = toggleFullscreen(s, env.Surface)
	case NextFont:
		if env.Fonts > 0 {
			s.FontIndex = (s.FontIndex + 1) % env.Fonts
		}
	case Quit:
		if s.Run.CanTransitionTo(Stopped) {
			s.Run = Stopped
		}
	}
	return s
}

func toggleFullscreen(s State, surface Surface) State {
	s.Fullscreen = !s.Fullscreen
	if s.Fullscreen {
		surface.SetCursorVisible(false)
		surface.SetFullscreen(true)
		if w, h := surface.ScreenSize(); w > 0 && h > 0 {
			s.Width, s.Height = w, h
		}
		return s
	}
	surface.SetCursorVisible(true)
	surface.SetFullscreen(false)
	s.Width, s.Height = s.OrigWidth, s.OrigHeight
	return s
}

// RandomColor returns a color with every channel uniform in [lo, hi].
func RandomColor(r *rand.Rand, lo, hi int) RGB {
	channel := func() uint8 {
		return uint8(lo + r.IntN(hi-lo+1))
	}
	return RGB{R: channel(), G: channel(), B: channel()}
}
