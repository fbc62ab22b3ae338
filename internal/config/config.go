// Package config parses bcdclock.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Load.
const FileName = "bcdclock.toml"

// DefaultBackground is the default frame background color.
const DefaultBackground = "#323232"

// Glyph sets available to the terminal face.
var GlyphSets = []string{"block", "slim", "dot"}

// hexColorRe matches a 6-digit hex color string like "#323232".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level bcdclock.toml configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Clock  ClockConfig  `toml:"clock"`
	Colors ColorsConfig `toml:"colors"`
	Fonts  FontsConfig  `toml:"fonts"`
	TUI    TUIConfig    `toml:"tui"`
}

// WindowConfig controls the initial window.
type WindowConfig struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
}

// ClockConfig controls the tick rate and the initial display modes.
type ClockConfig struct {
	UpdatesPerSecond int  `toml:"updates_per_second"`
	Hour24           bool `toml:"hour24"`
	Local            bool `toml:"local"`
}

// ColorsConfig controls the frame and panel colors.
type ColorsConfig struct {
	Background string `toml:"background"`
	Panel      string `toml:"panel"` // empty = random at startup
	MinChannel int    `toml:"min_channel"`
	MaxChannel int    `toml:"max_channel"`
}

// FontsConfig controls where fonts are discovered and how they are loaded.
type FontsConfig struct {
	Dir     string `toml:"dir"`
	Size    int    `toml:"size"`
	Outline int    `toml:"outline"`
}

// TUIConfig controls the terminal face.
type TUIConfig struct {
	Glyphs string `toml:"glyphs"`
}

// Validate checks the configuration for values the clock cannot run with.
// It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window.width and window.height must be > 0"))
	}
	if c.Clock.UpdatesPerSecond < 1 || c.Clock.UpdatesPerSecond > 60 {
		errs = append(errs, fmt.Errorf("clock.updates_per_second must be between 1 and 60"))
	}

	if !hexColorRe.MatchString(c.Colors.Background) {
		errs = append(errs, fmt.Errorf("colors.background must be a hex color (e.g. %q)", DefaultBackground))
	}
	if c.Colors.Panel != "" && !hexColorRe.MatchString(c.Colors.Panel) {
		errs = append(errs, fmt.Errorf("colors.panel must be empty or a hex color"))
	}
	if c.Colors.MinChannel < 0 || c.Colors.MaxChannel > 255 || c.Colors.MinChannel > c.Colors.MaxChannel {
		errs = append(errs, fmt.Errorf("colors.min_channel and colors.max_channel must satisfy 0 <= min <= max <= 255"))
	}

	if c.Fonts.Dir == "" {
		errs = append(errs, fmt.Errorf("fonts.dir must not be empty"))
	}
	if c.Fonts.Size <= 0 {
		errs = append(errs, fmt.Errorf("fonts.size must be > 0"))
	}
	if c.Fonts.Outline < 0 {
		errs = append(errs, fmt.Errorf("fonts.outline must be >= 0"))
	}

	if !knownGlyphs(c.TUI.Glyphs) {
		errs = append(errs, fmt.Errorf("tui.glyphs must be one of %s", strings.Join(GlyphSets, ", ")))
	}

	return errors.Join(errs...)
}

func knownGlyphs(name string) bool {
	for _, g := range GlyphSets {
		if g == name {
			return true
		}
	}
	return false
}

// Defaults returns the compiled-in configuration used when no file exists.
func Defaults() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 540,
		},
		Clock: ClockConfig{
			UpdatesPerSecond: 10,
			Hour24:           true,
			Local:            true,
		},
		Colors: ColorsConfig{
			Background: DefaultBackground,
			Panel:      "",
			MinChannel: 40,
			MaxChannel: 200,
		},
		Fonts: FontsConfig{
			Dir:     "fonts",
			Size:    128,
			Outline: 2,
		},
		TUI: TUIConfig{
			Glyphs: "block",
		},
	}
}

// Load reads the configuration from path. If path is empty, it walks up from
// the current working directory looking for bcdclock.toml and falls back to
// Defaults when none is found. Unknown keys (likely typos) are an error, as
// is a configuration that fails Validate.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &cfg, nil
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for bcdclock.toml.
// It returns "" when the file does not exist anywhere up to the root.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ParseHex parses a "#RRGGBB" color.
func ParseHex(s string) (r, g, b uint8, err error) {
	if !hexColorRe.MatchString(s) {
		return 0, 0, 0, fmt.Errorf("config: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("config: invalid hex color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// InitFile writes a default bcdclock.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# bcdclock.toml: BCD Clock configuration
# Every key is optional; missing keys use the values shown here.

[window]
width = 1280
height = 540
fullscreen = false  # start in fullscreen mode

[clock]
updates_per_second = 10  # ticks per second (1-60)
hour24 = true            # false = 12-hour clock with AM/PM
local = true             # false = UTC

[colors]
background = "#323232"
panel = ""         # hex color for lit panels; empty = random at startup
min_channel = 40   # random panel colors stay within [min, max] per channel
max_channel = 200

[fonts]
dir = "fonts"  # .ttf/.otf files are discovered here at startup
size = 128     # point size of the overlay text
outline = 2    # outline stroke in pixels; 0 = no outline

[tui]
glyphs = "block"  # block | slim | dot
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
