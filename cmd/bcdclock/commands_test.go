package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
)

func TestFormatFontList(t *testing.T) {
	tests := []struct {
		name     string
		set      fonts.Set
		contains []string
	}{
		{
			name:     "single font",
			set:      fonts.Set{Dir: "fonts", Names: []string{"a.ttf"}},
			contains: []string{"Fonts in fonts", "─────", " 0  a.ttf"},
		},
		{
			name: "nested fonts keep order",
			set:  fonts.Set{Dir: "fonts", Names: []string{"a.ttf", "mono/b.otf", "z.ttf"}},
			contains: []string{
				" 0  a.ttf",
				" 1  mono/b.otf",
				" 2  z.ttf",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatFontList(tt.set)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output should contain %q\ngot:\n%s", want, got)
				}
			}
		})
	}
}

func TestFormatScaffoldResult(t *testing.T) {
	tests := []struct {
		name     string
		created  []string
		contains []string
		excludes []string
	}{
		{
			name:     "nothing created",
			created:  nil,
			contains: []string{"All files already exist"},
			excludes: []string{"Created"},
		},
		{
			name:     "empty slice same as nil",
			created:  []string{},
			contains: []string{"All files already exist"},
		},
		{
			name:     "config and fonts dir",
			created:  []string{"bcdclock.toml", "fonts"},
			contains: []string{"Created bcdclock.toml", "Created fonts"},
			excludes: []string{"already exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatScaffoldResult(tt.created)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output should contain %q\ngot:\n%s", want, got)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should NOT contain %q\ngot:\n%s", exclude, got)
				}
			}
		})
	}
}

func TestRootCmdStructure(t *testing.T) {
	root := rootCmd()

	if root.Use != "bcdclock" {
		t.Errorf("root Use = %q, want %q", root.Use, "bcdclock")
	}
	if root.RunE == nil {
		t.Error("root command should open the window by default")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatal("missing --config persistent flag")
	}

	subs := map[string]bool{}
	for _, sub := range root.Commands() {
		subs[sub.Name()] = true
	}
	for _, want := range []string{"window", "tui", "stream", "fonts", "init"} {
		if !subs[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestSubcommandFlags(t *testing.T) {
	root := rootCmd()
	want := map[string]string{
		"stream": "ticks",
		"tui":    "glyphs",
	}
	for _, sub := range root.Commands() {
		flag, ok := want[sub.Name()]
		if !ok {
			continue
		}
		if sub.Flags().Lookup(flag) == nil {
			t.Errorf("%s: missing --%s flag", sub.Name(), flag)
		}
		delete(want, sub.Name())
	}
	for name := range want {
		t.Errorf("subcommand %q not found", name)
	}
}

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	cmd := initCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runInit(cmd, dir); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	for _, name := range []string{"bcdclock.toml", "fonts"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("output = %q, want Created lines", out.String())
	}

	// Second run creates nothing.
	out.Reset()
	if err := runInit(cmd, dir); err != nil {
		t.Fatalf("second runInit: %v", err)
	}
	if !strings.Contains(out.String(), "nothing to create") {
		t.Errorf("second output = %q", out.String())
	}
}

func TestFontsCmd(t *testing.T) {
	dir := t.TempDir()
	fontDir := filepath.Join(dir, "fonts")
	if err := os.MkdirAll(filepath.Join(fontDir, "mono"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.ttf", "mono/a.otf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(fontDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfgPath := filepath.Join(dir, "bcdclock.toml")
	toml := "[fonts]\ndir = " + strconvQuote(fontDir) + "\n"
	if err := os.WriteFile(cfgPath, []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}

	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"fonts", "--config", cfgPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("fonts: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, " 0  b.ttf") || !strings.Contains(got, " 1  mono/a.otf") {
		t.Errorf("fonts output:\n%s", got)
	}
	if strings.Contains(got, "notes.txt") {
		t.Errorf("non-font file listed:\n%s", got)
	}
}

func TestFontsCmd_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bcdclock.toml")
	toml := "[fonts]\ndir = " + strconvQuote(dir) + "\n"
	if err := os.WriteFile(cfgPath, []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}

	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fonts", "--config", cfgPath})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for a directory without fonts")
	}
}

func TestCommands_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bcdclock.toml")
	if err := os.WriteFile(cfgPath, []byte("[clock]\nupdates_per_second = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"window", "tui", "stream", "fonts"} {
		t.Run(name, func(t *testing.T) {
			root := rootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs([]string{name, "--config", cfgPath})
			err := root.Execute()
			if err == nil || !strings.Contains(err.Error(), "updates_per_second") {
				t.Errorf("%s: err = %v, want validation error", name, err)
			}
		})
	}
}

func TestTUICmd_UnknownGlyphs(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bcdclock.toml")
	if err := os.WriteFile(cfgPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"tui", "--config", cfgPath, "--glyphs", "gothic"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "tui.glyphs") {
		t.Fatalf("err = %v, want unknown glyph set error", err)
	}
}

// strconvQuote renders s as a TOML basic string.
func strconvQuote(s string) string {
	return `"` + strings.ReplaceAll(filepath.ToSlash(s), `"`, `\"`) + `"`
}
