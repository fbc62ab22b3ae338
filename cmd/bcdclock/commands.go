package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.BCDClock/internal/config"
	"github.com/LISSConsulting/LISSTech.BCDClock/internal/fonts"
)

func windowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the clock in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd)
		},
	}
}

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the clock in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if glyphs, _ := cmd.Flags().GetString("glyphs"); glyphs != "" {
				cfg.TUI.Glyphs = glyphs
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return executeTUI(cfg)
		},
	}
	cmd.Flags().String("glyphs", "", "glyph set to start with: "+strings.Join(config.GlyphSets, " | ")+" (default: from config)")
	return cmd
}

func streamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print the BCD matrix to stdout each time the time changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ticks, _ := cmd.Flags().GetInt("ticks")
			if ticks < 0 {
				return fmt.Errorf("--ticks must be >= 0, got %d", ticks)
			}

			ctx, cancel := signalContext()
			defer cancel()
			return executeStream(ctx, cfg, ticks, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().Int("ticks", 0, "stop after this many ticks (0 = run until interrupted)")
	return cmd
}

func fontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the fonts the window face cycles through",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			set, err := fonts.Discover(cfg.Fonts.Dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatFontList(set))
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold bcdclock.toml and the fonts directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			return runInit(cmd, dir)
		},
	}
}

// runInit scaffolds dir and reports what was created.
func runInit(cmd *cobra.Command, dir string) error {
	created, err := config.ScaffoldProject(dir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatScaffoldResult(created))
	return nil
}

// formatFontList renders the font set in selection order.
func formatFontList(set fonts.Set) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fonts in %s\n", set.Dir)
	b.WriteString("─────\n")
	for i, name := range set.Names {
		fmt.Fprintf(&b, "  %2d  %s\n", i, name)
	}
	return b.String()
}

func formatScaffoldResult(created []string) string {
	if len(created) == 0 {
		return "All files already exist, nothing to create.\n"
	}
	var b strings.Builder
	for _, path := range created {
		fmt.Fprintf(&b, "Created %s\n", path)
	}
	return b.String()
}
