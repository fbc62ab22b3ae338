// Package main is the entry point for the bcdclock CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bcdclock",
		Short: "Binary-coded decimal clock",
		Long: "bcdclock shows the current time as a 4x6 grid of binary-coded decimal\n" +
			"panels. Without a subcommand it opens the window face.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "path to bcdclock.toml (default: search upwards from the working directory)")

	root.AddCommand(
		windowCmd(),
		tuiCmd(),
		streamCmd(),
		fontsCmd(),
		initCmd(),
	)

	return root
}
