package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScaffoldProject prepares dir for running the clock. It creates
// bcdclock.toml and the fonts/ directory the window face discovers fonts in.
// Anything that already exists is left untouched. Returns the list of
// created paths.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	tomlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	fontsDir := filepath.Join(dir, Defaults().Fonts.Dir)
	if _, err := os.Stat(fontsDir); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(fontsDir, 0755); mkErr != nil {
			return created, fmt.Errorf("scaffold: create %s: %w", fontsDir, mkErr)
		}
		created = append(created, fontsDir)
	}

	return created, nil
}
