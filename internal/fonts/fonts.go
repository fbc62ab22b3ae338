// Package fonts discovers the font files the clock can cycle through and
// loads them into drawable faces.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ErrNoFonts is returned by Discover when the directory holds no font files.
var ErrNoFonts = errors.New("fonts: no font files found")

// extensions lists the file types Discover accepts.
var extensions = []string{".ttf", ".otf"}

// Set is the ordered list of fonts found at startup. Names are paths
// relative to Dir using forward slashes.
type Set struct {
	Dir   string
	Names []string
}

// Len returns the number of fonts in the set.
func (s Set) Len() int { return len(s.Names) }

// Path returns the filesystem path of font i.
func (s Set) Path(i int) string {
	return filepath.Join(s.Dir, filepath.FromSlash(s.Names[i]))
}

// Discover walks dir recursively and returns every font file in it, sorted by
// relative path. Hidden files and directories are skipped. A missing
// directory or an empty result is an error.
func Discover(dir string) (Set, error) {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isFont(d.Name()) {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return Set{}, fmt.Errorf("fonts: read %s: %w", dir, err)
	}
	if len(names) == 0 {
		return Set{}, fmt.Errorf("%w in %s", ErrNoFonts, dir)
	}

	sort.Strings(names)
	return Set{Dir: dir, Names: names}, nil
}

func isFont(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load parses the font file at path and returns a face at the given size in
// pixels. The caller owns the face and must Close it.
func Load(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: read %s: %w", path, err)
	}
	return Parse(data, size)
}

// Parse builds a face from TTF/OTF data.
func Parse(data []byte, size int) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72, // Size is in pixels.
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: new face: %w", err)
	}
	return face, nil
}
