package tui

import (
	"strings"
	"unicode/utf8"
)

// glyphHeight is the height of every bitmap in pixels.
const glyphHeight = 5

// bitmaps holds the 3×5 (or 1×5) pixel patterns for every character the
// clock can show. '#' is a lit pixel.
var bitmaps = map[rune][glyphHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	':': {".", "#", ".", "#", "."},
	' ': {".", ".", ".", ".", "."},
	'A': {"###", "#.#", "###", "#.#", "#.#"},
	'P': {"###", "#.#", "###", "#..", "#.."},
	'M': {"#.#", "###", "#.#", "#.#", "#.#"},
}

// GlyphSet draws bitmaps as terminal text.
type GlyphSet struct {
	Name string
	// rows converts one bitmap into terminal rows of equal rune width.
	rows func(bitmap [glyphHeight]string) []string
}

// glyphSets are the available sets in cycling order.
var glyphSets = []GlyphSet{
	{Name: "block", rows: blockRows},
	{Name: "slim", rows: slimRows},
	{Name: "dot", rows: dotRows},
}

// LookupGlyphs returns the set with the given name, or false.
func LookupGlyphs(name string) (GlyphSet, bool) {
	for _, g := range glyphSets {
		if g.Name == name {
			return g, true
		}
	}
	return GlyphSet{}, false
}

// GlyphOrder returns every set name, rotated so first leads. Unknown names
// leave the default order.
func GlyphOrder(first string) []string {
	names := make([]string, 0, len(glyphSets))
	start := 0
	for i, g := range glyphSets {
		if g.Name == first {
			start = i
		}
	}
	for i := range glyphSets {
		names = append(names, glyphSets[(start+i)%len(glyphSets)].Name)
	}
	return names
}

// Render lays out s as big text. Characters without a bitmap render blank.
// Glyphs are separated by one empty column; all rows have the same width.
func (g GlyphSet) Render(s string) []string {
	var out []string
	for i, ch := range s {
		bm, ok := bitmaps[ch]
		if !ok {
			bm = bitmaps[' ']
		}
		rows := g.rows(bm)
		if out == nil {
			out = make([]string, len(rows))
		}
		for r := range rows {
			if i > 0 {
				out[r] += " "
			}
			out[r] += rows[r]
		}
	}
	return out
}

// Size returns the width and height of Render(s) in cells.
func (g GlyphSet) Size(s string) (w, h int) {
	rows := g.Render(s)
	if len(rows) == 0 {
		return 0, 0
	}
	return utf8.RuneCountInString(rows[0]), len(rows)
}

// blockRows draws each pixel two cells wide so glyphs keep their aspect on
// terminals whose cells are twice as tall as they are wide.
func blockRows(bm [glyphHeight]string) []string {
	rows := make([]string, glyphHeight)
	for i, line := range bm {
		rows[i] = mapPixels(line, "██", "  ")
	}
	return rows
}

func dotRows(bm [glyphHeight]string) []string {
	rows := make([]string, glyphHeight)
	for i, line := range bm {
		rows[i] = mapPixels(line, "●", " ")
	}
	return rows
}

// slimRows packs two pixel rows into one terminal row with half blocks.
func slimRows(bm [glyphHeight]string) []string {
	var rows []string
	for i := 0; i < glyphHeight; i += 2 {
		top := bm[i]
		bottom := strings.Repeat(".", len(top))
		if i+1 < glyphHeight {
			bottom = bm[i+1]
		}
		var b strings.Builder
		for x := 0; x < len(top); x++ {
			switch up, down := top[x] == '#', bottom[x] == '#'; {
			case up && down:
				b.WriteString("█")
			case up:
				b.WriteString("▀")
			case down:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

func mapPixels(line, on, off string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if line[i] == '#' {
			b.WriteString(on)
		} else {
			b.WriteString(off)
		}
	}
	return b.String()
}
