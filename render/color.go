// Package render turns the editor's buffer into a styled ANSI byte
// stream and drives the minimal-movement terminal redraw, per
// spec.md §4.5 and the bit-exact escape sequences in spec.md §6.
package render

import "sort"

// Color is one of the eight ANSI foreground colors plus the
// terminal's default, spec.md §3.
type Color int

// Color constants, in ANSI SGR order (30+c).
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Default
)

// sgr returns the SGR parameter for fg, or "39" (default foreground)
// for Default.
func (c Color) sgr() string {
	if c == Default {
		return "39"
	}
	codes := [...]string{"30", "31", "32", "33", "34", "35", "36", "37"}
	if int(c) < 0 || int(c) >= len(codes) {
		return "39"
	}
	return codes[c]
}

// Emphasis is a text decoration layered on top of a Color.
type Emphasis int

// Emphasis constants.
const (
	NoEmphasis Emphasis = iota
	Bold
	Underline
	Reverse
)

func (e Emphasis) sgr() string {
	switch e {
	case Bold:
		return "1"
	case Underline:
		return "4"
	case Reverse:
		return "7"
	default:
		return ""
	}
}

// ColorEntry maps a tokenizer-defined token type to a Color.
type ColorEntry struct {
	Type  int
	Color Color
}

// ColorMap is a sorted-by-type lookup table, rebuilt and replaced
// wholesale on every SetTokenizer call (spec.md §5: "The color map
// allocated by set_tokenizer is freed and replaced on each call" —
// in Go that's simply a fresh slice, the GC does the freeing).
type ColorMap struct {
	entries []ColorEntry
}

// NewColorMap copies entries, sorts them by token type, and returns
// the map ready for binary search lookups (spec.md §3: "sorted by
// token-type for binary search").
func NewColorMap(entries []ColorEntry) *ColorMap {
	cm := &ColorMap{entries: append([]ColorEntry(nil), entries...)}
	sort.Slice(cm.entries, func(i, j int) bool {
		return cm.entries[i].Type < cm.entries[j].Type
	})
	return cm
}

// Lookup finds the color registered for tokenType. found is false iff
// the map has no entry for tokenType, matching spec.md §8's testable
// property "lookup_color(t) finds an entry iff the map contains t".
func (cm *ColorMap) Lookup(tokenType int) (Color, bool) {
	if cm == nil {
		return Default, false
	}
	entries := cm.entries
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].Type >= tokenType
	})
	if i < len(entries) && entries[i].Type == tokenType {
		return entries[i].Color, true
	}
	return Default, false
}
