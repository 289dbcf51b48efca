package graph

import "github.com/rivo/uniseg"

// Splitter reports the byte length of the next grapheme cluster at
// the start of s, never inspecting more than max bytes. It is the
// capability hole spec'd for injecting a library-backed cluster
// boundary algorithm; DefaultSplitter fills it when the caller hasn't
// installed one.
type Splitter func(s []byte, max int) int

// DefaultSplitter segments s with the Unicode text segmentation
// algorithm (UAX #29) via github.com/rivo/uniseg. A Session uses it
// unless another splitter is installed — one grapheme cluster per call
// rather than one code point, so combining marks and ZWJ emoji
// sequences measure and move as a unit. NextGrapheme itself does not
// fall back to it: given a nil splitter it steps one code point.
func DefaultSplitter(s []byte, max int) int {
	if len(s) == 0 {
		return 0
	}
	if max > 0 && max < len(s) {
		s = s[:max]
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(s, -1)
	if len(cluster) == 0 {
		return 1
	}
	return len(cluster)
}

// NextGrapheme returns the byte length of the grapheme cluster
// starting at s using split, or one code point if split is nil (the
// "one code point = one grapheme" fallback spec.md §4.2 requires).
func NextGrapheme(s []byte, split Splitter) int {
	if len(s) == 0 {
		return 0
	}
	if split != nil {
		if n := split(s, len(s)); n > 0 {
			if n > len(s) {
				n = len(s)
			}
			return n
		}
	}
	_, size := Decode(s)
	if size <= 0 {
		size = 1
	}
	return size
}

// PrevGraphemeStart walks backward from byte offset pos in s and
// returns the start offset of the grapheme cluster immediately before
// it. It re-segments s from its first byte on every call, which is
// simple and correct; its callers (Left/Ctrl-B and Delete) pass the
// whole edit buffer as s.
func PrevGraphemeStart(s []byte, pos int, split Splitter) int {
	if pos <= 0 {
		return 0
	}
	last := 0
	for i := 0; i < pos; {
		n := NextGrapheme(s[i:], split)
		if n <= 0 {
			n = 1
		}
		if i+n >= pos {
			return i
		}
		last = i
		i += n
	}
	return last
}
