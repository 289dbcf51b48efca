// Package graph provides UTF-8 decoding and grapheme-cluster aware
// measurement for the line editor. It is the seam between raw bytes
// and the character-indexed world the buffer and editor packages live
// in.
package graph

import "unicode/utf8"

// ByteCount inspects the leading byte of a UTF-8 sequence and reports
// how many bytes the code point occupies (1-4). It returns 0 if b is
// a continuation byte (10xxxxxx) — the caller is mid-sequence and
// should not treat b as a new code point. This is a byte-classification
// question unicode/utf8 has no exported answer to (utf8.RuneLen takes a
// decoded rune, not a lead byte), so the keyboard decoder — which must
// decide how many more bytes to wait for before it has a complete
// sequence to hand to Decode — uses it directly.
func ByteCount(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	case b&0xC0 == 0x80:
		return 0
	default:
		return 1
	}
}

// Decode assembles the code point encoded at the start of p, returning
// the rune and the number of bytes it consumed. It returns
// (utf8.RuneError, 1) for invalid or truncated sequences so callers
// can degrade to byte-stepping per the error-handling contract. The
// actual decoding and validation (overlong encodings, surrogate
// halves, truncated sequences) is unicode/utf8.DecodeRune's job; this
// wrapper only returns (0, 0) for an empty slice instead of
// utf8.DecodeRune's (utf8.RuneError, 0).
func Decode(p []byte) (r rune, size int) {
	if len(p) == 0 {
		return 0, 0
	}
	return utf8.DecodeRune(p)
}

// Count returns the number of code points in b, walking the buffer
// one sequence at a time. Invalid bytes are stepped over one at a
// time, per the "degrade gracefully" error-handling rule — Count
// never fails, it just treats garbage as single-byte runes.
func Count(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		_, size := Decode(b[i:])
		if size <= 0 {
			size = 1
		}
		i += size
		n++
	}
	return n
}

// ByteOffset translates a character index into a byte offset within
// b. An index at or beyond the character length returns len(b).
func ByteOffset(b []byte, charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	off := 0
	for n := 0; n < charIndex && off < len(b); n++ {
		_, size := Decode(b[off:])
		if size <= 0 {
			size = 1
		}
		off += size
	}
	return off
}
