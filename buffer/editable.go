// Package buffer provides the character-indexed editable text buffer
// and the ordered list used for history and completion suggestions.
package buffer

import (
	"strings"

	"github.com/ember-lang/lineedit/graph"
)

const minCapacity = 8

// Editable is a growable byte buffer whose public operations are
// addressed by character (code point) index, not byte offset —
// spec.md §3/§4.3. Internally it translates a character index to a
// byte offset by walking UTF-8 sequences, caching the last lookup so
// a lookup at or after the previous one resumes from there instead of
// from byte 0. The cache is reset by every mutation, and a lookup
// before the cached index walks from the start again.
type Editable struct {
	data []byte

	// lastChar/lastByte cache the most recent char->byte translation.
	lastChar int
	lastByte int
}

// New returns an empty Editable with spec.md §3's minimum capacity
// pre-allocated.
func New() *Editable {
	return &Editable{data: make([]byte, 0, minCapacity)}
}

// NewFromString returns an Editable seeded with s.
func NewFromString(s string) *Editable {
	e := New()
	e.AppendString(s)
	return e
}

// grow ensures cap(e.data) >= size, using the ×1.5 growth policy from
// spec.md §3 with a floor of minCapacity.
func (e *Editable) grow(size int) {
	if cap(e.data) >= size {
		return
	}
	newCap := cap(e.data)
	if newCap < minCapacity {
		newCap = minCapacity
	}
	for newCap < size {
		newCap = newCap + newCap/2
	}
	buf := make([]byte, len(e.data), newCap)
	copy(buf, e.data)
	e.data = buf
}

// Bytes returns the buffer's current contents. The slice is owned by
// the Editable; callers must not retain it across a mutation.
func (e *Editable) Bytes() []byte {
	return e.data
}

// String returns a copy of the buffer's contents.
func (e *Editable) String() string {
	return string(e.data)
}

// Len returns the byte length of the buffer.
func (e *Editable) Len() int {
	return len(e.data)
}

// LengthChars returns the number of UTF-8 code points in the buffer.
func (e *Editable) LengthChars() int {
	return graph.Count(e.data)
}

// invalidateCache resets the sequential-lookup cache. Called whenever
// the buffer is mutated, since byte offsets shift under it.
func (e *Editable) invalidateCache() {
	e.lastChar = 0
	e.lastByte = 0
}

// byteOffset translates charIndex to a byte offset, using the cached
// position as a starting point when charIndex is at or after it —
// the common case for sequential typing and cursor movement.
func (e *Editable) byteOffset(charIndex int) int {
	if charIndex <= 0 {
		return 0
	}

	start, off, n := 0, 0, 0
	if e.lastChar <= charIndex {
		start, off, n = e.lastByte, e.lastByte, e.lastChar
	}

	for ; n < charIndex && off < len(e.data); n++ {
		_, size := graph.Decode(e.data[off:])
		if size <= 0 {
			size = 1
		}
		off += size
	}
	_ = start

	e.lastChar, e.lastByte = n, off
	return off
}

// Locate returns the byte offset of charIndex within the buffer.
func (e *Editable) Locate(charIndex int) int {
	return e.byteOffset(charIndex)
}

// Append adds p to the end of the buffer.
func (e *Editable) Append(p []byte) {
	e.grow(len(e.data) + len(p))
	e.data = append(e.data, p...)
	e.invalidateCache()
}

// AppendString adds s to the end of the buffer.
func (e *Editable) AppendString(s string) {
	e.Append([]byte(s))
}

// Insert places p at charIndex, shifting the tail right. An index at
// or beyond the current length behaves as Append, per spec.md §4.3.
func (e *Editable) Insert(charIndex int, p []byte) {
	if charIndex >= e.LengthChars() {
		e.Append(p)
		return
	}
	off := e.byteOffset(charIndex)
	e.grow(len(e.data) + len(p))

	e.data = append(e.data, make([]byte, len(p))...)
	copy(e.data[off+len(p):], e.data[off:len(e.data)-len(p)])
	copy(e.data[off:], p)
	e.invalidateCache()
}

// InsertString is Insert for a string.
func (e *Editable) InsertString(charIndex int, s string) {
	e.Insert(charIndex, []byte(s))
}

// Delete removes nChars characters starting at charIndex. It is a
// no-op if nChars exceeds the number of characters available from
// charIndex, per spec.md §4.3.
func (e *Editable) Delete(charIndex, nChars int) {
	if nChars <= 0 {
		return
	}
	total := e.LengthChars()
	if charIndex < 0 || charIndex+nChars > total {
		return
	}
	start := e.byteOffset(charIndex)
	end := e.byteOffset(charIndex + nChars)

	e.data = append(e.data[:start], e.data[end:]...)
	e.invalidateCache()
}

// Clear empties the buffer without releasing its capacity.
func (e *Editable) Clear() {
	e.data = e.data[:0]
	e.invalidateCache()
}

// Coordinates returns the (x, y) character-count position of
// charIndex, where y counts '\n' bytes seen before it and x is the
// character offset within that line. charIndex == -1 returns the
// coordinate of the end of the buffer, just past its last character.
func (e *Editable) Coordinates(charIndex int) (x, y int) {
	if charIndex < 0 {
		charIndex = e.LengthChars()
	}
	off := e.byteOffset(charIndex)
	line := 0
	lineStartChar := 0
	charsSeen := 0
	for i := 0; i < off; {
		_, size := graph.Decode(e.data[i:])
		if size <= 0 {
			size = 1
		}
		if e.data[i] == '\n' {
			line++
			lineStartChar = charsSeen + 1
		}
		i += size
		charsSeen++
	}
	return charIndex - lineStartChar, line
}

// DisplayCoordinates is Coordinates but reports x in display columns
// rather than character count, honoring wide graphemes, per
// spec.md §4.3. split selects the grapheme boundary algorithm (nil
// falls back to one-code-point-per-grapheme); measure resolves a
// cluster's width (nil falls back to the library estimate).
func (e *Editable) DisplayCoordinates(charIndex int, split graph.Splitter, cache *graph.WidthCache, measure graph.Measurer) (x, y int) {
	if charIndex < 0 {
		charIndex = e.LengthChars()
	}
	off := e.byteOffset(charIndex)

	col, line := 0, 0
	for i := 0; i < off; {
		n := graph.NextGrapheme(e.data[i:], split)
		if n <= 0 {
			n = 1
		}
		if e.data[i] == '\n' {
			line++
			col = 0
		} else {
			col += cache.Width(e.data[i:i+n], measure)
		}
		i += n
	}
	return col, line
}

// FindPosition is the inverse of Coordinates by character count: it
// returns the character index of column x on line y. x == -1 means
// the end of line y, per spec.md §4.3.
func (e *Editable) FindPosition(x, y int) int {
	lineStartChar := -1
	line := 0
	charsSeen := 0
	off := 0
	for {
		if line == y {
			lineStartChar = charsSeen
			break
		}
		if off >= len(e.data) {
			break
		}
		_, size := graph.Decode(e.data[off:])
		if size <= 0 {
			size = 1
		}
		if e.data[off] == '\n' {
			line++
		}
		off += size
		charsSeen++
	}
	if lineStartChar < 0 {
		return e.LengthChars()
	}

	if x < 0 {
		// End of line y: walk to the next '\n' or EOF.
		n := lineStartChar
		o := e.byteOffset(lineStartChar)
		for o < len(e.data) && e.data[o] != '\n' {
			_, size := graph.Decode(e.data[o:])
			if size <= 0 {
				size = 1
			}
			o += size
			n++
		}
		return n
	}
	return lineStartChar + x
}

// CountLines returns the number of embedded newlines in the buffer,
// i.e. the y coordinate of the last character.
func (e *Editable) CountLines() int {
	_, y := e.Coordinates(-1)
	return y
}

// Line returns the text of line y (0-based), without its terminating
// newline.
func (e *Editable) Line(y int) string {
	lines := strings.Split(e.String(), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}
