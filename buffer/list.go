package buffer

// List is the ordered, insertion-at-head sequence used for history
// and completion suggestions (spec.md §3/§4.4). The spec describes a
// singly linked intrusive chain; Design Notes §9 recommends a
// first-class ordered sequence instead when the host language has
// one, since insertion-at-head and index lookup are the only
// operations and no structural sharing is needed. A slice filled by
// prepending is that sequence for Go.
type List struct {
	items []string
	posn  int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add prepends s, matching the spec's "insertion at head".
func (l *List) Add(s string) {
	l.items = append(l.items, "")
	copy(l.items[1:], l.items)
	l.items[0] = s
}

// Clear empties the list and resets the position cursor.
func (l *List) Clear() {
	l.items = nil
	l.posn = 0
}

// Count returns the number of elements.
func (l *List) Count() int {
	return len(l.items)
}

// RemoveAt unlinks the element at index n (0-based from head). It is
// a no-op if n is out of range.
func (l *List) RemoveAt(n int) {
	if n < 0 || n >= len(l.items) {
		return
	}
	l.items = append(l.items[:n], l.items[n+1:]...)
	if l.posn > n {
		l.posn--
	}
	if l.posn >= len(l.items) {
		l.posn = len(l.items) - 1
	}
	if l.posn < 0 {
		l.posn = 0
	}
}

// Select returns the n-th element from head (clamped to the last
// element if n exceeds the count) along with the index actually
// reached, matching spec.md §4.4's select(n) -> (node, m) contract.
func (l *List) Select(n int) (value string, index int) {
	if len(l.items) == 0 {
		return "", 0
	}
	if n < 0 {
		n = 0
	}
	if n >= len(l.items) {
		n = len(l.items) - 1
	}
	return l.items[n], n
}

// Posn returns the current position cursor, carried across keypresses
// so Up/Down can resume traversal.
func (l *List) Posn() int {
	return l.posn
}

// SetPosn sets the position cursor, clamped to [0, Count()-1] (0 when
// empty).
func (l *List) SetPosn(n int) {
	if len(l.items) == 0 {
		l.posn = 0
		return
	}
	if n < 0 {
		n = 0
	}
	if n >= len(l.items) {
		n = len(l.items) - 1
	}
	l.posn = n
}

// At returns the element at index n without touching the position
// cursor.
func (l *List) At(n int) (string, bool) {
	if n < 0 || n >= len(l.items) {
		return "", false
	}
	return l.items[n], true
}

// Items returns a defensive copy of the list contents, head first.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}
