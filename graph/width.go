package graph

import (
	"github.com/mattn/go-runewidth"
	"github.com/unilibs/uniwidth"
)

// Measurer measures the on-screen width of a grapheme cluster by
// writing it to the terminal and diffing the cursor column before and
// after — the "the characters written are the real glyphs the user
// should see, so measurement is free" trick from spec.md §4.2. It
// returns ok=false when the cursor position couldn't be read, in
// which case the caller falls back to a library estimate.
type Measurer func(cluster []byte) (width int, ok bool)

// widthEntry is a slot in the open-addressed table. An empty slot has
// an empty key.
type widthEntry struct {
	key   string
	width int
}

// WidthCache memoizes the display width of multi-byte grapheme
// clusters. Length-1 clusters are never cached (spec.md §3): they are
// computed directly by Width.
//
// Implementation is an open-addressed table with linear probing,
// keyed by FNV-1a over the cluster's bytes, matching spec.md §3's
// data model: initial capacity 8, ×2 growth, resized when
// count+1 > capacity*3/4.
type WidthCache struct {
	slots []widthEntry
	count int
}

// NewWidthCache creates an empty cache with the spec'd initial
// capacity.
func NewWidthCache() *WidthCache {
	return &WidthCache{slots: make([]widthEntry, 8)}
}

func fnv1a(b []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime
	}
	return h
}

func (c *WidthCache) find(key string) (index int, found bool) {
	n := len(c.slots)
	idx := int(fnv1a([]byte(key)) % uint64(n))
	for i := 0; i < n; i++ {
		slot := &c.slots[(idx+i)%n]
		if slot.key == "" {
			return (idx + i) % n, false
		}
		if slot.key == key {
			return (idx + i) % n, true
		}
	}
	// Table full (shouldn't happen given the load-factor resize).
	return -1, false
}

func (c *WidthCache) grow() {
	old := c.slots
	c.slots = make([]widthEntry, len(old)*2)
	c.count = 0
	for _, e := range old {
		if e.key != "" {
			c.insert(e.key, e.width)
		}
	}
}

func (c *WidthCache) insert(key string, width int) {
	if c.count+1 > len(c.slots)*3/4 {
		c.grow()
	}
	idx, found := c.find(key)
	if idx < 0 {
		c.grow()
		idx, found = c.find(key)
	}
	if !found {
		c.count++
	}
	c.slots[idx] = widthEntry{key: key, width: width}
}

// Lookup returns the cached width for cluster and whether it was
// present.
func (c *WidthCache) Lookup(cluster []byte) (int, bool) {
	idx, found := c.find(string(cluster))
	if !found {
		return 0, false
	}
	return c.slots[idx].width, true
}

// Width returns the display width of cluster, consulting the cache
// for multi-byte clusters and measuring on a miss. Single-byte
// clusters are never cached: control characters are width 0, other
// printable ASCII is width 1.
func (c *WidthCache) Width(cluster []byte, measure Measurer) int {
	if len(cluster) <= 1 {
		if len(cluster) == 0 {
			return 0
		}
		if cluster[0] < 0x20 || cluster[0] == 0x7F {
			return 0
		}
		return 1
	}

	if w, ok := c.Lookup(cluster); ok {
		return w
	}

	width := 1
	if measure != nil {
		if w, ok := measure(cluster); ok && w > 0 {
			width = w
		} else {
			width = fallbackWidth(cluster)
		}
	} else {
		width = fallbackWidth(cluster)
	}

	c.insert(string(cluster), width)
	return width
}

// StringWidth sums the display width of every grapheme cluster in s,
// using split to find cluster boundaries and cache/measure to price
// each one. It is used for prompt-width accounting in the redraw
// pipeline, which passes the session's measurer through: a multi-byte
// prompt cluster missing from the cache is measured with it once and
// cached from then on.
func StringWidth(s []byte, split Splitter, cache *WidthCache, measure Measurer) int {
	width := 0
	for i := 0; i < len(s); {
		n := NextGrapheme(s[i:], split)
		if n <= 0 {
			n = 1
		}
		width += cache.Width(s[i:i+n], measure)
		i += n
	}
	return width
}

// fallbackWidth estimates a cluster's width without a live terminal
// to measure against — used by Width when no measurer is given or the
// measurer fails (tests, non-TTY sessions) per error category 5: "unreadable
// cursor position: grapheme width defaults to 1" generalized to "use
// the best library estimate available".
func fallbackWidth(cluster []byte) int {
	runes := []rune(string(cluster))
	if len(runes) == 1 {
		w := uniwidth.RuneWidth(runes[0])
		if w <= 0 {
			w = runewidth.RuneWidth(runes[0])
		}
		if w <= 0 {
			return 1
		}
		return w
	}
	w := uniwidth.StringWidth(string(cluster))
	if w <= 0 {
		w = runewidth.StringWidth(string(cluster))
	}
	if w <= 0 {
		return 1
	}
	return w
}
