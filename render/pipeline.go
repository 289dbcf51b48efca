package render

import "bytes"

// Selection is a byte-offset range into the buffer being rendered,
// normalized so Start <= End. Active is false when there is no
// selection (spec.md §3's sposn == -1).
type Selection struct {
	Active     bool
	Start, End int
}

// Input bundles what one Render call needs.
type Input struct {
	Buffer     []byte
	Tokenizer  Tokenizer
	Colors     *ColorMap
	Selection  Selection
	Suggestion string
}

// Result is what Render produced.
type Result struct {
	Styled []byte
	// Misbehaved is true when the tokenizer loop guard tripped: the
	// caller should emit the spec.md §7 one-time stderr diagnostic.
	Misbehaved bool
}

// Render produces a styled byte buffer from in.Buffer by invoking the
// optional tokenizer, mapping token types to colors via in.Colors,
// overlaying selection highlighting, and appending the inline
// completion suggestion in bold — spec.md §4.5 steps 1-5.
func Render(in Input) Result {
	var out bytes.Buffer
	out.WriteString("\033[0m")

	misbehaved := false
	switch {
	case in.Tokenizer != nil:
		misbehaved = renderTokenized(&out, in)
	default:
		emitSegment(&out, in.Buffer, 0, len(in.Buffer), in.Selection, "")
	}

	if in.Suggestion != "" {
		out.WriteString("\033[1m")
		out.WriteString(in.Suggestion)
	}
	out.WriteString("\033[0m")

	return Result{Styled: out.Bytes(), Misbehaved: misbehaved}
}

// renderTokenized walks in.Buffer through in.Tokenizer, coloring each
// token and any unrecognized bytes between tokens. It guards against a
// tokenizer that never terminates or never advances: once the number
// of tokens handed back exceeds the buffer's byte length, coloring is
// abandoned and the remainder is emitted uncolored (spec.md §4.5,
// §7 category 4).
func renderTokenized(out *bytes.Buffer, in Input) bool {
	pos := 0
	iterations := 0
	maxIterations := len(in.Buffer) + 1

	for pos < len(in.Buffer) {
		iterations++
		if iterations > maxIterations {
			emitSegment(out, in.Buffer, pos, len(in.Buffer), in.Selection, "")
			return true
		}

		tok, ok := in.Tokenizer(in.Buffer, pos)
		if !ok || tok.Length <= 0 {
			emitSegment(out, in.Buffer, pos, len(in.Buffer), in.Selection, "")
			return false
		}

		start := tok.Start
		if start < pos {
			start = pos
		}
		if start > pos {
			emitSegment(out, in.Buffer, pos, start, in.Selection, "")
		}

		end := tok.Start + tok.Length
		if end > len(in.Buffer) {
			end = len(in.Buffer)
		}
		if end <= start {
			emitSegment(out, in.Buffer, pos, len(in.Buffer), in.Selection, "")
			return false
		}

		color, _ := in.Colors.Lookup(tok.Type)
		emitSegment(out, in.Buffer, start, end, in.Selection, colorCode(color))
		pos = end
	}
	return false
}

// colorCode renders the SGR escape that sets the foreground color.
func colorCode(c Color) string {
	return "\033[" + c.sgr() + "m"
}

// emitSegment writes buf[start:end] wrapped in colorCode (if any),
// overlaying reverse-video on the portion of the range that falls
// inside sel. If the segment doesn't intersect the selection at all
// it is written as a single block, matching spec.md §4.5's "If the
// token lies entirely outside the selection, emit as a block."
func emitSegment(out *bytes.Buffer, buf []byte, start, end int, sel Selection, colorCode string) {
	if start >= end {
		return
	}
	if colorCode != "" {
		out.WriteString(colorCode)
	}

	if !sel.Active || end <= sel.Start || start >= sel.End {
		out.Write(buf[start:end])
		return
	}

	if start < sel.Start {
		out.Write(buf[start:sel.Start])
	}
	revStart, revEnd := max(start, sel.Start), min(end, sel.End)
	out.WriteString("\033[7m")
	out.Write(buf[revStart:revEnd])
	out.WriteString("\033[0m")
	if colorCode != "" {
		out.WriteString(colorCode)
	}
	if end > sel.End {
		out.Write(buf[sel.End:end])
	}
}
