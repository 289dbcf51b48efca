package render

import (
	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/terminal"
)

// WriteStyledBuffer writes styled to t, expanding the control
// characters embedded in the original buffer text that survive
// styling: '\n'/'\r' erase to end of line, move to the next row, and
// write continuationPrompt; '\t' becomes a single space; anything
// else that isn't part of an ANSI escape sequence we generated is
// written byte for byte. Escape sequences (starting 0x1B) pass
// through verbatim — spec.md §4.5's "render-string" routine.
func WriteStyledBuffer(t *terminal.TTY, styled []byte, continuationPrompt string) error {
	for i := 0; i < len(styled); {
		b := styled[i]
		switch {
		case b == 0x1B:
			j := escapeSequenceEnd(styled, i)
			if err := t.WriteString(string(styled[i:j])); err != nil {
				return err
			}
			i = j

		case b == '\n' || b == '\r':
			if err := t.EraseToEOL(); err != nil {
				return err
			}
			if err := t.WriteString("\r\n"); err != nil {
				return err
			}
			if continuationPrompt != "" {
				if err := t.WriteString(continuationPrompt); err != nil {
					return err
				}
			}
			i++

		case b == '\t':
			if err := t.WriteByte(' '); err != nil {
				return err
			}
			i++

		default:
			if err := t.WriteByte(b); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// escapeSequenceEnd returns the index just past the escape sequence
// starting at styled[i]. CSI sequences (ESC '[' ... terminator) scan
// to their final alphabetic-or-'~' byte; anything else is treated as
// a two-byte escape.
func escapeSequenceEnd(styled []byte, i int) int {
	j := i + 1
	if j < len(styled) && styled[j] == '[' {
		j++
		for j < len(styled) && !isFinalByte(styled[j]) {
			j++
		}
		if j < len(styled) {
			j++
		}
		return j
	}
	if j < len(styled) {
		j++
	}
	return j
}

func isFinalByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// Redraw performs the minimal-movement physical redraw described in
// spec.md §4.5: move up to the start line, carriage return, write the
// prompt, render the styled buffer, erase to end of line, then
// reposition to the cursor's (xpos, ypos).
func Redraw(t *terminal.TTY, prompt, continuationPrompt string, styled []byte, xpos, ypos, nlines, vpos int, split graph.Splitter, cache *graph.WidthCache, measure graph.Measurer) error {
	if err := t.MoveUp(vpos); err != nil {
		return err
	}
	if err := t.CarriageReturn(); err != nil {
		return err
	}
	if err := t.WriteString(prompt); err != nil {
		return err
	}
	if err := WriteStyledBuffer(t, styled, continuationPrompt); err != nil {
		return err
	}
	if err := t.EraseToEOL(); err != nil {
		return err
	}
	if err := t.MoveUp(nlines - ypos); err != nil {
		return err
	}
	promptWidth := graph.StringWidth([]byte(prompt), split, cache, measure)
	return t.MoveToColumn(promptWidth + xpos)
}

// ChangeHeight reconciles the previous frame's line count with the
// new one before Redraw runs, so a shrinking buffer doesn't leave the
// old frame's trailing lines on screen and a growing one has room to
// scroll into — spec.md §4.5's "Height tracking". vpos is the
// cursor's current row (0-based from the prompt line); it is
// preserved across the call so the caller's next Redraw still starts
// from the right row.
func ChangeHeight(t *terminal.TTY, oldNlines, newNlines, vpos int) error {
	if newNlines == oldNlines {
		return nil
	}

	if err := t.MoveDown(oldNlines - vpos); err != nil {
		return err
	}

	if newNlines > oldNlines {
		grown := newNlines - oldNlines
		for i := 0; i < grown; i++ {
			if err := t.WriteString("\n"); err != nil {
				return err
			}
		}
	} else {
		shrunk := oldNlines - newNlines
		for i := 0; i < shrunk; i++ {
			if err := t.EraseLine(); err != nil {
				return err
			}
			if err := t.MoveUp(1); err != nil {
				return err
			}
		}
	}

	return t.MoveUp(newNlines - vpos)
}
