package lineedit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/keys"
	"github.com/ember-lang/lineedit/render"
	"github.com/ember-lang/lineedit/terminal"
)

// ReadLine reads one line of input, editing interactively if the
// input stream is a supported terminal, and falling back to
// line-at-a-time reads otherwise — spec.md §4.1's three-way capability
// split. It returns io.EOF when the input stream is exhausted.
func (s *Session) ReadLine() (string, error) {
	switch s.Capability() {
	case terminal.Supported:
		return s.readLineSupported()
	case terminal.Unsupported:
		return s.readLineUnsupported()
	default:
		return s.readLineNoTTY()
	}
}

// readLineSupported runs the full raw-mode editing loop: decode a
// batch of key events, apply them to the buffer, redraw, repeat.
func (s *Session) readLineSupported() (string, error) {
	s.Clear()

	restore, err := s.tty.EnterRaw()
	if err != nil {
		return "", err
	}
	defer restore()

	dec := keys.NewDecoder(s.inputReader(), s.tty.KeyAvailable)

	if s.measure == nil {
		if live, ok := s.liveMeasurer(); ok {
			s.measure = live
			defer func() { s.measure = nil }()
		}
	}

	if err := s.tty.WriteString(s.prompt); err != nil {
		return "", err
	}
	if err := s.redraw(); err != nil {
		return "", err
	}

	for {
		events, err := dec.ReadBatch()
		if err != nil {
			if err == io.EOF {
				if err := s.tty.WriteString("\r\n"); err != nil {
					return "", err
				}
				return "", io.EOF
			}
			return "", err
		}

		terminated := false
		for _, ev := range events {
			if s.processEvent(ev) == outcomeSubmit {
				terminated = true
				break
			}
		}
		if terminated {
			return s.finishLine()
		}

		if err := s.redraw(); err != nil {
			return "", err
		}
	}
}

// liveMeasurer builds a graph.Measurer backed by QueryCursorPosition,
// implementing spec.md §4.2's defining technique directly: read the
// cursor column before writing a cluster, write it, read the column
// again, and take the difference. It probes the terminal once before
// committing to this strategy — a terminal that never answers ESC[6n
// (or answers too slowly for KeyAvailable's poll to have buffered the
// reply) gets ok=false, and the caller falls back to the width-table
// estimate in graph.WidthCache, per spec.md §7 category 5.
func (s *Session) liveMeasurer() (graph.Measurer, bool) {
	r := s.inputReader()
	if _, _, ok := s.tty.QueryCursorPosition(r); !ok {
		return nil, false
	}
	measure := func(cluster []byte) (width int, ok bool) {
		_, x0, ok := s.tty.QueryCursorPosition(r)
		if !ok {
			return 0, false
		}
		if err := s.tty.WriteString(string(cluster)); err != nil {
			return 0, false
		}
		_, x1, ok := s.tty.QueryCursorPosition(r)
		if !ok {
			return 0, false
		}
		width = x1 - x0
		if width < 1 {
			width = 1
		}
		return width, true
	}
	return measure, true
}

// finishLine implements spec.md §4.7's terminating sequence: move the
// cursor to the end of the buffer, drop any pending suggestion, redraw
// once more, then append to history and return.
func (s *Session) finishLine() (string, error) {
	s.posn = s.current.LengthChars()
	s.suggestions.Clear()
	if err := s.redraw(); err != nil {
		return "", err
	}
	if err := s.tty.WriteString("\r\n"); err != nil {
		return "", err
	}
	result := s.current.String()
	if result != "" {
		s.history.Add(result)
	}
	return result, nil
}

// redraw renders the current buffer and repositions the cursor,
// reconciling against the previously drawn frame's line count —
// spec.md §4.5.
func (s *Session) redraw() error {
	sel := render.Selection{}
	if s.mode == ModeSelection && s.sposn >= 0 {
		start, end := s.selectionRange()
		sel = render.Selection{Active: true, Start: s.current.Locate(start), End: s.current.Locate(end)}
	}

	suggestion := ""
	if s.posn == s.current.LengthChars() {
		suggestion = s.currentSuggestion()
	}

	result := render.Render(render.Input{
		Buffer:     s.current.Bytes(),
		Tokenizer:  s.tokenizer,
		Colors:     s.colors,
		Selection:  sel,
		Suggestion: suggestion,
	})
	if result.Misbehaved && !s.tokenizerWarned {
		fmt.Fprintln(os.Stderr, "lineedit: tokenizer made no progress; syntax coloring disabled for this redraw")
		s.tokenizerWarned = true
	}

	newNlines := s.current.CountLines()
	if err := render.ChangeHeight(s.tty, s.nlines, newNlines, s.vpos); err != nil {
		return err
	}

	xpos, ypos := s.current.DisplayCoordinates(s.posn, s.split, s.widthCache, s.measure)
	if err := render.Redraw(s.tty, s.prompt, s.continuationPrompt, result.Styled, xpos, ypos, newNlines, s.vpos, s.split, s.widthCache, s.measure); err != nil {
		return err
	}

	s.nlines = newNlines
	s.vpos = ypos
	return nil
}

// readLineUnsupported handles a TTY whose type is known not to
// support cursor-movement escapes: the terminal's own canonical mode
// does the line editing, and we just read whatever it hands back a
// line at a time, trimming stray control bytes — spec.md §4.8 fallback
// path 2.
func (s *Session) readLineUnsupported() (string, error) {
	if err := s.tty.WriteString(s.prompt); err != nil {
		return "", err
	}

	r := s.inputReader()
	var out bytes.Buffer
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if out.Len() == 0 {
					return "", io.EOF
				}
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		if b == '\r' {
			continue
		}
		if b < 0x20 && b != '\t' {
			continue
		}
		out.WriteByte(b)
	}

	line := out.String()
	if line != "" {
		s.history.Add(line)
	}
	return line, nil
}

// readLineNoTTY handles a non-interactive input stream (a pipe or
// redirected file): a blocking byte-at-a-time read until a newline or
// EOF, with no prompt, no echo, and no editing — spec.md §4.8 fallback
// path 1.
func (s *Session) readLineNoTTY() (string, error) {
	r := s.inputReader()
	var out bytes.Buffer
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if out.Len() == 0 {
					return "", io.EOF
				}
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		out.WriteByte(b)
	}

	line := strings.TrimSuffix(out.String(), "\r")
	if line != "" {
		s.history.Add(line)
	}
	return line, nil
}
