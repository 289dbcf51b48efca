// Package display provides the out-of-band styled-output helpers
// ReadLine itself never needs: a REPL that wants to print a colored
// banner, a syntax-highlighted result value, or an error in red
// between ReadLine calls uses this package rather than hand-rolling
// ANSI escapes, per SPEC_FULL.md §4.10. Unlike the render package,
// nothing here sits on ReadLine's hot redraw path, so it can afford
// github.com/charmbracelet/lipgloss's heavier styling model.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Span is one styled run of text, the unit SyntaxColored composes a
// line from.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Styled writes text to w wrapped in style, or plain if capable is
// false — callers pass the same capability check ReadLine used for the
// input stream, since there is rarely a reason to color output toward
// a terminal ReadLine itself would refuse to draw into.
func Styled(w io.Writer, text string, style lipgloss.Style, capable bool) error {
	if !capable {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := io.WriteString(w, style.Render(text))
	return err
}

// SyntaxColored writes spans to w in sequence, each rendered with its
// own style, or as plain concatenated text if capable is false.
func SyntaxColored(w io.Writer, spans []Span, capable bool) error {
	for _, sp := range spans {
		if err := Styled(w, sp.Text, sp.Style, capable); err != nil {
			return err
		}
	}
	return nil
}

// Line is Styled followed by a newline, the common case for banners
// and status messages.
func Line(w io.Writer, text string, style lipgloss.Style, capable bool) error {
	if err := Styled(w, text, style, capable); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
