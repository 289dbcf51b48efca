package lineedit

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ember-lang/lineedit/display"
	"github.com/ember-lang/lineedit/terminal"
)

// DisplayStyled writes text to the session's output stream wrapped in
// style, degrading to plain text when the output isn't a capable
// terminal.
func (s *Session) DisplayStyled(text string, style lipgloss.Style) error {
	return display.Line(s.tty.Out, text, style, s.Capability() == terminal.Supported)
}

// DisplaySyntaxColored writes spans to the session's output stream,
// each rendered with its own style, degrading to plain concatenated
// text when the output isn't a capable terminal.
func (s *Session) DisplaySyntaxColored(spans []display.Span) error {
	return display.SyntaxColored(s.tty.Out, spans, s.Capability() == terminal.Supported)
}
