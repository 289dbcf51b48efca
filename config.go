package lineedit

import (
	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/render"
)

// SetPrompt sets the primary prompt string written at the start of
// every ReadLine call and after every redraw.
func (s *Session) SetPrompt(prompt string) {
	s.prompt = prompt
}

// SetContinuationPrompt sets the prompt written at the start of each
// continuation line of a multiline entry. An empty string (the
// default) writes nothing before continuation lines.
func (s *Session) SetContinuationPrompt(prompt string) {
	s.continuationPrompt = prompt
}

// SetTokenizer installs the syntax-coloring callback and its
// accompanying color map. Passing a nil tokenizer disables syntax
// coloring; the color map is replaced wholesale, matching spec.md §5's
// "freed and replaced on each call" contract.
func (s *Session) SetTokenizer(tokenizer render.Tokenizer, colors []render.ColorEntry) {
	s.tokenizer = tokenizer
	s.colors = render.NewColorMap(colors)
	s.tokenizerWarned = false
}

// SetCompleter installs the tab-completion callback. A nil completer
// disables suggestions.
func (s *Session) SetCompleter(completer render.Completer) {
	s.completer = completer
	s.suggestions.Clear()
}

// SetMultiline installs the callback consulted on Return to decide
// whether the buffer so far needs another line before it's a complete
// entry (unbalanced parentheses, a trailing continuation token, and so
// on). A nil multiline function (the default) means every Return ends
// the session.
func (s *Session) SetMultiline(fn render.MultilineFunc) {
	s.multiline = fn
}

// SetGraphemeSplitter overrides the grapheme-cluster boundary
// algorithm used for cursor movement and width accounting. Passing nil
// restores graph.DefaultSplitter.
func (s *Session) SetGraphemeSplitter(split graph.Splitter) {
	if split == nil {
		split = graph.DefaultSplitter
	}
	s.split = split
}

// SetWidthMeasurer overrides how a multi-byte grapheme cluster's
// on-screen width is determined. Most callers don't need this:
// readLineSupported installs a live cursor-position-diffing measurer
// on its own for each call once the TTY is in raw mode, probing with
// QueryCursorPosition and falling back silently to the library
// estimate in graph.WidthCache.Width if the terminal doesn't answer.
// Calling SetWidthMeasurer with a non-nil measure before ReadLine opts
// out of that probe and pins measure instead; passing nil re-enables
// the automatic probe on the next ReadLine call.
func (s *Session) SetWidthMeasurer(measure graph.Measurer) {
	s.measure = measure
}

// History returns a copy of the stored history lines, most recent
// first.
func (s *Session) History() []string {
	return s.history.Items()
}

// AddHistory appends line to the history list, most-recent-first.
// ReadLine does this automatically for every completed entry; embedders
// only need it to seed history loaded from a file.
func (s *Session) AddHistory(line string) {
	s.history.Add(line)
}

// ClearHistory empties the history list.
func (s *Session) ClearHistory() {
	s.history.Clear()
}
