package lineedit

import (
	"bufio"

	"github.com/ember-lang/lineedit/buffer"
	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/render"
	"github.com/ember-lang/lineedit/terminal"
)

// Session holds everything one interactive line-editing conversation
// needs: the terminal it owns, the buffer being edited, history,
// completion state, and the embedder-supplied capability callbacks.
// A Session is not safe for concurrent use — it represents a single
// REPL's single line of input at a time, per spec.md §5.
type Session struct {
	tty *terminal.TTY
	env terminal.EnvironmentProvider

	mode  Mode
	posn  int // cursor position, in characters
	sposn int // selection anchor, in characters; -1 when mode != ModeSelection

	prompt             string
	continuationPrompt string

	current   *buffer.Editable
	clipboard []byte

	history   *buffer.List
	savedLine string // buffer content stashed when ModeHistory is entered

	suggestions *buffer.List

	colors    *render.ColorMap
	tokenizer render.Tokenizer
	completer render.Completer
	multiline render.MultilineFunc
	split     graph.Splitter
	measure   graph.Measurer

	widthCache      *graph.WidthCache
	tokenizerWarned bool

	// reader is shared across ReadLine calls so bytes the previous call's
	// bufio.Reader pulled ahead from the input stream (but didn't
	// consume) aren't lost to a freshly constructed one.
	reader *bufio.Reader

	// vpos/nlines track the rendered frame's shape across redraws so
	// ChangeHeight and Redraw can reconcile against the previous frame
	// instead of the whole scrollback, per spec.md §4.5.
	vpos   int
	nlines int
}

// New returns a Session bound to the process's standard input and
// output, with an empty buffer, no history, and no callbacks
// configured. Callers typically follow New with SetPrompt and
// whichever SetTokenizer/SetCompleter/SetMultiline calls their
// embedded language needs before calling ReadLine.
func New() *Session {
	return &Session{
		tty:         terminal.New(),
		env:         terminal.OSEnvironment{},
		sposn:       -1,
		current:     buffer.New(),
		history:     buffer.NewList(),
		suggestions: buffer.NewList(),
		split:       graph.DefaultSplitter,
		widthCache:  graph.NewWidthCache(),
	}
}

// Clear resets the editing buffer, cursor, and selection to a fresh
// empty line, without touching history, suggestions, or configured
// callbacks.
func (s *Session) Clear() {
	s.current.Clear()
	s.posn = 0
	s.sposn = -1
	s.mode = ModeDefault
	s.suggestions.Clear()
	s.vpos = 0
	s.nlines = 0
}

// IsTTY reports whether the session's input stream is a terminal.
func (s *Session) IsTTY() bool {
	return s.tty.IsTTY()
}

// TerminalWidth returns the terminal's current column count, or the
// spec's 80-column fallback when it can't be determined.
func (s *Session) TerminalWidth() int {
	return s.tty.Width()
}

// inputReader returns the session's persistent buffered reader over
// its input stream, creating it on first use.
func (s *Session) inputReader() *bufio.Reader {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.tty.In)
	}
	return s.reader
}

// Capability reports how ReadLine will behave for the current input
// stream: full raw-mode editing, a line-at-a-time fallback for an
// unsupported terminal type, or a line-at-a-time fallback because
// stdin isn't a terminal at all (spec.md §4.1).
func (s *Session) Capability() terminal.Capability {
	return terminal.Detect(s.tty.IsTTY(), s.env)
}
