// Package lineedit implements the interactive line editor that fronts
// an embedded scripting language's REPL and debugger console: raw
// terminal input, history, tab completion, multiline continuation,
// syntax-colored rendering, and text selection with a clipboard.
//
// # Architecture
//
// lineedit is built from focused, independently testable packages:
//
//   - github.com/ember-lang/lineedit/terminal - raw-mode TTY control & ANSI primitives
//   - github.com/ember-lang/lineedit/graph    - UTF-8 decoding & grapheme width measurement
//   - github.com/ember-lang/lineedit/buffer   - character-indexed text buffer & ordered lists
//   - github.com/ember-lang/lineedit/render   - tokenizer-driven styled rendering & redraw
//   - github.com/ember-lang/lineedit/keys     - raw byte -> key event decoding
//   - github.com/ember-lang/lineedit/display  - out-of-band styled output helpers
//
// The root package wires them into a single Session, the public
// contract embedders use.
//
// # Quick start
//
//	s := lineedit.New()
//	s.SetPrompt("> ")
//	line, err := s.ReadLine()
//	if err != nil {
//		// io.EOF on a closed input stream
//	}
//
// # Callbacks
//
// Syntax highlighting, tab completion, and multiline continuation are
// supplied by the embedder as plain functions; the editor never
// assumes a particular language grammar. See SetTokenizer,
// SetCompleter, and SetMultiline.
package lineedit

// Mode is the editor's current interaction mode.
type Mode int

// Mode constants, per spec.md §3.
const (
	// ModeDefault is ordinary character-at-a-time editing.
	ModeDefault Mode = iota
	// ModeSelection is active while a Shift-arrow selection is being
	// extended.
	ModeSelection
	// ModeHistory is active while Up/Down are paging through history.
	ModeHistory
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "Default"
	case ModeSelection:
		return "Selection"
	case ModeHistory:
		return "History"
	default:
		return "Unknown"
	}
}
