package lineedit

import "github.com/ember-lang/lineedit/graph"

// regenerateSuggestions asks the completer for fresh candidates
// whenever the buffer changes and the cursor sits at its end —
// suggestions only make sense as a continuation of what's already
// typed, per spec.md §4.9's add_suggestion contract ("only the
// remaining characters after the already-typed prefix"). Anywhere else
// in the buffer, suggestions are cleared: there is nothing meaningful
// to append mid-line.
func (s *Session) regenerateSuggestions() {
	s.suggestions.Clear()
	if s.completer == nil {
		return
	}
	if s.posn != s.current.LengthChars() {
		return
	}
	s.completer(s.current.Bytes(), s.suggestions)
	s.suggestions.SetPosn(0)
}

// currentSuggestion returns the remainder text of the suggestion
// currently selected for inline display, or "" if there are none.
func (s *Session) currentSuggestion() string {
	text, ok := s.suggestions.At(s.suggestions.Posn())
	if !ok {
		return ""
	}
	return text
}

// cycleSuggestion advances to the next candidate, wrapping around,
// invoked on Down while suggestions are pending.
func (s *Session) cycleSuggestion() {
	n := s.suggestions.Count()
	if n == 0 {
		return
	}
	s.suggestions.SetPosn((s.suggestions.Posn() + 1) % n)
}

// acceptSuggestion inserts the currently displayed suggestion's
// remainder at the cursor and advances past it, invoked when Tab is
// pressed while suggestions are pending.
func (s *Session) acceptSuggestion() bool {
	remainder := s.currentSuggestion()
	if remainder == "" {
		return false
	}
	s.current.InsertString(s.posn, remainder)
	s.posn += graph.Count([]byte(remainder))
	s.suggestions.Clear()
	return true
}
