package lineedit

import (
	"testing"

	"github.com/ember-lang/lineedit/render"
	"github.com/stretchr/testify/assert"
)

func TestRegenerateSuggestionsOnlyAtBufferEnd(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetCompleter(func(input []byte, out render.Suggestions) {
		out.Add("int")
	})
	s.current.AppendString("pr")
	s.posn = 1
	s.regenerateSuggestions()
	assert.Equal(t, 0, s.suggestions.Count())

	s.posn = 2
	s.regenerateSuggestions()
	assert.Equal(t, 1, s.suggestions.Count())
	assert.Equal(t, "int", s.currentSuggestion())
}

func TestCycleSuggestionWraps(t *testing.T) {
	s, _ := newTestSession(t)
	s.suggestions.Add("b")
	s.suggestions.Add("a")
	assert.Equal(t, "a", s.currentSuggestion())

	s.cycleSuggestion()
	assert.Equal(t, "b", s.currentSuggestion())

	s.cycleSuggestion()
	assert.Equal(t, "a", s.currentSuggestion())
}

func TestAcceptSuggestionInsertsRemainderAndAdvances(t *testing.T) {
	s, _ := newTestSession(t)
	s.current.AppendString("pr")
	s.posn = 2
	s.suggestions.Add("int")

	ok := s.acceptSuggestion()
	assert.True(t, ok)
	assert.Equal(t, "print", s.current.String())
	assert.Equal(t, 5, s.posn)
	assert.Equal(t, 0, s.suggestions.Count())
}

func TestAcceptSuggestionNoopWhenEmpty(t *testing.T) {
	s, _ := newTestSession(t)
	assert.False(t, s.acceptSuggestion())
}
