package lineedit

import (
	"testing"

	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/render"
	"github.com/stretchr/testify/assert"
)

func TestSetPromptAndContinuationPrompt(t *testing.T) {
	s, _ := newTestSession(t)

	s.SetPrompt(">>> ")
	s.SetContinuationPrompt("... ")
	assert.Equal(t, ">>> ", s.prompt)
	assert.Equal(t, "... ", s.continuationPrompt)
}

func TestSetTokenizerReplacesColorsAndResetsWarning(t *testing.T) {
	s, _ := newTestSession(t)

	s.tokenizerWarned = true
	s.SetTokenizer(func(input []byte, pos int) (render.Token, bool) {
		return render.Token{}, false
	}, []render.ColorEntry{{Type: 1, Color: render.Red}})

	assert.NotNil(t, s.tokenizer)
	assert.False(t, s.tokenizerWarned)
	_, ok := s.colors.Lookup(1)
	assert.True(t, ok)
}

func TestSetCompleterClearsSuggestions(t *testing.T) {
	s, _ := newTestSession(t)

	s.suggestions.Add("rint")
	assert.Equal(t, 1, s.suggestions.Count())

	s.SetCompleter(func(input []byte, out render.Suggestions) {})
	assert.Equal(t, 0, s.suggestions.Count())
}

func TestSetGraphemeSplitterNilRestoresDefault(t *testing.T) {
	s, _ := newTestSession(t)

	custom := func(b []byte, max int) int { return 1 }
	s.SetGraphemeSplitter(custom)
	assert.Equal(t, 1, s.split([]byte("hello"), 5))

	s.SetGraphemeSplitter(nil)
	assert.Equal(t, graph.DefaultSplitter([]byte("hello"), 5), s.split([]byte("hello"), 5))
}

func TestHistoryAddAndClear(t *testing.T) {
	s, _ := newTestSession(t)

	s.AddHistory("one")
	s.AddHistory("two")
	assert.Equal(t, []string{"two", "one"}, s.History())

	s.ClearHistory()
	assert.Empty(t, s.History())
}
