package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlainNoTokenizer(t *testing.T) {
	result := Render(Input{Buffer: []byte("hello")})
	assert.Contains(t, string(result.Styled), "hello")
	assert.False(t, result.Misbehaved)
}

func TestRenderEveryEmphasisFollowedByReset(t *testing.T) {
	tok := func(input []byte, pos int) (Token, bool) {
		if pos >= len(input) {
			return Token{}, false
		}
		return Token{Type: 0, Start: pos, Length: 1}, true
	}
	cm := NewColorMap([]ColorEntry{{Type: 0, Color: Red}})
	result := Render(Input{
		Buffer:    []byte("ab"),
		Tokenizer: tok,
		Colors:    cm,
		Selection: Selection{Active: true, Start: 0, End: 1},
	})
	s := string(result.Styled)
	// Every Reverse-video escape must be matched by a reset before EOL.
	opens := strings.Count(s, "\033[7m")
	resets := strings.Count(s, "\033[0m")
	assert.GreaterOrEqual(t, resets, opens)
}

func TestRenderMisbehavingTokenizerStopsLooping(t *testing.T) {
	tok := func(input []byte, pos int) (Token, bool) {
		// Never advances: always returns a zero-length token at 0.
		return Token{Type: 0, Start: 0, Length: 0}, true
	}
	result := Render(Input{Buffer: []byte("abcdef"), Tokenizer: tok})
	assert.Contains(t, string(result.Styled), "abcdef")
}

func TestRenderSuggestionAppendedBold(t *testing.T) {
	result := Render(Input{Buffer: []byte("p"), Suggestion: "rint"})
	s := string(result.Styled)
	assert.Contains(t, s, "\033[1m")
	assert.Contains(t, s, "rint")
}
