package lineedit

import (
	"testing"

	"github.com/ember-lang/lineedit/buffer"
	"github.com/ember-lang/lineedit/faketerm"
	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/keys"
	"github.com/ember-lang/lineedit/render"
	"github.com/ember-lang/lineedit/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession builds a Session wired to a pipe-backed FakeTerminal,
// so the interactive state machine can be driven without a real TTY.
func newTestSession(t *testing.T) (*Session, *faketerm.FakeTerminal) {
	t.Helper()
	ft := faketerm.New()
	t.Cleanup(func() { _ = ft.Close() })
	return &Session{
		tty:         ft.TTY,
		env:         terminal.OSEnvironment{},
		sposn:       -1,
		current:     buffer.New(),
		history:     buffer.NewList(),
		suggestions: buffer.NewList(),
		split:       graph.DefaultSplitter,
		widthCache:  graph.NewWidthCache(),
	}, ft
}

func char(r rune) keys.Event {
	return keys.Event{Kind: keys.Character, Rune: r, Bytes: []byte(string(r))}
}

func ctrl(letter byte) keys.Event {
	return keys.Event{Kind: keys.CtrlKey, Ctrl: letter}
}

func kind(k keys.Kind) keys.Event {
	return keys.Event{Kind: k}
}

// driveLine feeds events through the session's state machine exactly
// as readLineSupported's loop does, returning the submitted line.
func driveLine(t *testing.T, s *Session, events []keys.Event) string {
	t.Helper()
	for _, ev := range events {
		if s.processEvent(ev) == outcomeSubmit {
			line, err := s.finishLine()
			require.NoError(t, err)
			return line
		}
		require.NoError(t, s.redraw())
	}
	t.Fatal("events did not terminate the line")
	return ""
}

func TestScenarioS1SimpleLine(t *testing.T) {
	s, _ := newTestSession(t)
	result := driveLine(t, s, []keys.Event{
		char('h'), char('e'), char('l'), char('l'), char('o'), kind(keys.Return),
	})
	assert.Equal(t, "hello", result)
	assert.Equal(t, 1, s.history.Count())
	assert.Equal(t, "hello", s.current.String())
}

func TestScenarioS2InsertMidLine(t *testing.T) {
	s, _ := newTestSession(t)
	events := []keys.Event{
		char('a'), char('b'), char('c'),
		kind(keys.Left), kind(keys.Left),
		char('X'),
		kind(keys.Return),
	}
	var posnAtReturn int
	for _, ev := range events {
		if s.processEvent(ev) == outcomeSubmit {
			posnAtReturn = s.posn
			result, err := s.finishLine()
			require.NoError(t, err)
			assert.Equal(t, "aXbc", result)
			break
		}
	}
	assert.Equal(t, 2, posnAtReturn)
}

func TestScenarioS3SelectionDelete(t *testing.T) {
	s, _ := newTestSession(t)
	result := driveLine(t, s, []keys.Event{
		char('a'), char('b'), char('c'),
		kind(keys.ShiftLeft), kind(keys.ShiftLeft),
		kind(keys.Delete),
		kind(keys.Return),
	})
	assert.Equal(t, "a", result)
	assert.Equal(t, ModeDefault, s.mode)
	assert.Equal(t, -1, s.sposn)
	assert.Equal(t, 1, s.posn)
}

func TestScenarioS4Multiline(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetMultiline(func(input []byte) bool {
		depth := 0
		for _, b := range input {
			if b == '(' {
				depth++
			} else if b == ')' {
				depth--
			}
		}
		return depth > 0
	})
	result := driveLine(t, s, []keys.Event{
		char('f'), char('('),
		kind(keys.Return),
		char('x'), char(')'),
		kind(keys.Return),
	})
	assert.Equal(t, "f(\nx)", result)
	assert.Equal(t, 1, s.current.CountLines())
}

func TestScenarioS5CompletionAccept(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetCompleter(func(input []byte, out render.Suggestions) {
		if string(input) == "p" {
			out.Add("rint")
		}
	})
	result := driveLine(t, s, []keys.Event{
		char('p'), kind(keys.Tab), kind(keys.Return),
	})
	assert.Equal(t, "print", result)
	assert.Equal(t, 5, len([]rune(result)))
}

func TestScenarioS6CopyPaste(t *testing.T) {
	s, _ := newTestSession(t)
	result := driveLine(t, s, []keys.Event{
		char('a'), char('b'), char('c'),
		kind(keys.ShiftLeft), kind(keys.ShiftLeft), kind(keys.ShiftLeft),
		ctrl('C'),
		kind(keys.Right),
		ctrl('V'),
		kind(keys.Return),
	})
	assert.Equal(t, []byte("abc"), s.clipboard)
	assert.Equal(t, "abcabc", result)
}

func TestHistoryNavigationRestoresInProgressLine(t *testing.T) {
	s, _ := newTestSession(t)
	s.history.Add("first")
	require.NoError(t, s.processAndRedraw(char('x')))
	require.NoError(t, s.processAndRedraw(kind(keys.Up)))
	assert.Equal(t, "first", s.current.String())
	require.NoError(t, s.processAndRedraw(kind(keys.Down)))
	assert.Equal(t, "x", s.current.String())
}

func TestCtrlGAbortsReturningEmpty(t *testing.T) {
	s, _ := newTestSession(t)
	result := driveLine(t, s, []keys.Event{
		char('a'), char('b'), ctrl('G'),
	})
	assert.Equal(t, "", result)
	assert.Equal(t, 0, s.history.Count())
}

// processAndRedraw is a test-only convenience wrapping processEvent +
// redraw, mirroring one iteration of readLineSupported's loop.
func (s *Session) processAndRedraw(ev keys.Event) error {
	s.processEvent(ev)
	return s.redraw()
}
