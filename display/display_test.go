package display

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyledPlainWhenNotCapable(t *testing.T) {
	var buf bytes.Buffer
	style := lipgloss.NewStyle().Bold(true)
	require.NoError(t, Styled(&buf, "hello", style, false))
	assert.Equal(t, "hello", buf.String())
}

func TestStyledWrapsWhenCapable(t *testing.T) {
	var buf bytes.Buffer
	style := lipgloss.NewStyle().Bold(true)
	require.NoError(t, Styled(&buf, "hello", style, true))
	assert.Equal(t, style.Render("hello"), buf.String())
	assert.NotEqual(t, "hello", buf.String())
}

func TestSyntaxColoredConcatenatesSpans(t *testing.T) {
	var buf bytes.Buffer
	spans := []Span{
		{Text: "foo", Style: lipgloss.NewStyle()},
		{Text: "bar", Style: lipgloss.NewStyle()},
	}
	require.NoError(t, SyntaxColored(&buf, spans, false))
	assert.Equal(t, "foobar", buf.String())
}

func TestLineAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Line(&buf, "status", lipgloss.NewStyle(), false))
	assert.Equal(t, "status\n", buf.String())
}
