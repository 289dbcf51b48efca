package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParenDepth(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"foo", 0},
		{"f(", 1},
		{"f()", 0},
		{"f(x, (y", 2},
		{"f(x))", 0},
		{")))", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parenDepth([]byte(tc.input)), "input=%q", tc.input)
	}
}

func TestNewRootCmdDefaults(t *testing.T) {
	cmd := newRootCmd()
	prompt, err := cmd.Flags().GetString("prompt")
	assert.NoError(t, err)
	assert.Equal(t, "> ", prompt)

	multiline, err := cmd.Flags().GetBool("multiline-parens")
	assert.NoError(t, err)
	assert.False(t, multiline)
}
