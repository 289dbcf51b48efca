package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnsupportedTerm(t *testing.T) {
	cases := []struct {
		term string
		want bool
	}{
		{"", true},
		{"dumb", true},
		{"DUMB", true},
		{"cons25", true},
		{"emacs", true},
		{"xterm-256color", false},
		{"screen", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsUnsupportedTerm(tc.term), "term=%q", tc.term)
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, NotATTY, Detect(false, MapEnvironment{"TERM": "xterm-256color"}))
	assert.Equal(t, Unsupported, Detect(true, MapEnvironment{"TERM": "dumb"}))
	assert.Equal(t, Unsupported, Detect(true, MapEnvironment{}))
	assert.Equal(t, Supported, Detect(true, MapEnvironment{"TERM": "xterm-256color"}))
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "NotATTY", NotATTY.String())
	assert.Equal(t, "Unsupported", Unsupported.String())
	assert.Equal(t, "Supported", Supported.String())
	assert.Equal(t, "Unknown", Capability(99).String())
}

func TestMapEnvironmentGetenv(t *testing.T) {
	env := MapEnvironment{"TERM": "xterm"}
	assert.Equal(t, "xterm", env.Getenv("TERM"))
	assert.Equal(t, "", env.Getenv("MISSING"))
}
