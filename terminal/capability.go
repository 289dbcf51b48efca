package terminal

import "strings"

// Capability classifies what kind of input/output channel ReadLine is
// dealing with, per spec.md §4.1.
type Capability int

const (
	// NotATTY means stdin is a pipe or file: no editing, line-at-a-time
	// reads only.
	NotATTY Capability = iota
	// Unsupported means stdin is a TTY but the terminal type is known
	// to not handle cursor-movement escapes (or TERM is unset).
	Unsupported
	// Supported means full raw-mode line editing is available.
	Supported
)

// String renders the capability name, mainly for diagnostics and
// test failure output.
func (c Capability) String() string {
	switch c {
	case NotATTY:
		return "NotATTY"
	case Unsupported:
		return "Unsupported"
	case Supported:
		return "Supported"
	default:
		return "Unknown"
	}
}

// unsupportedTerms lists TERM values known to choke on cursor
// movement and color escapes, matched case-insensitively.
var unsupportedTerms = map[string]bool{
	"dumb":   true,
	"cons25": true,
	"emacs":  true,
}

// IsUnsupportedTerm reports whether term (the value of $TERM) is
// known-unsupported, per spec.md §4.1: "dumb", "cons25", "emacs"
// (case-insensitive) or empty.
func IsUnsupportedTerm(term string) bool {
	if term == "" {
		return true
	}
	return unsupportedTerms[strings.ToLower(term)]
}

// Detect classifies an input stream, given isTTY (whether the stream
// is a terminal) and env to read $TERM.
func Detect(isTTY bool, env EnvironmentProvider) Capability {
	if !isTTY {
		return NotATTY
	}
	if IsUnsupportedTerm(env.Getenv("TERM")) {
		return Unsupported
	}
	return Supported
}
