package render

// Token describes one lexical unit returned by a Tokenizer, addressed
// as a byte range into the buffer being rendered (spec.md §3's
// (type, start, length), with Go slice indices standing in for the
// C pointer).
type Token struct {
	Type   int
	Start  int
	Length int
}

// Tokenizer is the syntax-coloring contract consumed by the rendering
// pipeline (spec.md §6). It is called repeatedly with the full input
// and the byte offset to resume scanning from, returning the next
// token and true, or ok=false when there are no more tokens. The
// concrete token vocabulary belongs to the embedded language's
// compiler front end, not this package — Tokenizer is purely a
// function-plus-closure capability object (Design Notes §9), so the
// "ref" context parameter of the original C callback is simply
// whatever the closure captures.
type Tokenizer func(input []byte, pos int) (tok Token, ok bool)

// Completer is called with what the user has typed so far; it adds
// zero or more candidates to out via out.Add. Only the remaining
// characters (after the already-typed prefix) should be added, per
// spec.md §4.9's add_suggestion contract.
type Completer func(input []byte, out Suggestions)

// Suggestions is the narrow interface the Completer writes into.
// buffer.List, the session's suggestion list, implements it.
type Suggestions interface {
	Add(remainder string)
}

// MultilineFunc decides whether Return should continue editing
// (insert a newline) instead of ending the session, per spec.md §4.7.
type MultilineFunc func(input []byte) bool
