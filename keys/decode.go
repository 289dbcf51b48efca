package keys

import (
	"bufio"

	"github.com/ember-lang/lineedit/graph"
)

// maxEscapeSeq bounds how many bytes an unrecognized escape sequence
// can grow to before the decoder gives up and reports Unknown,
// preventing a runaway read on garbled input.
const maxEscapeSeq = 16

// Decoder assembles raw bytes read in terminal raw mode into Events:
// UTF-8 characters, ANSI escape sequences (arrows, shift-arrows), and
// control chords, per spec.md §4.6.
type Decoder struct {
	r         *bufio.Reader
	available func() bool
}

// NewDecoder wraps r. available, if non-nil, is the terminal's
// non-blocking key-ready predicate, used by ReadBatch to drain pasted
// input in one pass.
func NewDecoder(r *bufio.Reader, available func() bool) *Decoder {
	return &Decoder{r: r, available: available}
}

// Next blocks for and decodes exactly one Event.
func (d *Decoder) Next() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == 9:
		return Event{Kind: Tab}, nil
	case b == 13:
		return Event{Kind: Return}, nil
	case b == 127:
		return Event{Kind: Delete}, nil
	case b == 27:
		return d.decodeEscape()
	case b >= 1 && b <= 26:
		return Event{Kind: CtrlKey, Ctrl: 'A' + b - 1}, nil
	default:
		return d.decodeCharacter(b)
	}
}

// ReadBatch blocks for the first event, then greedily decodes
// further events already buffered in the input stream (per the
// terminal's non-blocking readiness check), so a single read_line
// iteration absorbs an entire pasted line instead of rendering once
// per byte (spec.md §4.6).
func (d *Decoder) ReadBatch() ([]Event, error) {
	first, err := d.Next()
	if err != nil {
		return nil, err
	}
	batch := []Event{first}
	for d.available != nil && d.available() {
		ev, err := d.Next()
		if err != nil {
			break
		}
		batch = append(batch, ev)
	}
	return batch, nil
}

func (d *Decoder) decodeCharacter(lead byte) (Event, error) {
	n := graph.ByteCount(lead)
	if n <= 0 {
		n = 1
	}
	buf := make([]byte, n)
	buf[0] = lead
	for i := 1; i < n; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			r, _ := graph.Decode(buf[:1])
			return Event{Kind: Character, Rune: r, Bytes: buf[:1]}, nil
		}
		buf[i] = b
	}
	r, _ := graph.Decode(buf)
	return Event{Kind: Character, Rune: r, Bytes: buf}, nil
}

func (d *Decoder) decodeEscape() (Event, error) {
	second, err := d.r.ReadByte()
	if err != nil {
		return Event{Kind: Unknown}, nil
	}
	if second != '[' {
		return Event{Kind: Unknown}, nil
	}

	var params []byte
	for len(params) < maxEscapeSeq {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{Kind: Unknown}, nil
		}
		if isFinalCSIByte(b) {
			return csiEvent(string(params), b), nil
		}
		params = append(params, b)
	}
	return Event{Kind: Unknown}, nil
}

func isFinalCSIByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// csiEvent maps a parsed CSI sequence's parameter bytes and final
// byte to an Event, per spec.md §4.6: non-digit second byte selects
// plain arrow keys; "1;2" selects the shift variant for Left/Right
// (shift Up/Down are not part of this spec).
func csiEvent(params string, final byte) Event {
	switch final {
	case 'A':
		return Event{Kind: Up}
	case 'B':
		return Event{Kind: Down}
	case 'C':
		if params == "1;2" {
			return Event{Kind: ShiftRight}
		}
		return Event{Kind: Right}
	case 'D':
		if params == "1;2" {
			return Event{Kind: ShiftLeft}
		}
		return Event{Kind: Left}
	case 'H':
		return Event{Kind: Home}
	case 'F':
		return Event{Kind: End}
	case '~':
		switch params {
		case "1":
			return Event{Kind: Home}
		case "4":
			return Event{Kind: End}
		case "3":
			return Event{Kind: Delete}
		}
		return Event{Kind: Unknown}
	default:
		return Event{Kind: Unknown}
	}
}
