package lineedit

import (
	"github.com/ember-lang/lineedit/graph"
	"github.com/ember-lang/lineedit/keys"
)

// outcome is what processing one key event means for the read_line
// loop driving the Session: either keep editing, or the line is done.
type outcome int

const (
	outcomeContinue outcome = iota
	outcomeSubmit
)

// processEvent applies one decoded key event to the session's buffer,
// cursor, and mode, per spec.md §4.7's transition table.
func (s *Session) processEvent(ev keys.Event) outcome {
	switch ev.Kind {
	case keys.Character:
		s.collapseSelection()
		s.leaveHistory()
		s.current.Insert(s.posn, ev.Bytes)
		s.posn++
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.Delete:
		s.leaveHistory()
		if s.mode == ModeSelection {
			s.deleteSelection()
			return outcomeContinue
		}
		s.collapseSelection()
		if s.posn == 0 {
			return outcomeContinue
		}
		prev := s.graphemeCharsBefore(s.posn)
		s.current.Delete(s.posn-prev, prev)
		s.posn -= prev
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.Left:
		s.moveLeftCollapsing()
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.Right:
		s.moveRightCollapsing()
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.ShiftLeft:
		s.extendSelection(-1)
		return outcomeContinue

	case keys.ShiftRight:
		s.extendSelection(1)
		return outcomeContinue

	case keys.Home:
		s.collapseSelection()
		_, y := s.current.Coordinates(s.posn)
		s.posn = s.current.FindPosition(0, y)
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.End:
		s.collapseSelection()
		_, y := s.current.Coordinates(s.posn)
		s.posn = s.current.FindPosition(-1, y)
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.Up:
		s.collapseSelection()
		if s.mode != ModeHistory {
			_, y := s.current.Coordinates(s.posn)
			if y > 0 {
				s.moveVertical(-1)
				s.regenerateSuggestions()
				return outcomeContinue
			}
		}
		s.historyUp()
		return outcomeContinue

	case keys.Down:
		s.collapseSelection()
		if s.mode == ModeHistory {
			s.historyDown()
			return outcomeContinue
		}
		if s.suggestions.Count() > 0 {
			s.cycleSuggestion()
			return outcomeContinue
		}
		s.moveVertical(1)
		s.regenerateSuggestions()
		return outcomeContinue

	case keys.Return:
		if s.multiline != nil && s.multiline(s.current.Bytes()) {
			s.collapseSelection()
			s.leaveHistory()
			s.current.InsertString(s.posn, "\n")
			s.posn++
			s.regenerateSuggestions()
			return outcomeContinue
		}
		return outcomeSubmit

	case keys.Tab:
		s.collapseSelection()
		if s.suggestions.Count() > 0 {
			s.acceptSuggestion()
		} else {
			s.current.InsertString(s.posn, "\t")
			s.posn++
		}
		return outcomeContinue

	case keys.CtrlKey:
		return s.processCtrl(ev.Ctrl)

	default:
		return outcomeContinue
	}
}

// processCtrl implements the control chords spec.md §4.7's table lists
// alongside the arrow/shift-arrow entries. Letters the table doesn't
// name are left unhandled.
func (s *Session) processCtrl(letter byte) outcome {
	switch letter {
	case 'A':
		s.collapseSelection()
		_, y := s.current.Coordinates(s.posn)
		s.posn = s.current.FindPosition(0, y)

	case 'B':
		s.moveLeftCollapsing()

	case 'C':
		// Preserves Selection mode, per spec.md §9's open-question
		// resolution: raw mode disables ISIG, so Ctrl-C never reaches the
		// process as SIGINT and is free to mean "copy" here.
		if s.mode == ModeSelection {
			start, end := s.selectionRange()
			off0, off1 := s.current.Locate(start), s.current.Locate(end)
			s.clipboard = append([]byte(nil), s.current.Bytes()[off0:off1]...)
		}

	case 'D':
		s.collapseSelection()
		s.leaveHistory()
		if s.posn < s.current.LengthChars() {
			s.current.Delete(s.posn, 1)
			s.regenerateSuggestions()
		}

	case 'E':
		s.collapseSelection()
		_, y := s.current.Coordinates(s.posn)
		s.posn = s.current.FindPosition(-1, y)

	case 'F':
		s.moveRightCollapsing()

	case 'G':
		s.collapseSelection()
		s.leaveHistory()
		s.current.Clear()
		s.posn = 0
		s.suggestions.Clear()
		return outcomeSubmit

	case 'L':
		s.collapseSelection()
		s.leaveHistory()
		s.current.Clear()
		s.posn = 0
		s.regenerateSuggestions()

	case 'N':
		s.collapseSelection()
		s.moveVertical(1)
		s.regenerateSuggestions()

	case 'P':
		s.collapseSelection()
		s.moveVertical(-1)
		s.regenerateSuggestions()

	case 'V':
		s.collapseSelection()
		s.leaveHistory()
		if len(s.clipboard) > 0 {
			s.current.Insert(s.posn, s.clipboard)
			s.posn += graph.Count(s.clipboard)
			s.regenerateSuggestions()
		}
	}
	return outcomeContinue
}

// collapseSelection exits ModeSelection without discarding the
// buffer, used whenever a non-shift movement or edit happens while a
// selection is active.
func (s *Session) collapseSelection() {
	s.mode = ModeDefault
	s.sposn = -1
}

// deleteSelection removes the selected range and returns to
// ModeDefault, invoked by Delete while a selection is active.
func (s *Session) deleteSelection() {
	start, end := s.selectionRange()
	s.current.Delete(start, end-start)
	s.posn = start
	s.mode = ModeDefault
	s.sposn = -1
	s.regenerateSuggestions()
}

// selectionRange normalizes (sposn, posn) so start <= end.
func (s *Session) selectionRange() (start, end int) {
	if s.sposn <= s.posn {
		return s.sposn, s.posn
	}
	return s.posn, s.sposn
}

// extendSelection grows or shrinks the active selection by one
// grapheme in dir's direction (-1 left, +1 right), entering
// ModeSelection on the first shift-arrow press.
func (s *Session) extendSelection(dir int) {
	s.leaveHistory()
	if s.mode != ModeSelection {
		s.mode = ModeSelection
		s.sposn = s.posn
	}
	if dir < 0 {
		s.moveLeft()
	} else {
		s.moveRight()
	}
	if s.posn == s.sposn {
		s.mode = ModeDefault
		s.sposn = -1
	}
}

// moveVertical moves the cursor to the line dy rows away (dy = -1 for
// up, +1 for down), preserving its character column where the target
// line is long enough and clamping to the target line's end
// otherwise — Ctrl-N/Ctrl-P's "next/previous visual line at same
// column", and Up/Down's line movement within a multiline buffer.
func (s *Session) moveVertical(dy int) {
	x, y := s.current.Coordinates(s.posn)
	newY := y + dy
	if newY < 0 || newY > s.current.CountLines() {
		return
	}
	lineEnd := s.current.FindPosition(-1, newY)
	target := s.current.FindPosition(x, newY)
	if target > lineEnd {
		target = lineEnd
	}
	s.posn = target
}

// graphemeCharsBefore returns how many characters the grapheme cluster
// ending at charIndex spans, so Delete removes a whole cluster — a
// combining accent or ZWJ emoji sequence — in one keystroke instead of
// leaving a mangled remainder.
func (s *Session) graphemeCharsBefore(charIndex int) int {
	data := s.current.Bytes()
	off := s.current.Locate(charIndex)
	start := graph.PrevGraphemeStart(data, off, s.split)
	return graph.Count(data[start:off])
}

// moveLeftCollapsing moves the cursor one grapheme left, or — if a
// selection is active — collapses it to its left edge instead of
// stepping past it, matching spec.md §8 scenario S6's expectation that
// a plain arrow key lands exactly on the selection boundary.
func (s *Session) moveLeftCollapsing() {
	if s.mode == ModeSelection {
		start, _ := s.selectionRange()
		s.posn = start
		s.collapseSelection()
		return
	}
	s.moveLeft()
}

// moveRightCollapsing is moveLeftCollapsing's mirror image.
func (s *Session) moveRightCollapsing() {
	if s.mode == ModeSelection {
		_, end := s.selectionRange()
		s.posn = end
		s.collapseSelection()
		return
	}
	s.moveRight()
}

// moveLeft steps the cursor back by one grapheme cluster.
func (s *Session) moveLeft() {
	if s.posn == 0 {
		return
	}
	data := s.current.Bytes()
	off := s.current.Locate(s.posn)
	start := graph.PrevGraphemeStart(data, off, s.split)
	s.posn -= graph.Count(data[start:off])
}

// moveRight steps the cursor forward by one grapheme cluster.
func (s *Session) moveRight() {
	total := s.current.LengthChars()
	if s.posn >= total {
		return
	}
	data := s.current.Bytes()
	off := s.current.Locate(s.posn)
	n := graph.NextGrapheme(data[off:], s.split)
	s.posn += graph.Count(data[off : off+n])
}
