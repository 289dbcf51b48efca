package lineedit

// historyUp pages one entry further back in history, entering
// ModeHistory on the first press and stashing whatever was typed so
// far so Down can restore it later, per spec.md §4.7.
func (s *Session) historyUp() {
	if s.history.Count() == 0 {
		return
	}
	if s.mode != ModeHistory {
		s.savedLine = s.current.String()
		s.mode = ModeHistory
		s.history.SetPosn(0)
	} else {
		next := s.history.Posn() + 1
		if next >= s.history.Count() {
			next = s.history.Count() - 1
		}
		s.history.SetPosn(next)
	}
	text, _ := s.history.Select(s.history.Posn())
	s.loadLine(text)
}

// historyDown pages one entry forward, restoring the pre-navigation
// line and leaving ModeHistory once it reaches the most recent entry.
func (s *Session) historyDown() {
	if s.mode != ModeHistory {
		return
	}
	if s.history.Posn() == 0 {
		s.mode = ModeDefault
		s.loadLine(s.savedLine)
		return
	}
	s.history.SetPosn(s.history.Posn() - 1)
	text, _ := s.history.Select(s.history.Posn())
	s.loadLine(text)
}

// leaveHistory drops out of ModeHistory without restoring savedLine,
// called whenever the user edits a line they paged to — it becomes an
// ordinary edited line rather than a history entry from that point on.
func (s *Session) leaveHistory() {
	if s.mode == ModeHistory {
		s.mode = ModeDefault
	}
}

// loadLine replaces the buffer's contents wholesale and puts the
// cursor at the end, used when paging through history.
func (s *Session) loadLine(text string) {
	s.current.Clear()
	s.current.AppendString(text)
	s.posn = s.current.LengthChars()
	s.suggestions.Clear()
}
