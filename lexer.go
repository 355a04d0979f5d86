package pathx

// scanner operates directly on a cursor into the source text rather than
// tokenizing ahead of time onto a queue. It runs entirely synchronously
// on the parser's own goroutine: no background tokenizing, no channel of
// pending tokens. scanner exposes a handful of byte-level primitives and
// leaves recursive descent to the parser driving the cursor directly.
type scanner struct {
	text string
	pos  int
}

func newScanner(text string) *scanner {
	return &scanner{text: text}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipws advances over ASCII whitespace.
func (s *scanner) skipws() {
	for s.pos < len(s.text) && isSpace(s.text[s.pos]) {
		s.pos++
	}
}

// eof reports whether the cursor is at the end of input (after skipping
// whitespace has already been done by the caller where relevant).
func (s *scanner) eof() bool {
	return s.pos >= len(s.text)
}

// cur returns the byte at the cursor, or 0 at end of input.
func (s *scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.pos]
}

// at returns the byte offset off bytes ahead of the cursor, or 0 past
// end of input.
func (s *scanner) at(off int) byte {
	if s.pos+off >= len(s.text) {
		return 0
	}
	return s.text[s.pos+off]
}

// match skips whitespace, then consumes ch if it is the current byte.
// Returns whether it was consumed.
func (s *scanner) match(ch byte) bool {
	s.skipws()
	if s.cur() == ch {
		s.pos++
		return true
	}
	return false
}

// peek tests whether the current byte (without skipping whitespace or
// consuming) is in chars.
func (s *scanner) peek(chars string) bool {
	if s.eof() {
		return false
	}
	c := s.cur()
	for i := 0; i < len(chars); i++ {
		if chars[i] == c {
			return true
		}
	}
	return false
}

// peekWS is like peek but skips whitespace first without consuming it
// permanently — used where the grammar allows whitespace before a
// lookahead character (e.g. deciding PrimaryExpr vs LocationPath).
func (s *scanner) peekWS(chars string) bool {
	save := s.pos
	s.skipws()
	ok := s.peek(chars)
	s.pos = save
	return ok
}

// matchLit skips whitespace, then consumes the literal lit in full if
// the cursor starts with it. It never partially consumes: on mismatch
// the cursor is left exactly where skipws moved it.
func (s *scanner) matchLit(lit string) bool {
	s.skipws()
	return s.consumeLiteral(lit)
}

// lookingAt returns true iff the cursor starts with token, then optional
// whitespace, then follow. On success the cursor advances past follow;
// on failure the cursor is left untouched.
func (s *scanner) lookingAt(token, follow string) bool {
	save := s.pos
	if !s.consumeLiteral(token) {
		s.pos = save
		return false
	}
	s.skipws()
	if !s.consumeLiteral(follow) {
		s.pos = save
		return false
	}
	return true
}

func (s *scanner) consumeLiteral(lit string) bool {
	if s.pos+len(lit) > len(s.text) {
		return false
	}
	if s.text[s.pos:s.pos+len(lit)] != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
