package scanner

// skipSingleLineComment consumes up to, not including, the line break.
func (s *Scanner) skipSingleLineComment() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || b == '\n' {
			return
		}
		s.src.ConsumeByte()
	}
}

// skipMultiLineComment consumes through the first "*/". Comments don't nest;
// an unterminated one runs to end of input.
func (s *Scanner) skipMultiLineComment() {
	for !s.src.EOF() {
		if s.src.ConsumeByte() == '*' && s.src.AdvanceIfByteEquals('/') {
			return
		}
	}
}
