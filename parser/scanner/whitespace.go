package scanner

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\r', '\n':
		return true
	}
	return false
}

func (s *Scanner) skipWhitespace() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isWhitespace(b) {
			return
		}
		s.src.ConsumeByte()
	}
}
