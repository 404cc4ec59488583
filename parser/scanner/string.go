package scanner

import "github.com/t14raptor/go-jack/token"

// Escapes map to their byte; anything else maps to zero, which is only
// valid for '0'.
var escapeToChar = [256]byte{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
	'b': '\b',
	'a': '\a',
	'0': 0,
}

func (s *Scanner) scanString() token.Kind {
	s.src.ConsumeByte()
	s.str.Clear()

	for {
		b, ok := s.src.PeekByte()
		if !ok {
			s.report(unterminatedString(s.src.Pos()))
			break
		}
		if b == '"' {
			s.src.ConsumeByte()
			break
		}
		if b == '\n' {
			// The newline is left for the whitespace handler.
			s.report(newlineInString(s.src.Pos()))
			break
		}
		if b == '\\' {
			s.src.ConsumeByte()
			if b, ok = s.src.PeekByte(); !ok {
				s.report(unterminatedString(s.src.Pos()))
				break
			}
			esc := b
			if b = escapeToChar[esc]; b == 0 && esc != '0' {
				s.report(invalidEscapeSequence(esc, s.src.Pos()))
			}
		}
		s.str.Push(b)
		s.src.ConsumeByte()
	}

	s.token.Name = s.names.Intern(s.str.Slice())
	return token.Str
}
