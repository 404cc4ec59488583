package scanner

import "github.com/t14raptor/go-jack/token"

// Lookup tables for identifier characters. Identifiers are ASCII only.
var asciiStart, asciiContinue = identifierTables()

func identifierTables() (start, cont [256]bool) {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '_' {
			start[i] = true
			cont[i] = true
		}
		if i >= '0' && i <= '9' {
			cont[i] = true
		}
	}
	return
}

func (s *Scanner) scanIdentifier() token.Kind {
	start := s.src.Offset()
	s.src.ConsumeByte()
	for {
		b, ok := s.src.PeekByte()
		if !ok || !asciiContinue[b] {
			break
		}
		s.src.ConsumeByte()
	}

	s.token.Name = s.names.InternString(s.src.FromPositionToCurrent(start))
	if _, ok := s.keywords.Lookup(s.token.Name); ok {
		return token.Keyword
	}
	return token.Name
}

func (s *Scanner) scanInteger() token.Kind {
	var val int32
	for {
		b, ok := s.src.PeekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		// Overflow wraps.
		val = val*10 + int32(b-'0')
		s.src.ConsumeByte()
	}
	s.token.Int = val
	return token.Int
}
