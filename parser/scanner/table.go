package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/go-jack/token"
)

// skip is returned by handlers that consumed input without producing a token.
const skip token.Kind = 0xff

type byteHandler func(s *Scanner) token.Kind

var byteHandlers [256]byteHandler

func init() {
	for i := range byteHandlers {
		switch {
		case i >= 0x80:
			byteHandlers[i] = uni
		case asciiStart[i]:
			byteHandlers[i] = idt
		case '0' <= i && i <= '9':
			byteHandlers[i] = dig
		default:
			byteHandlers[i] = inv
		}
	}
	for _, b := range []byte{' ', '\t', '\v', '\r', '\n'} {
		byteHandlers[b] = sps
	}
	byteHandlers['"'] = qod
	byteHandlers['/'] = slh

	for b, kind := range map[byte]token.Kind{
		'[': token.LBracket,
		']': token.RBracket,
		'(': token.LParen,
		')': token.RParen,
		'{': token.LBrace,
		'}': token.RBrace,
		'.': token.Dot,
		',': token.Comma,
		';': token.Semicolon,
		'~': token.Not,
		'*': token.Mul,
		'&': token.And,
		'+': token.Add,
		'-': token.Sub,
		'|': token.Or,
		'=': token.Eq,
		'<': token.Lt,
		'>': token.Gt,
	} {
		byteHandlers[b] = punct(kind)
	}
}

// punct returns a handler for a single-byte symbol.
func punct(kind token.Kind) byteHandler {
	return func(s *Scanner) token.Kind {
		s.src.ConsumeByte()
		return kind
	}
}

// Bytes that can't start a token.
func inv(s *Scanner) token.Kind {
	pos := s.src.Pos()
	c := s.src.ConsumeByte()
	s.report(invalidCharacter(string(c), pos))
	return skip
}

// Non-ASCII: the whole rune is reported and skipped.
func uni(s *Scanner) token.Kind {
	pos := s.src.Pos()
	r, size := utf8.DecodeRuneInString(s.src.Rest())
	for i := 0; i < size; i++ {
		s.src.ConsumeByte()
	}
	c := string(r)
	if r == utf8.RuneError {
		c = "\\ufffd"
	}
	s.report(invalidCharacter(c, pos))
	return skip
}

// <SPACE> <TAB> <VT> <CR> <LF>
func sps(s *Scanner) token.Kind {
	s.skipWhitespace()
	return skip
}

// "
func qod(s *Scanner) token.Kind {
	return s.scanString()
}

// / // /*
func slh(s *Scanner) token.Kind {
	s.src.ConsumeByte()
	switch {
	case s.src.AdvanceIfByteEquals('/'):
		s.skipSingleLineComment()
		return skip
	case s.src.AdvanceIfByteEquals('*'):
		s.skipMultiLineComment()
		return skip
	}
	return token.Div
}

// 0-9
func dig(s *Scanner) token.Kind {
	return s.scanInteger()
}

// A-Z a-z _
func idt(s *Scanner) token.Kind {
	return s.scanIdentifier()
}
