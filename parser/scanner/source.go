package scanner

import (
	"strings"

	"github.com/t14raptor/go-jack/token"
)

// Source is a cursor over the input text that tracks the current line.
type Source struct {
	str  string
	pos  int
	line int
	file string
}

// NewSource returns a Source over src. A NUL byte terminates the input.
func NewSource(file, src string, line int) Source {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return Source{str: src, line: line, file: file}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.str)
}

func (s *Source) Offset() int {
	return s.pos
}

func (s *Source) Pos() token.Pos {
	return token.Pos{File: s.file, Line: s.line}
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// ConsumeByte advances past the current byte, counting newlines.
func (s *Source) ConsumeByte() byte {
	b := s.str[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
	}
	return b
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.ConsumeByte()
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos int) string {
	return s.str[pos:s.pos]
}

func (s *Source) Rest() string {
	return s.str[s.pos:]
}
