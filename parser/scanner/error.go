package scanner

import (
	"fmt"

	"github.com/t14raptor/go-jack/token"
)

// Error is a recoverable lexical error.
type Error struct {
	Pos     token.Pos
	Message string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Message
}

func invalidCharacter(c string, pos token.Pos) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid '%s' token, skipping", c),
		Pos:     pos,
	}
}

func unterminatedString(pos token.Pos) *Error {
	return &Error{
		Message: "Unexpected end of file within string literal",
		Pos:     pos,
	}
}

func newlineInString(pos token.Pos) *Error {
	return &Error{
		Message: "String literal cannot contain newline",
		Pos:     pos,
	}
}

func invalidEscapeSequence(c byte, pos token.Pos) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid string literal escape '\\%c'", c),
		Pos:     pos,
	}
}
