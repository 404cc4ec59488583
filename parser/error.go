package parser

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-jack/token"
)

const (
	errExpectedToken = "expected token %s, got %s"
)

// SyntaxError is a grammar mismatch. It ends the parse of the file it was
// found in.
type SyntaxError struct {
	Pos     token.Pos
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: Syntax Error: %s", e.Pos, e.Message)
}

// IsFatal reports whether err carries a syntax error, meaning no tree was
// produced.
func IsFatal(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// bailout is the panic value used to unwind out of a failed parse.
type bailout struct{}

// errorf records a syntax error at the current token and aborts the parse.
func (p *parser) errorf(msg string, msgValues ...any) {
	err := &SyntaxError{Pos: p.token.Pos, Message: fmt.Sprintf(msg, msgValues...)}
	p.errors = errors.Join(p.errors, err)
	if p.onError != nil {
		p.onError(err)
	}
	panic(bailout{})
}

func (p *parser) errorUnexpectedToken(expected string) {
	p.errorf(errExpectedToken, expected, p.token.Text())
}
