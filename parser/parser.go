// Package parser implements a recursive-descent parser for Jack classes.
//
// Parsing stops at the first grammar mismatch; there is no resynchronization.
// Lexical errors are not fatal and are returned alongside the tree.
package parser

import (
	"errors"

	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/parser/scanner"
	"github.com/t14raptor/go-jack/seq"
	"github.com/t14raptor/go-jack/token"
	"github.com/t14raptor/go-jack/unit"
)

type config struct {
	unit    *unit.Unit
	line    int
	onError func(error)
}

// Option configures ParseFile.
type Option func(*config)

// WithUnit makes the parser intern into u. Without it every call gets a
// fresh unit.
func WithUnit(u *unit.Unit) Option {
	return func(c *config) { c.unit = u }
}

// WithLine sets the line number of the first source line.
func WithLine(line int) Option {
	return func(c *config) { c.line = line }
}

// WithErrorHandler registers f to be called with every diagnostic as soon as
// it is found: each lexical error, then the syntax error if there is one.
func WithErrorHandler(f func(error)) Option {
	return func(c *config) { c.onError = f }
}

type parser struct {
	token token.Token

	scanner  *scanner.Scanner
	keywords *token.Keywords

	errors  error
	onError func(error)

	// Scratch lists. exprs and stmts nest, so callers push a frame and
	// truncate back to their mark once the frame is copied out.
	exprs       seq.Buf[ast.Expr]
	stmts       seq.Buf[ast.Stmt]
	vars        seq.Buf[ast.VarDecl]
	classVars   seq.Buf[ast.ClassVarDecl]
	subroutines seq.Buf[ast.Subroutine]

	alloc *nodeAllocator
}

func newParser(name, src string, opts ...Option) *parser {
	cfg := config{line: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.unit == nil {
		cfg.unit = unit.New()
	}

	p := &parser{
		keywords: cfg.unit.Keywords,
		onError:  cfg.onError,
		alloc:    newNodeAllocator(),
	}
	sc := scanner.Config{
		File:     name,
		Line:     cfg.line,
		Names:    cfg.unit.Names,
		Keywords: cfg.unit.Keywords,
	}
	if p.onError != nil {
		sc.OnError = func(err *scanner.Error) { p.onError(err) }
	}
	p.scanner = scanner.New(src, sc)
	return p
}

// ParseFile parses the source of a single Jack class. name is used in
// diagnostics only; an empty name reads as "<string>".
//
// On a syntax error the returned class is nil and the error joins the
// lexical errors found so far with a *SyntaxError. Otherwise the class is
// returned together with the lexical errors, if any.
func ParseFile(name, src string, opts ...Option) (*ast.Class, error) {
	return newParser(name, src, opts...).parse()
}

func (p *parser) parse() (class *ast.Class, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			class = nil
			err = errors.Join(p.scanner.Err(), p.errors)
		}
	}()

	p.next()
	class = p.parseClass()
	return class, p.scanner.Err()
}

func (p *parser) next() {
	p.token = p.scanner.Next()
}

func (p *parser) is(kind token.Kind) bool {
	return p.token.Kind == kind
}

// keyword returns the keyword the current token spells, or NoKeyword.
func (p *parser) keyword() token.Keyword {
	if p.token.Kind != token.Keyword {
		return token.NoKeyword
	}
	kw, _ := p.keywords.Lookup(p.token.Name)
	return kw
}

// match consumes the current token if it has the given kind.
func (p *parser) match(kind token.Kind) bool {
	if p.token.Kind != kind {
		return false
	}
	p.next()
	return true
}

// expect consumes a token of the given kind and returns it, or fails the
// parse.
func (p *parser) expect(kind token.Kind) token.Token {
	tok := p.token
	if tok.Kind != kind {
		p.errorUnexpectedToken(kind.String())
	}
	p.next()
	return tok
}

func (p *parser) expectKeyword(kw token.Keyword) token.Token {
	tok := p.token
	if p.keyword() != kw {
		p.errorUnexpectedToken(kw.String())
	}
	p.next()
	return tok
}
