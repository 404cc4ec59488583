// Package scanner turns Jack source text into tokens.
package scanner

import (
	"errors"

	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/seq"
	"github.com/t14raptor/go-jack/token"
)

// Config describes the input and the tables a Scanner works with.
type Config struct {
	// File names the input in diagnostics. Defaults to "<string>".
	File string
	// Line is the line number of the first line. Defaults to 1.
	Line int

	// Names and Keywords must come from the same compilation unit. When
	// Names is nil the scanner creates its own interner and keyword set.
	Names    *intern.Interner
	Keywords *token.Keywords

	// OnError, if set, is called for every lexical error as it is found.
	OnError func(*Error)
}

type Scanner struct {
	token token.Token

	src Source

	names    *intern.Interner
	keywords *token.Keywords

	// Scratch for string literal contents.
	str seq.Buf[byte]

	errors  error
	nerrors int
	onError func(*Error)
}

func New(src string, cfg Config) *Scanner {
	if cfg.File == "" {
		cfg.File = "<string>"
	}
	if cfg.Line == 0 {
		cfg.Line = 1
	}
	if cfg.Names == nil {
		cfg.Names = intern.New(nil)
		cfg.Keywords = nil
	}
	if cfg.Keywords == nil {
		cfg.Keywords = token.NewKeywords(cfg.Names)
	}
	return &Scanner{
		src:      NewSource(cfg.File, src, cfg.Line),
		names:    cfg.Names,
		keywords: cfg.Keywords,
		onError:  cfg.OnError,
	}
}

// Next scans one token and returns it. At end of input it keeps returning
// EOF.
func (s *Scanner) Next() token.Token {
	for {
		s.token = token.Token{Pos: s.src.Pos()}

		b, ok := s.src.PeekByte()
		if !ok {
			s.token.Kind = token.EOF
			break
		}

		if kind := byteHandlers[b](s); kind != skip {
			s.token.Kind = kind
			break
		}
	}
	return s.token
}

// Token returns the most recently scanned token.
func (s *Scanner) Token() token.Token {
	return s.token
}

// Keywords returns the keyword set used for classification.
func (s *Scanner) Keywords() *token.Keywords {
	return s.keywords
}

// Names returns the interner identifiers are stored in.
func (s *Scanner) Names() *intern.Interner {
	return s.names
}

// Err returns every lexical error reported so far, joined, or nil.
func (s *Scanner) Err() error {
	return s.errors
}

// ErrorCount reports how many lexical errors were found.
func (s *Scanner) ErrorCount() int {
	return s.nerrors
}

func (s *Scanner) report(err *Error) {
	s.errors = errors.Join(s.errors, err)
	s.nerrors++
	if s.onError != nil {
		s.onError(err)
	}
}

// Tokenize scans all of src and returns its tokens, excluding the final
// EOF, together with any lexical errors.
func Tokenize(src string, cfg Config) ([]token.Token, error) {
	s := New(src, cfg)
	var toks seq.Buf[token.Token]
	for tok := s.Next(); tok.Kind != token.EOF; tok = s.Next() {
		toks.Push(tok)
	}
	return toks.Slice(), s.Err()
}
