// Package token defines the lexical tokens of the Jack language.
package token

import (
	"fmt"
	"strconv"

	"github.com/t14raptor/go-jack/intern"
)

// Kind is the set of lexical token kinds.
type Kind uint8

const (
	EOF Kind = iota

	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Dot       // .
	Comma     // ,
	Semicolon // ;
	Neg       // - (unary)
	Not       // ~

	Keyword
	Int
	Str
	Name

	// Multiplicative tier.
	Mul // *
	Div // /
	And // &

	// Additive tier.
	Add // +
	Sub // -
	Or  // |

	// Comparative tier.
	Eq // =
	Lt // <
	Gt // >

	numKinds
)

const (
	FirstMul = Mul
	LastMul  = And
	FirstAdd = Add
	LastAdd  = Or
	FirstCmp = Eq
	LastCmp  = Gt
)

var kind2string = [numKinds]string{
	EOF:       "EOF",
	LBracket:  "[",
	RBracket:  "]",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Dot:       ".",
	Comma:     ",",
	Semicolon: ";",
	Neg:       "-",
	Not:       "~",
	Keyword:   "keyword",
	Int:       "int",
	Str:       "string",
	Name:      "name",
	Mul:       "*",
	Div:       "/",
	And:       "&",
	Add:       "+",
	Sub:       "-",
	Or:        "|",
	Eq:        "=",
	Lt:        "<",
	Gt:        ">",
}

// String returns the descriptive name of the kind: the glyph for symbols,
// otherwise a word such as "name" or "EOF".
func (k Kind) String() string {
	if k < numKinds {
		return kind2string[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

// Markup returns String with the markup-significant glyphs escaped.
func (k Kind) Markup() string {
	switch k {
	case And:
		return "&amp;"
	case Lt:
		return "&lt;"
	case Gt:
		return "&gt;"
	}
	return k.String()
}

// IsSymbol reports whether k is a punctuation or operator token.
func (k Kind) IsSymbol() bool {
	return LBracket <= k && k <= Not || FirstMul <= k && k <= LastCmp
}

// IsBinary reports whether k is a binary operator of any tier.
func (k Kind) IsBinary() bool {
	return FirstMul <= k && k <= LastCmp
}

// Tier is the precedence class of a binary operator.
type Tier uint8

const (
	NoTier Tier = iota
	Comparative
	Additive
	Multiplicative
)

// Tier returns the precedence class of k, or NoTier.
func (k Kind) Tier() Tier {
	switch {
	case FirstMul <= k && k <= LastMul:
		return Multiplicative
	case FirstAdd <= k && k <= LastAdd:
		return Additive
	case FirstCmp <= k && k <= LastCmp:
		return Comparative
	}
	return NoTier
}

// Pos is a source position: file name and 1-based line.
type Pos struct {
	File string
	Line int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s(%d)", p.File, p.Line)
}

// Token is a classified lexeme. Which payload field is meaningful depends on
// Kind alone: Int for Int; Name for Keyword, Name and Str.
type Token struct {
	Kind Kind
	Pos  Pos

	Int  int32
	Name intern.Name
}

// Text returns the identifier or keyword text for those kinds and the
// descriptive kind name otherwise. It is what diagnostics print.
func (t Token) Text() string {
	if t.Kind == Name || t.Kind == Keyword {
		return t.Name.String()
	}
	return t.Kind.String()
}
