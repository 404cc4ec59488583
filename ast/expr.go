package ast

import (
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		VisitableNode
		_expr()
	}

	IntLiteral struct {
		Pos   token.Pos
		Value int32
	}

	StringLiteral struct {
		Pos   token.Pos
		Value intern.Name
	}

	// KeywordLiteral is one of true, false, null or this.
	KeywordLiteral struct {
		Pos     token.Pos
		Keyword token.Keyword
		Name    intern.Name
	}

	NameExpr struct {
		Pos  token.Pos
		Name intern.Name
	}

	IndexExpr struct {
		Pos   token.Pos
		Name  intern.Name
		Index Expr
	}

	CallExpr struct {
		Pos  token.Pos
		Kind CallKind
		// Receiver is the name before the dot for CallMethod; zero otherwise.
		Receiver intern.Name
		Name     intern.Name
		Args     []Expr
	}

	UnaryExpr struct {
		Pos      token.Pos
		Operator token.Kind // Neg or Not
		Operand  Expr
	}

	BinaryExpr struct {
		Operator token.Kind
		Left     Expr
		Right    Expr
	}
)

// CallKind records the syntactic shape of a subroutine call.
type CallKind uint8

const (
	// CallFunction is name(args).
	CallFunction CallKind = iota
	// CallMethod is receiver.name(args).
	CallMethod
)

func (k CallKind) String() string {
	if k == CallMethod {
		return "method"
	}
	return "function"
}

func (*IntLiteral) _expr()     {}
func (*StringLiteral) _expr()  {}
func (*KeywordLiteral) _expr() {}
func (*NameExpr) _expr()       {}
func (*IndexExpr) _expr()      {}
func (*CallExpr) _expr()       {}
func (*UnaryExpr) _expr()      {}
func (*BinaryExpr) _expr()     {}
