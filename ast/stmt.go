package ast

import (
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

type (
	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		VisitableNode
		_stmt()
	}

	// StmtList is a braced block; Pos is the opening brace.
	StmtList struct {
		Pos   token.Pos
		Stmts []Stmt
	}

	LetStmt struct {
		Pos   token.Pos
		Name  intern.Name
		Index Expr `optional:"true"`
		Value Expr
	}

	IfStmt struct {
		Pos  token.Pos
		Cond Expr
		Then StmtList
		// Else is empty when there is no else branch; HasElse tells the two
		// apart from an empty else block.
		Else    StmtList
		HasElse bool
	}

	WhileStmt struct {
		Pos  token.Pos
		Cond Expr
		Body StmtList
	}

	DoStmt struct {
		Pos  token.Pos
		Call *CallExpr
	}

	ReturnStmt struct {
		Pos   token.Pos
		Value Expr `optional:"true"`
	}
)

func (*LetStmt) _stmt()    {}
func (*IfStmt) _stmt()     {}
func (*WhileStmt) _stmt()  {}
func (*DoStmt) _stmt()     {}
func (*ReturnStmt) _stmt() {}
