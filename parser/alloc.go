package parser

import (
	"github.com/t14raptor/go-jack/arena"
	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

// nodeAllocator holds typed slabs for every AST node the parser creates.
// Constructor methods allocate and initialize a node in one call.
type nodeAllocator struct {
	class arena.Slab[ast.Class]

	// Exactly-sized list storage, separate from the per-node slabs so that
	// contiguous slice allocations don't fragment with individual nodes.
	classVars   arena.Slab[ast.ClassVarDecl]
	subroutines arena.Slab[ast.Subroutine]
	vars        arena.Slab[ast.VarDecl]
	exprSlice   arena.Slab[ast.Expr]
	stmtSlice   arena.Slab[ast.Stmt]

	// Statements.
	letStmt    arena.Slab[ast.LetStmt]
	ifStmt     arena.Slab[ast.IfStmt]
	whileStmt  arena.Slab[ast.WhileStmt]
	doStmt     arena.Slab[ast.DoStmt]
	returnStmt arena.Slab[ast.ReturnStmt]

	// Expressions.
	intLit    arena.Slab[ast.IntLiteral]
	strLit    arena.Slab[ast.StringLiteral]
	kwLit     arena.Slab[ast.KeywordLiteral]
	nameExpr  arena.Slab[ast.NameExpr]
	indexExpr arena.Slab[ast.IndexExpr]
	callExpr  arena.Slab[ast.CallExpr]
	unaryExpr arena.Slab[ast.UnaryExpr]
	binExpr   arena.Slab[ast.BinaryExpr]
}

func newNodeAllocator() *nodeAllocator {
	a := &nodeAllocator{}

	a.class.Init(2)
	a.classVars.Init(32)
	a.subroutines.Init(32)
	a.vars.Init(64)
	a.exprSlice.Init(128)
	a.stmtSlice.Init(256)

	a.letStmt.Init(128)
	a.ifStmt.Init(32)
	a.whileStmt.Init(16)
	a.doStmt.Init(64)
	a.returnStmt.Init(32)

	// Names are the most frequent node.
	a.nameExpr.Init(256)
	a.intLit.Init(128)
	a.strLit.Init(32)
	a.kwLit.Init(32)
	a.indexExpr.Init(32)
	a.callExpr.Init(64)
	a.unaryExpr.Init(16)
	a.binExpr.Init(128)
	return a
}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

func (a *nodeAllocator) Class(pos token.Pos, name intern.Name, vars []ast.ClassVarDecl, subs []ast.Subroutine) *ast.Class {
	n := a.class.New()
	*n = ast.Class{
		Pos:         pos,
		Name:        name,
		Vars:        a.classVars.Copy(vars),
		Subroutines: a.subroutines.Copy(subs),
	}
	return n
}

// CopyVars moves params or locals into exactly-sized storage.
func (a *nodeAllocator) CopyVars(src []ast.VarDecl) []ast.VarDecl {
	return a.vars.Copy(src)
}

func (a *nodeAllocator) CopyExprs(src []ast.Expr) []ast.Expr {
	return a.exprSlice.Copy(src)
}

func (a *nodeAllocator) CopyStmts(src []ast.Stmt) []ast.Stmt {
	return a.stmtSlice.Copy(src)
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (a *nodeAllocator) LetStmt(pos token.Pos, name intern.Name, index, value ast.Expr) *ast.LetStmt {
	n := a.letStmt.New()
	*n = ast.LetStmt{Pos: pos, Name: name, Index: index, Value: value}
	return n
}

func (a *nodeAllocator) IfStmt(pos token.Pos, cond ast.Expr) *ast.IfStmt {
	n := a.ifStmt.New()
	*n = ast.IfStmt{Pos: pos, Cond: cond}
	return n
}

func (a *nodeAllocator) WhileStmt(pos token.Pos, cond ast.Expr, body ast.StmtList) *ast.WhileStmt {
	n := a.whileStmt.New()
	*n = ast.WhileStmt{Pos: pos, Cond: cond, Body: body}
	return n
}

func (a *nodeAllocator) DoStmt(pos token.Pos, call *ast.CallExpr) *ast.DoStmt {
	n := a.doStmt.New()
	*n = ast.DoStmt{Pos: pos, Call: call}
	return n
}

func (a *nodeAllocator) ReturnStmt(pos token.Pos, value ast.Expr) *ast.ReturnStmt {
	n := a.returnStmt.New()
	*n = ast.ReturnStmt{Pos: pos, Value: value}
	return n
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (a *nodeAllocator) IntLiteral(pos token.Pos, value int32) *ast.IntLiteral {
	n := a.intLit.New()
	*n = ast.IntLiteral{Pos: pos, Value: value}
	return n
}

func (a *nodeAllocator) StringLiteral(pos token.Pos, value intern.Name) *ast.StringLiteral {
	n := a.strLit.New()
	*n = ast.StringLiteral{Pos: pos, Value: value}
	return n
}

func (a *nodeAllocator) KeywordLiteral(pos token.Pos, kw token.Keyword, name intern.Name) *ast.KeywordLiteral {
	n := a.kwLit.New()
	*n = ast.KeywordLiteral{Pos: pos, Keyword: kw, Name: name}
	return n
}

func (a *nodeAllocator) NameExpr(pos token.Pos, name intern.Name) *ast.NameExpr {
	n := a.nameExpr.New()
	*n = ast.NameExpr{Pos: pos, Name: name}
	return n
}

func (a *nodeAllocator) IndexExpr(pos token.Pos, name intern.Name, index ast.Expr) *ast.IndexExpr {
	n := a.indexExpr.New()
	*n = ast.IndexExpr{Pos: pos, Name: name, Index: index}
	return n
}

func (a *nodeAllocator) CallExpr(pos token.Pos, kind ast.CallKind, receiver, name intern.Name, args []ast.Expr) *ast.CallExpr {
	n := a.callExpr.New()
	*n = ast.CallExpr{Pos: pos, Kind: kind, Receiver: receiver, Name: name, Args: a.CopyExprs(args)}
	return n
}

func (a *nodeAllocator) UnaryExpr(pos token.Pos, op token.Kind, operand ast.Expr) *ast.UnaryExpr {
	n := a.unaryExpr.New()
	*n = ast.UnaryExpr{Pos: pos, Operator: op, Operand: operand}
	return n
}

func (a *nodeAllocator) BinaryExpr(op token.Kind, left, right ast.Expr) *ast.BinaryExpr {
	n := a.binExpr.New()
	*n = ast.BinaryExpr{Operator: op, Left: left, Right: right}
	return n
}

