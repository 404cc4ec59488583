package generator

import "github.com/t14raptor/go-jack/ast"

// Stats counts the nodes of a class by category.
type Stats struct {
	ClassVars   int
	Subroutines int
	Params      int
	Locals      int
	Statements  int
	Expressions int
	Calls       int
}

type statsVisitor struct {
	ast.NoopVisitor
	stats Stats
}

func (v *statsVisitor) VisitClassVarDecl(n *ast.ClassVarDecl) {
	v.stats.ClassVars++
}

func (v *statsVisitor) VisitSubroutine(n *ast.Subroutine) {
	v.stats.Subroutines++
	v.stats.Params += len(n.Params)
	v.stats.Locals += len(n.Locals)
	n.Body.VisitWith(v)
}

func (v *statsVisitor) VisitStmtList(n *ast.StmtList) {
	v.stats.Statements += len(n.Stmts)
	n.VisitChildrenWith(v)
}

func (v *statsVisitor) VisitIntLiteral(n *ast.IntLiteral)         { v.stats.Expressions++ }
func (v *statsVisitor) VisitStringLiteral(n *ast.StringLiteral)   { v.stats.Expressions++ }
func (v *statsVisitor) VisitKeywordLiteral(n *ast.KeywordLiteral) { v.stats.Expressions++ }
func (v *statsVisitor) VisitNameExpr(n *ast.NameExpr)             { v.stats.Expressions++ }

func (v *statsVisitor) VisitIndexExpr(n *ast.IndexExpr) {
	v.stats.Expressions++
	n.VisitChildrenWith(v)
}

func (v *statsVisitor) VisitCallExpr(n *ast.CallExpr) {
	v.stats.Expressions++
	v.stats.Calls++
	n.VisitChildrenWith(v)
}

func (v *statsVisitor) VisitUnaryExpr(n *ast.UnaryExpr) {
	v.stats.Expressions++
	n.VisitChildrenWith(v)
}

func (v *statsVisitor) VisitBinaryExpr(n *ast.BinaryExpr) {
	v.stats.Expressions++
	n.VisitChildrenWith(v)
}

// CountNodes walks class and returns its Stats.
func CountNodes(class *ast.Class) Stats {
	v := &statsVisitor{}
	v.V = v
	class.VisitWith(v)
	return v.stats
}
