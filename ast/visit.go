package ast

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitClass(node *Class)
	VisitClassVarDecl(node *ClassVarDecl)
	VisitSubroutine(node *Subroutine)
	VisitVarDecl(node *VarDecl)
	VisitStmtList(node *StmtList)
	VisitLetStmt(node *LetStmt)
	VisitIfStmt(node *IfStmt)
	VisitWhileStmt(node *WhileStmt)
	VisitDoStmt(node *DoStmt)
	VisitReturnStmt(node *ReturnStmt)
	VisitIntLiteral(node *IntLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitKeywordLiteral(node *KeywordLiteral)
	VisitNameExpr(node *NameExpr)
	VisitIndexExpr(node *IndexExpr)
	VisitCallExpr(node *CallExpr)
	VisitUnaryExpr(node *UnaryExpr)
	VisitBinaryExpr(node *BinaryExpr)
}

// NoopVisitor walks the whole tree and does nothing else. Embed it and set
// V to the outer visitor so that overridden methods are dispatched to while
// the rest keep descending.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) self() Visitor {
	if nv.V == nil {
		return nv
	}
	return nv.V
}

func (nv *NoopVisitor) VisitClass(node *Class)                 { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitClassVarDecl(node *ClassVarDecl)   { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitSubroutine(node *Subroutine)       { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitVarDecl(node *VarDecl)             { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitStmtList(node *StmtList)           { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitLetStmt(node *LetStmt)             { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitIfStmt(node *IfStmt)               { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitWhileStmt(node *WhileStmt)         { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitDoStmt(node *DoStmt)               { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitReturnStmt(node *ReturnStmt)       { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitIntLiteral(node *IntLiteral)       { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral) { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitKeywordLiteral(node *KeywordLiteral) {
	node.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitNameExpr(node *NameExpr)     { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitIndexExpr(node *IndexExpr)   { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitCallExpr(node *CallExpr)     { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitUnaryExpr(node *UnaryExpr)   { node.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitBinaryExpr(node *BinaryExpr) { node.VisitChildrenWith(nv.self()) }

func (n *Class) VisitWith(v Visitor) {
	v.VisitClass(n)
}

func (n *Class) VisitChildrenWith(v Visitor) {
	for i := range n.Vars {
		n.Vars[i].VisitWith(v)
	}
	for i := range n.Subroutines {
		n.Subroutines[i].VisitWith(v)
	}
}

func (n *ClassVarDecl) VisitWith(v Visitor) {
	v.VisitClassVarDecl(n)
}

func (n *ClassVarDecl) VisitChildrenWith(v Visitor) {}

func (n *Subroutine) VisitWith(v Visitor) {
	v.VisitSubroutine(n)
}

func (n *Subroutine) VisitChildrenWith(v Visitor) {
	for i := range n.Params {
		n.Params[i].VisitWith(v)
	}
	for i := range n.Locals {
		n.Locals[i].VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *VarDecl) VisitWith(v Visitor) {
	v.VisitVarDecl(n)
}

func (n *VarDecl) VisitChildrenWith(v Visitor) {}

func (n *StmtList) VisitWith(v Visitor) {
	v.VisitStmtList(n)
}

func (n *StmtList) VisitChildrenWith(v Visitor) {
	for _, s := range n.Stmts {
		s.VisitWith(v)
	}
}

func (n *LetStmt) VisitWith(v Visitor) {
	v.VisitLetStmt(n)
}

func (n *LetStmt) VisitChildrenWith(v Visitor) {
	if n.Index != nil {
		n.Index.VisitWith(v)
	}
	n.Value.VisitWith(v)
}

func (n *IfStmt) VisitWith(v Visitor) {
	v.VisitIfStmt(n)
}

func (n *IfStmt) VisitChildrenWith(v Visitor) {
	n.Cond.VisitWith(v)
	n.Then.VisitWith(v)
	if n.HasElse {
		n.Else.VisitWith(v)
	}
}

func (n *WhileStmt) VisitWith(v Visitor) {
	v.VisitWhileStmt(n)
}

func (n *WhileStmt) VisitChildrenWith(v Visitor) {
	n.Cond.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *DoStmt) VisitWith(v Visitor) {
	v.VisitDoStmt(n)
}

func (n *DoStmt) VisitChildrenWith(v Visitor) {
	n.Call.VisitWith(v)
}

func (n *ReturnStmt) VisitWith(v Visitor) {
	v.VisitReturnStmt(n)
}

func (n *ReturnStmt) VisitChildrenWith(v Visitor) {
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

func (n *IntLiteral) VisitWith(v Visitor)         { v.VisitIntLiteral(n) }
func (n *IntLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor)         { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *KeywordLiteral) VisitWith(v Visitor)         { v.VisitKeywordLiteral(n) }
func (n *KeywordLiteral) VisitChildrenWith(v Visitor) {}

func (n *NameExpr) VisitWith(v Visitor)         { v.VisitNameExpr(n) }
func (n *NameExpr) VisitChildrenWith(v Visitor) {}

func (n *IndexExpr) VisitWith(v Visitor) {
	v.VisitIndexExpr(n)
}

func (n *IndexExpr) VisitChildrenWith(v Visitor) {
	n.Index.VisitWith(v)
}

func (n *CallExpr) VisitWith(v Visitor) {
	v.VisitCallExpr(n)
}

func (n *CallExpr) VisitChildrenWith(v Visitor) {
	for _, a := range n.Args {
		a.VisitWith(v)
	}
}

func (n *UnaryExpr) VisitWith(v Visitor) {
	v.VisitUnaryExpr(n)
}

func (n *UnaryExpr) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *BinaryExpr) VisitWith(v Visitor) {
	v.VisitBinaryExpr(n)
}

func (n *BinaryExpr) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}
