package generator

import "github.com/t14raptor/go-jack/ast"

// Dump prints node as an indented tree, one node per line and two spaces
// per level. Each line starts with the node's source line.
func Dump(node ast.Node) string {
	s := newState(node, "  ")
	dump(s)
	return s.out.String()
}

func (s *state) open(format string, args ...any) {
	s.out.WriteString(s.padding())
	s.out.Appendf("%d: ", s.node.Start().Line)
	s.out.Appendf(format, args...)
	s.line()
}

func (s *state) label(text string) {
	s.out.WriteString(s.padding())
	s.out.WriteString(text)
	s.line()
}

func (s *state) child(node ast.Node) {
	c := s.wrap(node)
	c.indent++
	dump(c)
}

// section prints a label one level down and the nodes two levels down.
func (s *state) section(text string, nodes ...ast.Node) {
	l := s.wrap(nil)
	l.indent++
	l.label(text)
	for _, n := range nodes {
		l.child(n)
	}
}

func dump(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Class:
		s.open("class %s (%d vars, %d subroutines)", n.Name, len(n.Vars), len(n.Subroutines))
		for i := range n.Vars {
			s.child(&n.Vars[i])
		}
		for i := range n.Subroutines {
			s.child(&n.Subroutines[i])
		}
	case *ast.ClassVarDecl:
		s.open("%s %s %s", n.Storage, typeName(n.Type), n.Name)
	case *ast.Subroutine:
		s.open("%s %s %s", n.Kind, typeName(n.Return), n.Name)
		for i := range n.Params {
			s.child(&n.Params[i])
		}
		for i := range n.Locals {
			s.child(&n.Locals[i])
		}
		s.child(&n.Body)
	case *ast.VarDecl:
		kind := "var"
		if p, ok := s.parent.node.(*ast.Subroutine); ok && isParam(p, n) {
			kind = "param"
		}
		s.open("%s %s %s", kind, typeName(n.Type), n.Name)
	case *ast.StmtList:
		s.open("block (%d)", len(n.Stmts))
		for _, st := range n.Stmts {
			s.child(st)
		}
	case *ast.LetStmt:
		s.open("let %s", n.Name)
		if n.Index != nil {
			s.section("index", n.Index)
		}
		s.child(n.Value)
	case *ast.IfStmt:
		s.open("if")
		s.child(n.Cond)
		s.child(&n.Then)
		if n.HasElse {
			s.section("else", &n.Else)
		}
	case *ast.WhileStmt:
		s.open("while")
		s.child(n.Cond)
		s.child(&n.Body)
	case *ast.DoStmt:
		s.open("do")
		s.child(n.Call)
	case *ast.ReturnStmt:
		s.open("return")
		if n.Value != nil {
			s.child(n.Value)
		}
	case *ast.IntLiteral:
		s.open("int %d", n.Value)
	case *ast.StringLiteral:
		s.open("string %s", quote(n.Value.String()))
	case *ast.KeywordLiteral:
		s.open("keyword %s", n.Name)
	case *ast.NameExpr:
		s.open("name %s", n.Name)
	case *ast.IndexExpr:
		s.open("index %s", n.Name)
		s.child(n.Index)
	case *ast.CallExpr:
		if n.Kind == ast.CallMethod {
			s.open("call %s.%s", n.Receiver, n.Name)
		} else {
			s.open("call %s", n.Name)
		}
		for _, arg := range n.Args {
			s.child(arg)
		}
	case *ast.UnaryExpr:
		s.open("unary %s", n.Operator)
		s.child(n.Operand)
	case *ast.BinaryExpr:
		s.open("binary %s", n.Operator)
		s.child(n.Left)
		s.child(n.Right)
	}
}

func isParam(sub *ast.Subroutine, v *ast.VarDecl) bool {
	for i := range sub.Params {
		if &sub.Params[i] == v {
			return true
		}
	}
	return false
}
