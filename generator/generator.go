// Package generator renders parsed Jack back to text: canonical source
// (Generate), an indented tree dump (Dump), the token markup (Tokens), and
// node counts (Stats).
package generator

import (
	"strconv"

	"github.com/t14raptor/go-jack/ast"
)

// Generate prints node as Jack source, four spaces per indent level.
// Parenthesized sub-expressions are reproduced only where the flat grammar
// needs them to keep the same tree.
func Generate(node ast.Node) string {
	s := newState(node, "    ")
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Class:
		s.out.Appendf("class %s {", n.Name)
		s.indent++
		for i := range n.Vars {
			s.lineAndPad()
			gen(s.wrap(&n.Vars[i]))
		}
		for i := range n.Subroutines {
			if i > 0 || len(n.Vars) > 0 {
				s.line()
			}
			s.lineAndPad()
			gen(s.wrap(&n.Subroutines[i]))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}\n")
	case *ast.ClassVarDecl:
		s.out.Appendf("%s %s %s;", n.Storage, typeName(n.Type), n.Name)
	case *ast.Subroutine:
		s.out.Appendf("%s %s %s(", n.Kind, typeName(n.Return), n.Name)
		for i := range n.Params {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(&n.Params[i]))
		}
		s.out.WriteString(") {")
		s.indent++
		for i := range n.Locals {
			s.lineAndPad()
			s.out.WriteString("var ")
			gen(s.wrap(&n.Locals[i]))
			s.out.WriteString(";")
		}
		for _, st := range n.Body.Stmts {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.VarDecl:
		s.out.Appendf("%s %s", typeName(n.Type), n.Name)
	case *ast.StmtList:
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.Stmts {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.LetStmt:
		s.out.Appendf("let %s", n.Name)
		if n.Index != nil {
			s.out.WriteString("[")
			gen(s.wrap(n.Index))
			s.out.WriteString("]")
		}
		s.out.WriteString(" = ")
		gen(s.wrap(n.Value))
		s.out.WriteString(";")
	case *ast.IfStmt:
		s.out.WriteString("if (")
		gen(s.wrap(n.Cond))
		s.out.WriteString(") ")
		gen(s.wrap(&n.Then))
		if n.HasElse {
			s.out.WriteString(" else ")
			gen(s.wrap(&n.Else))
		}
	case *ast.WhileStmt:
		s.out.WriteString("while (")
		gen(s.wrap(n.Cond))
		s.out.WriteString(") ")
		gen(s.wrap(&n.Body))
	case *ast.DoStmt:
		s.out.WriteString("do ")
		gen(s.wrap(n.Call))
		s.out.WriteString(";")
	case *ast.ReturnStmt:
		s.out.WriteString("return")
		if n.Value != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Value))
		}
		s.out.WriteString(";")
	case *ast.IntLiteral:
		s.out.WriteString(strconv.FormatInt(int64(n.Value), 10))
	case *ast.StringLiteral:
		s.out.WriteString(quote(n.Value.String()))
	case *ast.KeywordLiteral:
		s.out.WriteString(n.Name.String())
	case *ast.NameExpr:
		s.out.WriteString(n.Name.String())
	case *ast.IndexExpr:
		s.out.Appendf("%s[", n.Name)
		gen(s.wrap(n.Index))
		s.out.WriteString("]")
	case *ast.CallExpr:
		if n.Kind == ast.CallMethod {
			s.out.Appendf("%s.", n.Receiver)
		}
		s.out.Appendf("%s(", n.Name)
		for i, arg := range n.Args {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(arg))
		}
		s.out.WriteString(")")
	case *ast.UnaryExpr:
		s.out.WriteString(n.Operator.String())
		gen(s.wrap(n.Operand))
	case *ast.BinaryExpr:
		switch pn := s.parent.node.(type) {
		case *ast.UnaryExpr:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		case *ast.BinaryExpr:
			// Operators group left, so only a right operand needs parentheses.
			if pn.Right == ast.Expr(n) {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Left))
		s.out.Appendf(" %s ", n.Operator)
		gen(s.wrap(n.Right))
	}
}

func typeName(t ast.Type) string {
	return t.Name.String()
}

var char2escape = [256]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\b': 'b',
	'\a': 'a',
}

func quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0:
			buf = append(buf, '\\', '0')
		case char2escape[c] != 0:
			buf = append(buf, '\\', char2escape[c])
		default:
			buf = append(buf, c)
		}
	}
	return string(append(buf, '"'))
}
