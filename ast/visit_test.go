package ast_test

import (
	"testing"

	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/parser"
)

type nameCollector struct {
	ast.NoopVisitor
	names []string
}

func (v *nameCollector) VisitNameExpr(n *ast.NameExpr) {
	v.names = append(v.names, n.Name.String())
}

func (v *nameCollector) VisitIndexExpr(n *ast.IndexExpr) {
	v.names = append(v.names, n.Name.String()+"[]")
	n.VisitChildrenWith(v)
}

func TestNoopVisitorDispatchesOverrides(t *testing.T) {
	c, err := parser.ParseFile("", `class T {
		method void m(int p) {
			var int l;
			let l = a + b[c];
			if (d) { do f(e); } else { return g; }
			while (~h) { let i[j] = -k; }
			return;
		}
	}`)
	if err != nil {
		t.Fatal(err)
	}

	v := &nameCollector{}
	v.V = v
	c.VisitWith(v)

	want := []string{"a", "b[]", "c", "d", "e", "g", "h", "j", "k"}
	if len(v.names) != len(want) {
		t.Fatalf("visited %v; want %v", v.names, want)
	}
	for i := range want {
		if v.names[i] != want[i] {
			t.Errorf("names[%d] = %s; want %s", i, v.names[i], want[i])
		}
	}
}

func TestNoopVisitorWithoutOverride(t *testing.T) {
	c, err := parser.ParseFile("", "class T { function void f() { do g(1 + 2); return; } }")
	if err != nil {
		t.Fatal(err)
	}
	// A bare NoopVisitor walks everything and does nothing.
	c.VisitWith(&ast.NoopVisitor{})
}

func TestBinaryExprStart(t *testing.T) {
	c, err := parser.ParseFile("", "class T {\n function int f() {\n return\n a\n +\n b; } }")
	if err != nil {
		t.Fatal(err)
	}
	ret := c.Subroutines[0].Body.Stmts[0].(*ast.ReturnStmt)
	if ret.Start().Line != 3 {
		t.Errorf("return starts at line %d; want 3", ret.Start().Line)
	}
	if got := ret.Value.Start().Line; got != 4 {
		t.Errorf("binary expression starts at line %d; want 4", got)
	}
}
