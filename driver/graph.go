package driver

import (
	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/seq"
	"github.com/t14raptor/go-jack/tools/fastgraph"
)

// References builds the class reference graph of the parsed classes. A
// class refers to another when it declares something of that type or calls
// through a receiver that is not one of its variables.
func References(classes []*ast.Class) *fastgraph.Graph[string] {
	g := fastgraph.New[string]()
	for _, c := range classes {
		if c == nil {
			continue
		}
		from := c.Name.String()
		g.AddNode(from)
		v := &refCollector{from: from, graph: g, fields: make(map[string]bool)}
		v.V = v
		c.VisitWith(v)
	}
	return g
}

type refCollector struct {
	ast.NoopVisitor
	from  string
	graph *fastgraph.Graph[string]

	fields map[string]bool
	locals map[string]bool
}

func (v *refCollector) ref(name string) {
	if name != v.from {
		v.graph.AddEdge(v.from, name)
	}
}

func (v *refCollector) refType(t ast.Type) {
	if t.Kind == ast.TypeClassName {
		v.ref(t.Name.String())
	}
}

func (v *refCollector) VisitClassVarDecl(n *ast.ClassVarDecl) {
	v.fields[n.Name.String()] = true
	v.refType(n.Type)
}

func (v *refCollector) VisitSubroutine(n *ast.Subroutine) {
	v.locals = make(map[string]bool, len(n.Params)+len(n.Locals))
	v.refType(n.Return)
	n.VisitChildrenWith(v)
}

func (v *refCollector) VisitVarDecl(n *ast.VarDecl) {
	v.locals[n.Name.String()] = true
	v.refType(n.Type)
}

func (v *refCollector) VisitCallExpr(n *ast.CallExpr) {
	if n.Kind == ast.CallMethod {
		recv := n.Receiver.String()
		if !v.locals[recv] && !v.fields[recv] {
			v.ref(recv)
		}
	}
	n.VisitChildrenWith(v)
}

// ClassGraph renders the reference graph of the parsed results in DOT
// syntax. Edges are labelled with the number of references and classes that
// reach each other are grouped in a cluster.
func ClassGraph(results []Result) string {
	classes := make([]*ast.Class, len(results))
	for i := range results {
		classes[i] = results[i].Class
	}
	return dot(References(classes))
}

func dot(g *fastgraph.Graph[string]) string {
	var out seq.Text
	out.WriteString("digraph classes {\n")
	for _, from := range g.Order() {
		out.Appendf("  %q;\n", from)
		for to := range g.Neighbors(from, fastgraph.Outgoing) {
			out.Appendf("  %q -> %q [label=%d];\n", from, to, g.Count(from, to))
		}
	}
	for i, cycle := range g.Cycles() {
		out.Appendf("  subgraph cluster_%d {", i)
		for _, n := range cycle {
			out.Appendf(" %q;", n)
		}
		out.WriteString(" }\n")
	}
	out.WriteString("}\n")
	return out.String()
}
