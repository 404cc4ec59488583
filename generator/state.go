package generator

import (
	"strings"

	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/seq"
)

type state struct {
	out    *seq.Text
	node   ast.Node
	parent *state
	indent int
	pad    string
}

func newState(node ast.Node, pad string) *state {
	return &state{
		out:    &seq.Text{},
		node:   node,
		parent: &state{},
		pad:    pad,
	}
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		pad:    s.pad,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(s.padding())
}

func (s *state) padding() string {
	return strings.Repeat(s.pad, s.indent)
}
