// Package ast declares the types used to represent a parsed Jack class.
//
// A tree is built once by the parser and not modified afterwards. Ownership
// is single-rooted at Class: there are no back-references and no shared
// nodes.
package ast

import "github.com/t14raptor/go-jack/token"

type Node interface {
	// Start returns the position of the first token belonging to the node.
	Start() token.Pos
}

func (n *Class) Start() token.Pos        { return n.Pos }
func (n *ClassVarDecl) Start() token.Pos { return n.Pos }
func (n *Subroutine) Start() token.Pos   { return n.Pos }
func (n *VarDecl) Start() token.Pos      { return n.Pos }
func (n *StmtList) Start() token.Pos     { return n.Pos }

func (n *LetStmt) Start() token.Pos    { return n.Pos }
func (n *IfStmt) Start() token.Pos     { return n.Pos }
func (n *WhileStmt) Start() token.Pos  { return n.Pos }
func (n *DoStmt) Start() token.Pos     { return n.Pos }
func (n *ReturnStmt) Start() token.Pos { return n.Pos }

func (n *IntLiteral) Start() token.Pos     { return n.Pos }
func (n *StringLiteral) Start() token.Pos  { return n.Pos }
func (n *KeywordLiteral) Start() token.Pos { return n.Pos }
func (n *NameExpr) Start() token.Pos       { return n.Pos }
func (n *IndexExpr) Start() token.Pos      { return n.Pos }
func (n *CallExpr) Start() token.Pos       { return n.Pos }
func (n *UnaryExpr) Start() token.Pos      { return n.Pos }
func (n *BinaryExpr) Start() token.Pos     { return n.Left.Start() }
