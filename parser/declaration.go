package parser

import (
	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

func (p *parser) parseClass() *ast.Class {
	start := p.expectKeyword(token.Class).Pos
	name := p.parseName()
	p.expect(token.LBrace)

	p.classVars.Clear()
	for {
		var storage ast.VarStorage
		switch p.keyword() {
		case token.Static:
			storage = ast.Static
		case token.Field:
			storage = ast.Field
		}
		if storage == 0 {
			break
		}
		p.parseClassVars(storage)
	}
	vars := p.classVars.Slice()

	p.subroutines.Clear()
	for {
		var kind ast.SubroutineKind
		switch p.keyword() {
		case token.Constructor:
			kind = ast.Constructor
		case token.Method:
			kind = ast.Method
		case token.Function:
			kind = ast.Function
		default:
			p.expect(token.RBrace)
			return p.alloc.Class(start, name, vars, p.subroutines.Slice())
		}
		p.subroutines.Push(p.parseSubroutine(kind))
	}
}

// parseClassVars parses one static or field line, pushing a declaration per
// name. Every name on the line shares the declared type.
func (p *parser) parseClassVars(storage ast.VarStorage) {
	pos := p.expect(token.Keyword).Pos
	typ := p.parseType()

	for {
		p.classVars.Push(ast.ClassVarDecl{
			Pos:     pos,
			Storage: storage,
			Type:    typ,
			Name:    p.parseName(),
		})
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.Semicolon)
}

func (p *parser) parseSubroutine(kind ast.SubroutineKind) ast.Subroutine {
	sub := ast.Subroutine{Pos: p.expect(token.Keyword).Pos, Kind: kind}
	sub.Return = p.parseType()
	sub.Name = p.parseName()

	p.expect(token.LParen)
	p.vars.Clear()
	if !p.is(token.RParen) {
		for {
			p.vars.Push(p.parseVar())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen)
	sub.Params = p.alloc.CopyVars(p.vars.Slice())

	sub.Body.Pos = p.expect(token.LBrace).Pos
	p.vars.Clear()
	for p.keyword() == token.Var {
		p.next()
		first := p.parseVar()
		p.vars.Push(first)
		for p.match(token.Comma) {
			p.vars.Push(ast.VarDecl{Pos: p.token.Pos, Type: first.Type, Name: p.parseName()})
		}
		p.expect(token.Semicolon)
	}
	sub.Locals = p.alloc.CopyVars(p.vars.Slice())

	sub.Body.Stmts = p.parseStatements()
	p.expect(token.RBrace)
	return sub
}

// parseType accepts a built-in type keyword or a class name.
func (p *parser) parseType() ast.Type {
	typ := ast.Type{Name: p.token.Name}
	switch p.keyword() {
	case token.Void:
		typ.Kind = ast.TypeVoid
	case token.IntType:
		typ.Kind = ast.TypeInt
	case token.CharType:
		typ.Kind = ast.TypeChar
	case token.BooleanType:
		typ.Kind = ast.TypeBoolean
	default:
		typ.Kind = ast.TypeClassName
		p.expect(token.Name)
		return typ
	}
	p.next()
	return typ
}

func (p *parser) parseName() intern.Name {
	return p.expect(token.Name).Name
}

func (p *parser) parseVar() ast.VarDecl {
	pos := p.token.Pos
	typ := p.parseType()
	return ast.VarDecl{Pos: pos, Type: typ, Name: p.parseName()}
}
