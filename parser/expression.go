package parser

import (
	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/intern"
	"github.com/t14raptor/go-jack/token"
)

// parseExpression parses term (op term)*. The grammar has no precedence:
// every operator binds at the same level and groups to the left.
func (p *parser) parseExpression() ast.Expr {
	left := p.parseTerm()
	for p.token.Kind.Tier() != token.NoTier {
		op := p.token.Kind
		p.next()
		left = p.alloc.BinaryExpr(op, left, p.parseTerm())
	}
	return left
}

func (p *parser) parseTerm() ast.Expr {
	tok := p.token
	switch tok.Kind {
	case token.Int:
		p.next()
		return p.alloc.IntLiteral(tok.Pos, tok.Int)
	case token.Str:
		p.next()
		return p.alloc.StringLiteral(tok.Pos, tok.Name)
	case token.Keyword:
		switch kw := p.keyword(); kw {
		case token.True, token.False, token.Null, token.This:
			p.next()
			return p.alloc.KeywordLiteral(tok.Pos, kw, tok.Name)
		}
	case token.Name:
		p.next()
		switch p.token.Kind {
		case token.LBracket:
			p.next()
			index := p.parseExpression()
			p.expect(token.RBracket)
			return p.alloc.IndexExpr(tok.Pos, tok.Name, index)
		case token.LParen, token.Dot:
			return p.parseCall(tok)
		}
		return p.alloc.NameExpr(tok.Pos, tok.Name)
	case token.LParen:
		p.next()
		expr := p.parseExpression()
		p.expect(token.RParen)
		return expr
	case token.Sub, token.Neg:
		// The scanner cannot tell unary from binary minus.
		p.next()
		return p.alloc.UnaryExpr(tok.Pos, token.Neg, p.parseTerm())
	case token.Not:
		p.next()
		return p.alloc.UnaryExpr(tok.Pos, token.Not, p.parseTerm())
	}
	p.errorUnexpectedToken("term")
	return nil
}

// parseCall parses the rest of a subroutine call whose leading name has
// already been consumed: either "(args)" or ".name(args)".
func (p *parser) parseCall(first token.Token) *ast.CallExpr {
	kind := ast.CallFunction
	var receiver intern.Name
	name := first.Name
	if p.match(token.Dot) {
		kind = ast.CallMethod
		receiver, name = name, p.parseName()
	}

	p.expect(token.LParen)
	mark := p.exprs.Len()
	if !p.is(token.RParen) {
		for {
			p.exprs.Push(p.parseExpression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen)

	call := p.alloc.CallExpr(first.Pos, kind, receiver, name, p.exprs.Slice()[mark:])
	p.exprs.Truncate(mark)
	return call
}
