package parser

import (
	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/token"
)

// parseStatements parses statements until the lookahead cannot start one.
func (p *parser) parseStatements() []ast.Stmt {
	mark := p.stmts.Len()
	for {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		p.stmts.Push(stmt)
	}
	list := p.alloc.CopyStmts(p.stmts.Slice()[mark:])
	p.stmts.Truncate(mark)
	return list
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.keyword() {
	case token.Let:
		return p.parseLetStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoStatement()
	case token.Return:
		return p.parseReturnStatement()
	}
	return nil
}

func (p *parser) parseBlock() ast.StmtList {
	block := ast.StmtList{Pos: p.expect(token.LBrace).Pos}
	block.Stmts = p.parseStatements()
	p.expect(token.RBrace)
	return block
}

func (p *parser) parseCondition() ast.Expr {
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	return cond
}

func (p *parser) parseLetStatement() *ast.LetStmt {
	pos := p.token.Pos
	p.next()
	name := p.parseName()

	var index ast.Expr
	if p.match(token.LBracket) {
		index = p.parseExpression()
		p.expect(token.RBracket)
	}
	p.expect(token.Eq)
	value := p.parseExpression()
	p.expect(token.Semicolon)
	return p.alloc.LetStmt(pos, name, index, value)
}

func (p *parser) parseIfStatement() *ast.IfStmt {
	pos := p.token.Pos
	p.next()
	node := p.alloc.IfStmt(pos, p.parseCondition())
	node.Then = p.parseBlock()
	if p.keyword() == token.Else {
		p.next()
		node.Else = p.parseBlock()
		node.HasElse = true
	}
	return node
}

func (p *parser) parseWhileStatement() *ast.WhileStmt {
	pos := p.token.Pos
	p.next()
	cond := p.parseCondition()
	return p.alloc.WhileStmt(pos, cond, p.parseBlock())
}

func (p *parser) parseDoStatement() *ast.DoStmt {
	pos := p.token.Pos
	p.next()
	call := p.parseCall(p.expect(token.Name))
	p.expect(token.Semicolon)
	return p.alloc.DoStmt(pos, call)
}

func (p *parser) parseReturnStatement() *ast.ReturnStmt {
	pos := p.token.Pos
	p.next()
	var value ast.Expr
	if !p.is(token.Semicolon) {
		value = p.parseExpression()
	}
	p.expect(token.Semicolon)
	return p.alloc.ReturnStmt(pos, value)
}
