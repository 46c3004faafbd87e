package parser

import (
	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/token"
)

// Binding powers, loosest first: assignment, or, and, equality, comparison,
// term, factor, unary, call, primary.

func (p *parser) expression() ast.Expr {
	p.skipNewlines()
	return p.assignment()
}

func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQ) {
		equals := p.previous()
		value := p.assignment()

		switch lhs := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: lhs.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: lhs.Object, Name: lhs.Name, Value: value}
		}
		p.fail(equals, "Invalid assignment target")
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.and()}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.equality()}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANGEQ, token.EQEQ) {
		op := p.previous()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.comparison()}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GT, token.GTEQ, token.LT, token.LTEQ) {
		op := p.previous()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.term()}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.factor()}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.unary()}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.NOT, token.MINUS) {
		op := p.previous()
		return &ast.UnaryExpr{Op: op, Right: p.unary()}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, `Expect property after "."`)
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, `Expect ")" after arguments`)

	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Value: true}
	case p.match(token.NONE):
		return &ast.LiteralExpr{Value: nil}
	case p.match(token.NUMBER):
		return &ast.LiteralExpr{Value: p.previous().Number}
	case p.match(token.STRING):
		return &ast.LiteralExpr{Value: p.previous().Text}
	case p.match(token.IDENT):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, `Expect "." after "super"`)
		method := p.consume(token.IDENT, "Expect superclass method name")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, `Expect ")" after expression`)
		return &ast.GroupingExpr{Expr: expr}
	}

	p.fail(p.peek(), "Expect expression")
	return nil
}
