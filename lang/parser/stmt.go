package parser

import (
	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/token"
)

// declaration parses one declaration or statement. On a parse error it
// synchronizes to the next statement boundary and returns nil; the caller
// filters nil entries out of the statement list.
func (p *parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if err := recover(); err != nil {
			if err != errParse { //nolint:errorlint
				panic(err)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	p.skipNewlines()
	if p.atEnd() {
		return nil
	}

	switch {
	case p.match(token.VARIABLE):
		return p.varDeclaration()
	case p.match(token.FUNCTION):
		return p.functionDeclaration("function")
	case p.match(token.CLASS):
		return p.classDeclaration()
	}
	return p.statement()
}

func (p *parser) statement() ast.Stmt {
	p.skipNewlines()
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		// the keyword is reserved but has no production
		p.fail(p.previous(), `"for" statements are reserved`)
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.BEGIN):
		return &ast.BlockStmt{Stmts: p.block()}
	}
	return p.expressionStatement()
}

func (p *parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect variable name")

	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}

	p.terminator()
	return &ast.VarStmt{Name: name, Init: init}
}

// functionDeclaration parses a function declaration with the FUNCTION
// keyword already consumed. Class methods reuse it without the keyword;
// kind only changes the error messages.
func (p *parser) functionDeclaration(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENT, "Expect "+kind+" name")

	p.consume(token.LPAREN, `Expect "(" after `+kind+" name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			params = append(params, p.consume(token.IDENT, "Expect parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, `Expect ")" after parameters`)
	p.consume(token.BEGIN, `Expect "begin" before `+kind+" body")

	return &ast.FunctionStmt{Name: name, Params: params, Body: p.block()}
}

func (p *parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect class name")

	var superclass *ast.VariableExpr
	if p.match(token.INHERITS) {
		p.consume(token.IDENT, "Expect superclass name")
		superclass = &ast.VariableExpr{Name: p.previous()}
	}

	p.consume(token.BEGIN, `Expect "begin" before class body`)

	var methods []*ast.FunctionStmt
	for !p.check(token.END) && !p.atEnd() {
		p.skipNewlines()
		if p.check(token.END) || p.atEnd() {
			break
		}
		methods = append(methods, p.functionDeclaration("method"))
		p.skipNewlines()
	}
	p.consume(token.END, `Expect "end" after class body`)

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *parser) ifStatement() ast.Stmt {
	cond := p.expression()

	p.consume(token.BEGIN, `Expect "begin" after the condition of an "if" statement`)
	then := &ast.BlockStmt{Stmts: p.block()}

	var els ast.Stmt
	p.skipNewlines()
	if p.match(token.ELSE) {
		els = p.statement()
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *parser) whileStatement() ast.Stmt {
	cond := p.expression()

	p.consume(token.BEGIN, `Expect "begin" after the condition of a "while" statement`)
	body := &ast.BlockStmt{Stmts: p.block()}

	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *parser) returnStatement() ast.Stmt {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(token.NEWLINE) && !p.check(token.END) && !p.atEnd() {
		value = p.expression()
	}

	p.terminator()
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// block parses statements until the closing END, which it consumes. The
// opening BEGIN has already been consumed by the caller.
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt

	for {
		p.skipNewlines()
		if p.check(token.END) || p.atEnd() {
			break
		}
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	p.consume(token.END, `Expect "end" after block`)
	return stmts
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.terminator()
	return &ast.ExprStmt{Expr: expr}
}
