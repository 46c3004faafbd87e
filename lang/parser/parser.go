// Package parser implements the recursive-descent parser that transforms a
// token sequence into an abstract syntax tree. Statements are terminated by
// newlines (end of file substitutes for one), and the parser recovers from
// errors by synchronizing to the next statement boundary.
package parser

import (
	"errors"

	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/token"
)

// Parse parses the token sequence into a list of top-level statements.
// Errors are reported to h; the returned list contains only the statements
// that parsed successfully, so callers must check h.HadError before
// executing it.
func Parse(tokens []token.Token, h *report.Handler) []ast.Stmt {
	p := parser{tokens: tokens, h: h}

	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
		p.skipNewlines()
	}
	return stmts
}

var errParse = errors.New("parse error")

type parser struct {
	tokens []token.Token
	cur    int
	h      *report.Handler
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(k token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *parser) peek() token.Token     { return p.tokens[p.cur] }
func (p *parser) previous() token.Token { return p.tokens[p.cur-1] }
func (p *parser) atEnd() bool           { return p.peek().Kind == token.EOF }

func (p *parser) skipNewlines() {
	for p.match(token.NEWLINE) {
	}
}

// consume advances over a token of kind k or fails with msg.
func (p *parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.fail(p.peek(), msg)
	return token.Token{}
}

// terminator ends a statement: a newline is consumed when present, and the
// end of a block or of the program substitutes for it. A statement followed
// directly by another on the same line is also accepted, which the
// one-line class and method forms rely on.
func (p *parser) terminator() {
	if p.check(token.NEWLINE) {
		p.advance()
	}
}

// fail reports the error and panics into the recovery handler installed by
// declaration.
func (p *parser) fail(tok token.Token, msg string) {
	p.h.Error(tok, msg)
	panic(errParse)
}

// synchronize advances to the next statement boundary after a parse error:
// just past a newline, or at a token that starts a top-level form.
func (p *parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Kind == token.NEWLINE {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUNCTION, token.VARIABLE, token.FOR,
			token.IF, token.WHILE, token.RETURN:
			return
		}
		p.advance()
	}
}
