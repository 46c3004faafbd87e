package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint pretty-prints the statements as an indented tree, one node per
// line. It is used by tests and debugging tools; the output is not source
// code.
func Fprint(w io.Writer, stmts []Stmt) {
	p := printer{w: w}
	for _, s := range stmts {
		p.stmt(s)
	}
}

type printer struct {
	w     io.Writer
	depth int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}

func (p *printer) nested(fn func()) {
	p.depth++
	fn()
	p.depth--
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *BlockStmt:
		p.printf("block {stmts=%d}", len(s.Stmts))
		p.nested(func() {
			for _, c := range s.Stmts {
				p.stmt(c)
			}
		})

	case *ClassStmt:
		if s.Superclass != nil {
			p.printf("class %s inherits %s {methods=%d}", s.Name.Lexeme, s.Superclass.Name.Lexeme, len(s.Methods))
		} else {
			p.printf("class %s {methods=%d}", s.Name.Lexeme, len(s.Methods))
		}
		p.nested(func() {
			for _, m := range s.Methods {
				p.stmt(m)
			}
		})

	case *ExprStmt:
		p.printf("expr stmt")
		p.nested(func() { p.expr(s.Expr) })

	case *FunctionStmt:
		names := make([]string, len(s.Params))
		for i, prm := range s.Params {
			names[i] = prm.Lexeme
		}
		p.printf("function %s(%s)", s.Name.Lexeme, strings.Join(names, ", "))
		p.nested(func() {
			for _, c := range s.Body {
				p.stmt(c)
			}
		})

	case *IfStmt:
		p.printf("if")
		p.nested(func() {
			p.expr(s.Cond)
			p.stmt(s.Then)
			if s.Else != nil {
				p.printf("else")
				p.stmt(s.Else)
			}
		})

	case *ReturnStmt:
		p.printf("return")
		if s.Value != nil {
			p.nested(func() { p.expr(s.Value) })
		}

	case *VarStmt:
		p.printf("var %s", s.Name.Lexeme)
		if s.Init != nil {
			p.nested(func() { p.expr(s.Init) })
		}

	case *WhileStmt:
		p.printf("while")
		p.nested(func() {
			p.expr(s.Cond)
			p.stmt(s.Body)
		})

	default:
		p.printf("unknown stmt %T", s)
	}
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case *AssignExpr:
		p.printf("assign %s", e.Name.Lexeme)
		p.nested(func() { p.expr(e.Value) })

	case *BinaryExpr:
		p.printf("binary %#v", e.Op.Kind)
		p.nested(func() {
			p.expr(e.Left)
			p.expr(e.Right)
		})

	case *CallExpr:
		p.printf("call {args=%d}", len(e.Args))
		p.nested(func() {
			p.expr(e.Callee)
			for _, a := range e.Args {
				p.expr(a)
			}
		})

	case *GetExpr:
		p.printf("get %s", e.Name.Lexeme)
		p.nested(func() { p.expr(e.Object) })

	case *GroupingExpr:
		p.printf("(expr)")
		p.nested(func() { p.expr(e.Expr) })

	case *LiteralExpr:
		p.printf("literal %#v", e.Value)

	case *SetExpr:
		p.printf("set %s", e.Name.Lexeme)
		p.nested(func() {
			p.expr(e.Object)
			p.expr(e.Value)
		})

	case *SuperExpr:
		p.printf("super.%s", e.Method.Lexeme)

	case *ThisExpr:
		p.printf("this")

	case *UnaryExpr:
		p.printf("unary %#v", e.Op.Kind)
		p.nested(func() { p.expr(e.Right) })

	case *VariableExpr:
		p.printf("variable %s", e.Name.Lexeme)

	default:
		p.printf("unknown expr %T", e)
	}
}
