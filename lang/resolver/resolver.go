// Package resolver implements the static name-resolution pass that runs
// between parsing and interpretation. It walks the AST with a stack of
// lexical scopes, records for every variable-like expression how many
// scopes separate the reference from its binding, and enforces the static
// semantics: no self-inheritance, no value returns from initializers, no
// duplicate declarations in one scope, and no this/super misuse.
package resolver

import (
	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/token"
)

// Locals is the resolver's side table: for each resolved expression node
// (keyed by identity), the number of scopes to climb from the environment
// in effect at evaluation time to reach the binding. Expressions absent
// from the table resolve against the global environment.
type Locals map[ast.Expr]int

type funcType int8

const (
	funcNone funcType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int8

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolve resolves the statements and returns the side table. Static errors
// are reported to h; a caller must check h.HadError before handing the
// table to the interpreter. The language provides the spellings of the
// this/super keywords bound in class scopes.
func Resolve(stmts []ast.Stmt, lang *language.Language, h *report.Handler) Locals {
	r := resolver{
		locals: make(Locals),
		lang:   lang,
		h:      h,
	}
	r.stmts(stmts)
	return r.locals
}

type resolver struct {
	scopes []map[string]bool // name → defined? (false while declared only)
	curFn  funcType
	curCls classType

	locals Locals
	lang   *language.Language
	h      *report.Handler
}

func (r *resolver) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.stmts(s.Stmts)
		r.endScope()

	case *ast.ClassStmt:
		enclosing := r.curCls
		r.curCls = classClass

		r.declare(s.Name)
		r.define(s.Name)

		if s.Superclass != nil && s.Name.Lexeme == s.Superclass.Name.Lexeme {
			r.h.Error(s.Superclass.Name, "A class can not inherit from itself")
		}

		if s.Superclass != nil {
			r.curCls = classSubclass
			r.expr(s.Superclass)

			r.beginScope()
			r.scopes[len(r.scopes)-1][r.lang.KeywordFor(token.SUPER)] = true
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1][r.lang.KeywordFor(token.THIS)] = true

		for _, m := range s.Methods {
			ft := funcMethod
			if m.Name.Lexeme == "init" {
				ft = funcInitializer
			}
			r.function(m, ft)
		}

		r.endScope()
		if s.Superclass != nil {
			r.endScope()
		}
		r.curCls = enclosing

	case *ast.ExprStmt:
		r.expr(s.Expr)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.function(s, funcFunction)

	case *ast.IfStmt:
		r.expr(s.Cond)
		r.stmt(s.Then)
		if s.Else != nil {
			r.stmt(s.Else)
		}

	case *ast.ReturnStmt:
		if s.Value != nil {
			if r.curFn == funcInitializer {
				r.h.Error(s.Keyword, "Can't return a value from an initializer")
			}
			r.expr(s.Value)
		}

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.expr(s.Init)
		}
		r.define(s.Name)

	case *ast.WhileStmt:
		r.expr(s.Cond)
		r.stmt(s.Body)
	}
}

func (r *resolver) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.AssignExpr:
		r.expr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.BinaryExpr:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.CallExpr:
		r.expr(e.Callee)
		for _, a := range e.Args {
			r.expr(a)
		}

	case *ast.GetExpr:
		// the property name is a runtime lookup, only the object resolves
		r.expr(e.Object)

	case *ast.GroupingExpr:
		r.expr(e.Expr)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.SetExpr:
		r.expr(e.Value)
		r.expr(e.Object)

	case *ast.SuperExpr:
		switch r.curCls {
		case classNone:
			r.h.Error(e.Keyword, `Can not use "super" outside of a class`)
		case classClass:
			r.h.Error(e.Keyword, `Can not use "super" in a class with no super class`)
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.ThisExpr:
		if r.curCls == classNone {
			r.h.Error(e.Keyword, `Can not use "this" outside of a class`)
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.UnaryExpr:
		r.expr(e.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.h.Error(e.Name, "Can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name)
	}
}

func (r *resolver) function(fn *ast.FunctionStmt, ft funcType) {
	enclosing := r.curFn
	r.curFn = ft

	r.beginScope()
	for _, prm := range fn.Params {
		r.declare(prm)
		r.define(prm)
	}
	r.stmts(fn.Body)
	r.endScope()

	r.curFn = enclosing
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks the name as existing-but-undefined in the innermost scope.
// The global scope is implicit and never checked.
func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.h.Error(name, "Already a variable with this name in this scope")
	}
	scope[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the hop count from the innermost scope to the one
// binding name. A name bound in no scope is left out of the table and
// resolves against globals at run time.
func (r *resolver) resolveLocal(e ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[e] = len(r.scopes) - 1 - i
			return
		}
	}
}
