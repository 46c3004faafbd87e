// Package interp implements the tree-walking interpreter of the wiz
// language. It executes resolved statements against a chain of
// environments, consulting the resolver's side table to read locals at a
// fixed depth and the global environment otherwise.
package interp

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/mna/mainer"

	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/resolver"
	"github.com/wiz-lang/wiz/lang/token"
)

// Interp executes statements. It holds the global environment (seeded with
// the standard library), the current environment chain, and the resolver's
// side table, which accumulates across REPL lines.
type Interp struct {
	Globals *Environment

	env    *Environment
	locals resolver.Locals

	lang  *language.Language
	h     *report.Handler
	stdio mainer.Stdio
	stdin *bufio.Reader
}

// New returns an interpreter for the language, reporting runtime errors to
// h and performing read/write through stdio. The stdin reader is shared
// with the caller so the REPL and the read native consume the same buffer.
func New(lang *language.Language, h *report.Handler, stdio mainer.Stdio, stdin *bufio.Reader) *Interp {
	if stdin == nil {
		stdin = bufio.NewReader(stdio.Stdin)
	}
	in := &Interp{
		Globals: NewEnvironment(nil),
		locals:  make(resolver.Locals),
		lang:    lang,
		h:       h,
		stdio:   stdio,
		stdin:   stdin,
	}
	in.env = in.Globals
	defineStdLib(in.Globals, lang)
	return in
}

// AddLocals merges a resolver side table into the interpreter's. The REPL
// resolves each line separately, so tables accumulate.
func (in *Interp) AddLocals(locals resolver.Locals) {
	for e, d := range locals {
		in.locals[e] = d
	}
}

// Interpret executes the statements in order. A runtime error unwinds to
// here, is reported to the sink, and stops execution. In REPL mode, the
// value of each top-level expression statement is printed after evaluation.
func (in *Interp) Interpret(stmts []ast.Stmt, repl bool) {
	for _, s := range stmts {
		if es, ok := s.(*ast.ExprStmt); ok && repl {
			v, err := in.evaluate(es.Expr)
			if err != nil {
				in.reportRuntime(err)
				return
			}
			fmt.Fprintln(in.stdio.Stdout, Stringify(v, in.lang))
			continue
		}

		if _, err := in.execute(s); err != nil {
			in.reportRuntime(err)
			return
		}
	}
}

func (in *Interp) reportRuntime(err error) {
	var rt *report.RuntimeError
	if errors.As(err, &rt) {
		in.h.Runtime(rt)
		return
	}
	// no other error kind escapes the evaluator
	fmt.Fprintln(in.stdio.Stderr, err)
	in.h.HadRuntimeError = true
}

// returnValue carries a return statement's value up through the nested
// block executions to the function call boundary.
type returnValue struct {
	value Value
}

// execute runs one statement. A non-nil returnValue means a return
// statement fired and is still unwinding.
func (in *Interp) execute(s ast.Stmt) (*returnValue, error) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewEnvironment(in.env))

	case *ast.ClassStmt:
		return nil, in.executeClass(s)

	case *ast.ExprStmt:
		_, err := in.evaluate(s.Expr)
		return nil, err

	case *ast.FunctionStmt:
		fn := NewFunction(s, in.env, false, in.lang)
		in.env.Define(s.Name.Lexeme, fn)
		return nil, nil

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil, nil

	case *ast.ReturnStmt:
		var v Value
		if s.Value != nil {
			var err error
			if v, err = in.evaluate(s.Value); err != nil {
				return nil, err
			}
		}
		return &returnValue{value: v}, nil

	case *ast.VarStmt:
		var v Value
		if s.Init != nil {
			var err error
			if v, err = in.evaluate(s.Init); err != nil {
				return nil, err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil, nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return nil, err
			}
			if !Truthy(cond) {
				return nil, nil
			}
			if ret, err := in.execute(s.Body); ret != nil || err != nil {
				return ret, err
			}
		}
	}
	return nil, nil
}

// executeBlock runs statements with env as the current environment and
// restores the previous environment on every exit path, including the
// return unwind and runtime errors.
func (in *Interp) executeBlock(stmts []ast.Stmt, env *Environment) (ret *returnValue, err error) {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()

	for _, s := range stmts {
		if ret, err = in.execute(s); ret != nil || err != nil {
			return ret, err
		}
	}
	return nil, nil
}

func (in *Interp) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		sv, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.(*Class)
		if !ok {
			return &report.RuntimeError{Token: s.Superclass.Name, Msg: "Superclass must be a class"}
		}
		superclass = sc
	}

	// reserve the slot before building methods so they see the name
	in.env.Define(s.Name.Lexeme, nil)

	if superclass != nil {
		in.env = NewEnvironment(in.env)
		in.env.Define(in.lang.KeywordFor(token.SUPER), superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, in.env, m.Name.Lexeme == "init", in.lang)
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if superclass != nil {
		in.env = in.env.enclosing
	}
	return in.env.Assign(s.Name, class)
}

func (in *Interp) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.AssignExpr:
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := in.locals[e]; ok {
			in.env.AssignAt(dist, e.Name, v)
			return v, nil
		}
		if err := in.Globals.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.BinaryExpr:
		return in.evaluateBinary(e)

	case *ast.CallExpr:
		return in.evaluateCall(e)

	case *ast.GetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &report.RuntimeError{Token: e.Name, Msg: "Only instances have properties"}
		}
		return inst.Get(e.Name)

	case *ast.GroupingExpr:
		return in.evaluate(e.Expr)

	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.SetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &report.RuntimeError{Token: e.Name, Msg: "Only instances have fields"}
		}
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, v)
		return v, nil

	case *ast.SuperExpr:
		return in.evaluateSuper(e)

	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.UnaryExpr:
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op.Kind {
		case token.NOT:
			return !Truthy(right), nil
		case token.MINUS:
			n, ok := right.(float64)
			if !ok {
				return nil, &report.RuntimeError{Token: e.Op, Msg: "Operand must be a number"}
			}
			return -n, nil
		}
		return nil, nil

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)
	}
	return nil, nil
}

func (in *Interp) evaluateBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	// the logical operators short-circuit and return the deciding operand
	switch e.Op.Kind {
	case token.OR:
		if Truthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)
	case token.AND:
		if !Truthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)
	}

	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.BANGEQ:
		return !Equal(left, right), nil
	case token.EQEQ:
		return Equal(left, right), nil
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &report.RuntimeError{Token: e.Op, Msg: "Operands must be two numbers or two strings"}
	}

	// number-only operations
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, &report.RuntimeError{Token: e.Op, Msg: "Operands must be numbers"}
	}

	switch e.Op.Kind {
	case token.MINUS:
		return ln - rn, nil
	case token.SLASH:
		// division by zero yields an IEEE-754 infinity or NaN
		return ln / rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.GT:
		return ln > rn, nil
	case token.GTEQ:
		return ln >= rn, nil
	case token.LT:
		return ln < rn, nil
	case token.LTEQ:
		return ln <= rn, nil
	}
	return nil, nil
}

func (in *Interp) evaluateCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &report.RuntimeError{Token: e.Paren, Msg: "Can only call functions and classes"}
	}

	if err := checkArity(fn, len(e.Args), e.Paren); err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return fn.Call(in, args)
}

// checkArity validates the argument count against the callable's contract
// in one uniform place, whether the contract is fixed or a range.
func checkArity(fn Callable, got int, paren token.Token) error {
	ar := fn.Arity()
	if got >= ar.Min && got <= ar.Max {
		return nil
	}
	var msg string
	if ar.Min == ar.Max {
		msg = fmt.Sprintf("Expected %d argument(s) but got %d", ar.Min, got)
	} else {
		msg = fmt.Sprintf("Expected %d to %d argument(s) but got %d", ar.Min, ar.Max, got)
	}
	return &report.RuntimeError{Token: paren, Msg: msg}
}

func (in *Interp) evaluateSuper(e *ast.SuperExpr) (Value, error) {
	dist := in.locals[e]

	superclass := in.env.GetAt(dist, in.lang.KeywordFor(token.SUPER)).(*Class)
	object := in.env.GetAt(dist-1, in.lang.KeywordFor(token.THIS)).(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, &report.RuntimeError{
			Token: e.Method,
			Msg:   `Undefined property "` + e.Method.Lexeme + `"`,
		}
	}
	return method.Bind(object), nil
}

// lookUpVariable reads a variable or this reference: at the resolved depth
// when the side table has an entry, from globals otherwise.
func (in *Interp) lookUpVariable(name token.Token, e ast.Expr) (Value, error) {
	if dist, ok := in.locals[e]; ok {
		return in.env.GetAt(dist, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}
