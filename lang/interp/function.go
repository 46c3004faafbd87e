package interp

import (
	"github.com/wiz-lang/wiz/lang/ast"
	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/token"
)

// Arity is the argument-count contract of a callable: a fixed count has
// Min == Max, a range (like the read native's 0-or-1) has Min < Max.
type Arity struct {
	Min, Max int
}

// FixedArity returns the contract for exactly n arguments.
func FixedArity(n int) Arity { return Arity{Min: n, Max: n} }

// A Callable value may be the callee of a call expression.
type Callable interface {
	Arity() Arity
	Call(in *Interp, args []Value) (Value, error)
	String() string
}

// A Function is a user-declared function or method paired with the
// environment in effect at its declaration site. Binding it to an instance
// produces a new Function whose closure is extended with one scope binding
// the this keyword.
type Function struct {
	decl          *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
	lang          *language.Language
}

// NewFunction returns the function value for decl closing over closure.
func NewFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool, lang *language.Language) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer, lang: lang}
}

// Bind returns a copy of the function whose closure binds the locale's
// this keyword to the instance.
func (f *Function) Bind(inst *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define(f.lang.KeywordFor(token.THIS), inst)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer, lang: f.lang}
}

// Arity implements Callable.
func (f *Function) Arity() Arity { return FixedArity(len(f.decl.Params)) }

// Call implements Callable: it runs the body in a fresh environment
// extending the closure, with the parameters bound to the arguments. An
// initializer always yields the bound instance, even on a bare return.
func (f *Function) Call(in *Interp, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, prm := range f.decl.Params {
		env.Define(prm.Lexeme, args[i])
	}

	ret, err := in.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, f.lang.KeywordFor(token.THIS)), nil
	}
	if ret != nil {
		return ret.value, nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return `<function "` + f.decl.Name.Lexeme + `">`
}
