package interp

import (
	"github.com/dolthub/swiss"

	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/token"
)

// An Environment holds the variable bindings of one lexical scope and a
// reference to its enclosing scope, forming an acyclic chain rooted at the
// global environment. Closures share environments by reference; chains stay
// alive for as long as any closure captures them.
type Environment struct {
	values    *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment returns an empty environment enclosed by the given one
// (nil for the global environment).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    swiss.NewMap[string, Value](8),
		enclosing: enclosing,
	}
}

// Define binds name to value in this environment, replacing any previous
// binding of the same name.
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// Get looks name up along the environment chain.
func (e *Environment) Get(name token.Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name.Lexeme); ok {
			return v, nil
		}
	}
	return nil, &report.RuntimeError{
		Token: name,
		Msg:   `Undefined variable "` + name.Lexeme + `" on variable call`,
	}
}

// Assign writes to an existing binding along the environment chain. It is
// an error if no scope in the chain binds the name.
func (e *Environment) Assign(name token.Token, v Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name.Lexeme); ok {
			env.values.Put(name.Lexeme, v)
			return nil
		}
	}
	return &report.RuntimeError{
		Token: name,
		Msg:   `Undefined variable "` + name.Lexeme + `" on variable assignment`,
	}
}

// GetAt reads name in the environment dist hops up the chain. The resolver
// guarantees the binding exists at that depth.
func (e *Environment) GetAt(dist int, name string) Value {
	v, _ := e.ancestor(dist).values.Get(name)
	return v
}

// AssignAt writes name in the environment dist hops up the chain.
func (e *Environment) AssignAt(dist int, name token.Token, v Value) {
	e.ancestor(dist).values.Put(name.Lexeme, v)
}

func (e *Environment) ancestor(dist int) *Environment {
	env := e
	for i := 0; i < dist; i++ {
		env = env.enclosing
	}
	return env
}
