package interp

import (
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/token"
)

// A Class is the runtime value of a class declaration. Method lookup
// consults the class's own methods first and then walks the superclass
// chain.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod returns the method bound under name on the class or its
// superclass chain, or nil.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity implements Callable: constructing an instance takes the arguments
// of the init method, or none.
func (c *Class) Arity() Arity {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return FixedArity(0)
}

// Call implements Callable: it constructs a new instance and runs the init
// method bound to it, if the class has one.
func (c *Class) Call(in *Interp, args []Value) (Value, error) {
	inst := &Instance{class: c, fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func (c *Class) String() string { return `<class "` + c.Name + `">` }

// An Instance is an object of a class, holding its own field values.
// Fields shadow methods of the same name on reads.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// Get reads a property: own fields first, then class methods, which are
// returned bound to the instance.
func (o *Instance) Get(name token.Token) (Value, error) {
	if v, ok := o.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m := o.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(o), nil
	}
	return nil, &report.RuntimeError{
		Token: name,
		Msg:   `Undefined property "` + name.Lexeme + `"`,
	}
}

// Set writes a field, creating it if needed.
func (o *Instance) Set(name token.Token, v Value) {
	o.fields[name.Lexeme] = v
}

func (o *Instance) String() string { return o.class.Name + " instance" }
