package interp

import (
	"fmt"
	"strings"
	"time"

	"github.com/wiz-lang/wiz/lang/language"
)

// A native is a standard-library function implemented in the host. Natives
// carry an arity contract validated at the call site like any other
// callable; read is the only one with a range.
type native struct {
	name  string
	arity Arity
	fn    func(in *Interp, args []Value) (Value, error)
}

func (n *native) Arity() Arity { return n.arity }
func (n *native) Call(in *Interp, args []Value) (Value, error) {
	return n.fn(in, args)
}
func (n *native) String() string { return `<native function "` + n.name + `">` }

// defineStdLib installs the four standard-library functions into the global
// environment under their locale-specific names.
func defineStdLib(globals *Environment, lang *language.Language) {
	start := time.Now()

	globals.Define(lang.StdLib[language.Clock], &native{
		name:  lang.StdLib[language.Clock],
		arity: FixedArity(0),
		fn: func(in *Interp, args []Value) (Value, error) {
			return time.Since(start).Seconds(), nil
		},
	})

	globals.Define(lang.StdLib[language.Write], &native{
		name:  lang.StdLib[language.Write],
		arity: FixedArity(1),
		fn: func(in *Interp, args []Value) (Value, error) {
			fmt.Fprintln(in.stdio.Stdout, Stringify(args[0], in.lang))
			return nil, nil
		},
	})

	globals.Define(lang.StdLib[language.Read], &native{
		name:  lang.StdLib[language.Read],
		arity: Arity{Min: 0, Max: 1},
		fn: func(in *Interp, args []Value) (Value, error) {
			if len(args) == 1 {
				fmt.Fprint(in.stdio.Stdout, Stringify(args[0], in.lang))
			}
			line, err := in.stdin.ReadString('\n')
			line = strings.TrimRight(line, "\r\n")
			if err != nil && line == "" {
				return "", nil
			}
			return line, nil
		},
	})

	globals.Define(lang.StdLib[language.Text], &native{
		name:  lang.StdLib[language.Text],
		arity: FixedArity(1),
		fn: func(in *Interp, args []Value) (Value, error) {
			return Stringify(args[0], in.lang), nil
		},
	})
}
