// Package maincmd implements the wiz command: it runs a .wiz source file or
// starts the interactive REPL, selecting the locale from the file's
// language directive or from the interactive menu.
package maincmd

import (
	"fmt"
	"strings"

	"github.com/mna/mainer"
)

const binName = "wiz"

// Exit codes of the command, following the sysexits convention: 64 for
// usage and input problems, 65 for compile-time errors, 70 for runtime
// errors.
const (
	exitUsage   mainer.ExitCode = 64
	exitCompile mainer.ExitCode = 65
	exitRuntime mainer.ExitCode = 70
)

var (
	usage = fmt.Sprintf("Usage: %s [script].wiz\n", binName)

	longUsage = fmt.Sprintf(`usage: %s [<script>.wiz]
       %[1]s -h|--help
       %[1]s -v|--version

Interpreter for the %[1]s programming language.

With a <script>.wiz argument, runs the script; the first non-blank line of
the file must be a language directive such as "@ English". Without
arguments, starts an interactive session after asking for the language.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the wiz command.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

// SetArgs receives the positional arguments.
func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

// Main is the entry point of the command.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, usage)
		return exitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if len(c.args) > 1 {
		fmt.Fprint(stdio.Stdout, usage)
		return exitUsage
	}

	if len(c.args) == 1 {
		path := c.args[0]
		if !strings.HasSuffix(path, ".wiz") {
			fmt.Fprintf(stdio.Stdout, "Can only run files ending with %q extension\n", ".wiz")
			return exitUsage
		}
		return RunFile(path, stdio)
	}

	return c.repl(stdio)
}
