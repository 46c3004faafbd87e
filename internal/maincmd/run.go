package maincmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/wiz-lang/wiz/lang/interp"
	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/parser"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/resolver"
	"github.com/wiz-lang/wiz/lang/scanner"
)

const (
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

// RunFile runs the source file at path: it reads it, resolves the language
// directive, and drives the scan/parse/resolve/interpret pipeline,
// translating the error sink's flags into the exit code.
func RunFile(path string, stdio mainer.Stdio) mainer.ExitCode {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%sError: File not found%s\n\n", red, reset)
		fmt.Fprintf(stdio.Stderr, " %s\n\n", path)
		fmt.Fprintf(stdio.Stderr, " Verify if the path name is correct\n")
		return exitUsage
	}
	src := string(b)

	lang, ec := detectLanguage(src, stdio)
	if lang == nil {
		return ec
	}

	h := report.NewHandler(stdio.Stderr, lang)
	in := interp.New(lang, h, stdio, bufio.NewReader(stdio.Stdin))
	runSource(src, false, lang, h, in)

	switch {
	case h.HadError:
		return exitCompile
	case h.HadRuntimeError:
		return exitRuntime
	}
	return mainer.Success
}

// runSource drives one source unit through the pipeline. Each phase stops
// the run if it flagged an error; the resolver's side table is merged into
// the interpreter before execution.
func runSource(src string, repl bool, lang *language.Language, h *report.Handler, in *interp.Interp) {
	toks := scanner.Scan(src, lang, h)
	if h.HadError {
		return
	}

	stmts := parser.Parse(toks, h)
	if h.HadError {
		return
	}

	locals := resolver.Resolve(stmts, lang, h)
	if h.HadError {
		return
	}

	in.AddLocals(locals)
	in.Interpret(stmts, repl)
}

// detectLanguage resolves the locale directive that must open a source
// file. It returns a nil language (and the exit code) after printing the
// diagnostic when the directive is missing or names an unknown language.
func detectLanguage(src string, stdio mainer.Stdio) (*language.Language, mainer.ExitCode) {
	name, ok := language.Directive(src)
	if !ok {
		if n, line := language.FirstNonBlank(src); n > 0 {
			fmt.Fprintf(stdio.Stderr, "%sError: Language not defined%s\n\n", red, reset)
			fmt.Fprintf(stdio.Stderr, " %d | %s\n\n", n, line)
			fmt.Fprintf(stdio.Stderr, " Language must be defined before code\n")
			return nil, exitUsage
		}
		// an all-blank file has nothing to run and no directive to honor
		return nil, mainer.Success
	}

	lang := language.Lookup(name)
	if lang == nil {
		fmt.Fprintln(stdio.Stderr, "Incorrect language")
		return nil, exitUsage
	}
	return lang, mainer.Success
}
