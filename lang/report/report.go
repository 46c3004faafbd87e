// Package report implements the shared error sink of the pipeline. The
// scanner, parser, resolver and interpreter all report through the same
// Handler, which accumulates the HadError/HadRuntimeError flags and prints
// localized, source-underlined diagnostics.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/token"
)

const (
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

// A RuntimeError is an error raised by the interpreter, anchored to the
// token whose evaluation failed. It unwinds the evaluator back to the
// top-level driver and is reported through Handler.Runtime.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

// A Handler is the process-wide error sink. It keeps the source lines of
// the unit being processed for diagnostic underlining.
type Handler struct {
	Out  io.Writer
	Lang *language.Language

	HadError        bool
	HadRuntimeError bool

	lines []string
}

// NewHandler returns a Handler printing diagnostics to out with the error
// messages of lang.
func NewHandler(out io.Writer, lang *language.Language) *Handler {
	return &Handler{Out: out, Lang: lang}
}

// SetSource records the source lines used for underlining. The scanner
// calls it before scanning each unit.
func (h *Handler) SetSource(src string) {
	h.lines = strings.Split(src, "\n")
}

// Error reports a compile-time error (parser or resolver) at tok and sets
// HadError.
func (h *Handler) Error(tok token.Token, msg string) {
	h.print("Error", tok, msg)
	h.HadError = true
}

// Syntax reports a scanner error of the given kind at tok, with detail
// printed on the underline line, and sets HadError. The headline is the
// locale's message for the kind.
func (h *Handler) Syntax(tok token.Token, kind language.ErrorKind, detail string) {
	h.printDetail("Syntax error", tok, h.Lang.ErrorMessage(kind), detail)
	h.HadError = true
}

// Runtime reports a runtime error and sets HadRuntimeError.
func (h *Handler) Runtime(err *RuntimeError) {
	h.print("Runtime error", err.Token, err.Msg)
	h.HadRuntimeError = true
}

func (h *Handler) print(origin string, t token.Token, msg string) {
	h.printDetail(origin, t, msg, "")
}

func (h *Handler) printDetail(origin string, t token.Token, headline, detail string) {
	fmt.Fprintf(h.Out, "%s%s at %s: %s%s\n\n", red, origin, where(t), headline, reset)
	fmt.Fprintf(h.Out, " %d | %s\n", t.Line, h.line(t.Line))
	under := h.underline(t)
	if detail != "" {
		fmt.Fprintf(h.Out, "%s %s\n\n", under, detail)
	} else {
		fmt.Fprintf(h.Out, "%s\n\n", under)
	}
}

// where names the offending token: quoted lexeme for ordinary tokens, "end
// of line" / "end of program" for the structural ones, and the bare quote
// character for unterminated strings.
func where(t token.Token) string {
	switch t.Kind {
	case token.NEWLINE:
		return "end of line"
	case token.EOF:
		return "end of program"
	case token.QUOTES:
		return t.Lexeme
	}
	return `"` + t.Lexeme + `"`
}

func (h *Handler) line(n int) string {
	if n >= 1 && n <= len(h.lines) {
		return h.lines[n-1]
	}
	return ""
}

// underline builds the caret line pointing at the token: the printed source
// line is prefixed by " <line> | ", so the first caret lands under column
// Col of the source.
func (h *Handler) underline(t token.Token) string {
	digits := len(fmt.Sprint(t.Line))
	pad := strings.Repeat(" ", digits+3+t.Col)
	n := utf8.RuneCountInString(t.Lexeme)
	if n == 0 || t.Kind == token.NEWLINE {
		n = 1
	}
	return pad + strings.Repeat("^", n)
}
