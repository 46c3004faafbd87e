package maincmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mna/mainer"

	"github.com/wiz-lang/wiz/lang/language"
)

const blue = "\x1b[34m"

// selectLanguage asks the user for the REPL language. On a terminal it
// shows an arrow-key menu; otherwise (or when raw mode is unavailable) it
// falls back to a numbered selection read from rd.
func selectLanguage(stdio mainer.Stdio, rd *bufio.Reader) *language.Language {
	names := language.Names()

	idx := -1
	if f, ok := stdio.Stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		if i, err := rawSelect(stdio, "Select language", names); err == nil {
			idx = i
		}
	}
	if idx < 0 {
		idx = numberedSelect(stdio, rd, "Select language", names)
	}

	fmt.Fprintf(stdio.Stdout, "%sSelected language: %s%s\n", blue, names[idx], reset)
	return language.Lookup(names[idx])
}

// numberedSelect is the non-terminal fallback: print the options with
// numbers and read the selection as a line. Invalid input selects the
// first option.
func numberedSelect(stdio mainer.Stdio, rd *bufio.Reader, question string, options []string) int {
	fmt.Fprintln(stdio.Stdout, question)
	for i, opt := range options {
		fmt.Fprintf(stdio.Stdout, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprint(stdio.Stdout, "Enter number: ")

	line, _ := rd.ReadString('\n')
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
		return n - 1
	}
	return 0
}
