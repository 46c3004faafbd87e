package maincmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mna/mainer"

	"github.com/wiz-lang/wiz/lang/interp"
	"github.com/wiz-lang/wiz/lang/report"
)

// repl runs the interactive session: it selects the language, then reads
// one line at a time, printing the value of top-level expression
// statements. Compile errors are cleared between lines; an interrupt exits
// with code 0.
func (c *Cmd) repl(stdio mainer.Stdio) mainer.ExitCode {
	fmt.Fprintf(stdio.Stdout, "Wiz %s\n", c.BuildVersion)

	rd := bufio.NewReader(stdio.Stdin)
	lang := selectLanguage(stdio, rd)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		<-sig
		fmt.Fprintln(stdio.Stdout, "\nExiting...")
		os.Exit(0)
	}()

	h := report.NewHandler(stdio.Stderr, lang)
	in := interp.New(lang, h, stdio, rd)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		line, err := rd.ReadString('\n')
		if line != "" {
			runSource(line, true, lang, h, in)
			h.HadError = false
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(stdio.Stderr, err)
			}
			fmt.Fprintln(stdio.Stdout)
			return mainer.Success
		}
	}
}
