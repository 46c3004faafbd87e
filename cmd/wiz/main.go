package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/wiz-lang/wiz/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "0.1.0"
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
