package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tododemo/internal/cli"
	"github.com/idilsaglam/tododemo/internal/config"
	"github.com/idilsaglam/tododemo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ExitOnError)
	fs.Usage = func() { cli.PrintHelp(fs.Output()) }

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(fs.Args(), cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
