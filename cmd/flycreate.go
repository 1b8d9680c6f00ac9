package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/flycreate/internal/control/cli"
)

func main() {
	// set up stderr logger by default, commands replace it once they know the
	// logging options
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
		os.Exit(1)
	}

	if parser.Active == nil {
		if cli.Opts.Version {
			cmd := cli.VersionCommand{}
			if err := cmd.Execute([]string{}); err != nil {
				fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
				os.Exit(1)
			}
			return
		}
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}
}
