package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/i474232898/weather-cli/internal/cli"
)

// Version is set via ldflags during build.
var Version = "dev"

func main() {
	app := &cli.App{
		Stdout:     colorable.NewColorableStdout(),
		Stderr:     colorable.NewColorableStderr(),
		Terminal:   isTerminal(os.Stdout),
		LoadDotEnv: true,
		Version:    Version,
	}

	// One request, no cancellation beyond the transport's own behaviour.
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Code == cli.ExitUsage {
				fmt.Fprintln(os.Stderr, "Run 'weather --help' for usage.")
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(cli.ExitFailure)
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
