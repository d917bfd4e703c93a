package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/weeks/internal/cli"
	"github.com/alexanderramin/weeks/internal/cli/formatter"
	"github.com/alexanderramin/weeks/internal/config"
	"github.com/alexanderramin/weeks/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Defaults, then $WEEKS_CONFIG, then WEEKS_* environment variables.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Color {
		formatter.DisableColor()
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr, level)
	}

	app := &cli.App{
		Calendar: service.NewCalendarService(service.SystemClock{}, observer),
		Config:   cfg,
	}

	// The picker and the interactive view need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
