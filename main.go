// Package main implements the main entry point for a CHIP-8 virtual machine
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/cli"
	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/display/headless"
	"github.com/retroenv/chip8vm/internal/display/sdlwindow"
	"github.com/retroenv/chip8vm/internal/display/terminal"
	"github.com/retroenv/chip8vm/internal/driver"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			runner.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	// the terminal display owns stdout, keep log output away from it
	if opts.Display == options.DisplayTerminal && !opts.List {
		opts.Quiet = true
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	runner.PrintBanner(logger, opts, version, commit, date)

	if opts.List {
		if err := runner.List(logger, opts, os.Stdout); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	if err := run(ctx, logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	frontend, closeFrontend, err := openFrontend(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFrontend(); err != nil {
			logger.Error("Closing display failed", log.Err(err))
		}
	}()

	err = runner.Run(ctx, logger, opts, frontend)
	switch {
	case errors.Is(err, driver.ErrQuit):
		logger.Info("Quit requested")
		return nil
	case errors.Is(err, context.Canceled):
		logger.Info("Operation cancelled")
		return nil
	default:
		return err
	}
}

func openFrontend(opts options.Program) (runner.Frontend, func() error, error) {
	switch opts.Display {
	case options.DisplaySDL:
		window, err := sdlwindow.New(opts.Scale)
		if err != nil {
			return nil, nil, fmt.Errorf("opening window: %w", err)
		}
		return window, window.Close, nil

	case options.DisplayTerminal:
		term := terminal.New(os.Stdout, os.Stdin)
		if err := term.EnableRawInput(os.Stdin); err != nil {
			return nil, nil, fmt.Errorf("opening terminal: %w", err)
		}
		if err := term.Start(); err != nil {
			_ = term.Close()
			return nil, nil, fmt.Errorf("opening terminal: %w", err)
		}
		return term, term.Close, nil

	default:
		return headless.New(), func() error { return nil }, nil
	}
}
