// Package runner handles the ROM loading and execution workflow.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/driver"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/pacer"
	"github.com/retroenv/retrogolib/log"
)

// Frontend presents frames and provides the keypad state.
type Frontend interface {
	driver.Presenter
	driver.Keypad
}

// Run loads the ROM and executes it until the user quits, a fault occurs or
// the cycle limit is reached.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, frontend Frontend) error {
	machine, size, err := loadMachine(logger, opts)
	if err != nil {
		return err
	}
	logger.Info("Loaded ROM",
		log.String("file", opts.Input),
		log.Int("size", size))

	ticker := pacer.New(opts.Rate)
	defer ticker.Stop()

	drv := driver.New(logger, machine, frontend, frontend, ticker, driver.Options{
		Rate:      opts.Rate,
		MaxCycles: opts.MaxCycles,
		Trace:     opts.Trace,
	})
	if err := drv.Run(ctx); err != nil {
		return fmt.Errorf("running %s: %w", opts.Input, err)
	}
	return nil
}

// List loads the ROM and writes a listing of the program to the writer.
func List(logger *log.Logger, opts options.Program, w io.Writer) error {
	machine, size, err := loadMachine(logger, opts)
	if err != nil {
		return err
	}

	program := machine.Memory[chip8.ProgramStart : chip8.ProgramStart+size]
	if err := disasm.List(w, program, chip8.ProgramStart); err != nil {
		return fmt.Errorf("listing program: %w", err)
	}
	return nil
}

func loadMachine(logger *log.Logger, opts options.Program) (*chip8.Machine, int, error) {
	if !detector.New(logger).IsCHIP8(opts.Input) {
		logger.Warn("File extension does not indicate a CHIP-8 ROM",
			log.String("file", opts.Input))
	}

	machine := chip8.New(config.MachineConfig(opts))
	size, err := loader.New().Load(opts.Input, machine)
	if err != nil {
		return nil, 0, fmt.Errorf("loading ROM: %w", err)
	}
	return machine, size, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("chip8vm", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
