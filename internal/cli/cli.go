// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags}
	}

	args := flags.Args()
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}
	if len(args) != 1 {
		return opts, &UsageError{flags: flags}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Fprintf(os.Stderr, "usage: chip8vm [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Fprintln(os.Stderr)
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Display = strings.ToLower(opts.Display)
	if opts.Trace {
		opts.Debug = true
	}

	validDisplays := []string{options.DisplaySDL, options.DisplayTerminal, options.DisplayNone}
	valid := false
	for _, display := range validDisplays {
		if opts.Display == display {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported display: %s. Valid options: %s",
			opts.Display, strings.Join(validDisplays, ", "))
	}

	switch {
	case opts.Rate < 0:
		return fmt.Errorf("invalid instruction rate %d, must not be negative", opts.Rate)
	case opts.Scale < 1:
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	case opts.StackCapacity < 1:
		return fmt.Errorf("invalid stack capacity %d, must be at least 1", opts.StackCapacity)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Display, "display", options.DisplaySDL, "display to present the screen on (sdl/terminal/none)")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "pixel scale factor of the sdl window")
	flags.IntVar(&opts.Rate, "rate", options.DefaultRate, "instructions executed per second, 0 runs unpaced")
	flags.Uint64Var(&opts.MaxCycles, "max-cycles", 0, "stop after executing this many instructions, 0 runs until quit")
	flags.IntVar(&opts.StackCapacity, "stack", chip8.DefaultStackCapacity, "call stack capacity in return addresses")
	flags.BoolVar(&opts.IndexOverflowFlag, "vf-index-overflow", true, "set VF when adding to the index register overflows 16 bits")
	flags.BoolVar(&opts.List, "list", false, "print a listing of the program and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
