package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"chip8vm"}, args...)

	return ParseFlags()
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseArgs(t, "game.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, options.DisplaySDL, opts.Display)
	assert.Equal(t, options.DefaultScale, opts.Scale)
	assert.Equal(t, options.DefaultRate, opts.Rate)
	assert.Equal(t, uint64(0), opts.MaxCycles)
	assert.Equal(t, chip8.DefaultStackCapacity, opts.StackCapacity)
	assert.True(t, opts.IndexOverflowFlag)
	assert.False(t, opts.List)
	assert.False(t, opts.Trace)
}

func TestParseFlags(t *testing.T) {
	opts, err := parseArgs(t, "-display", "TERMINAL", "-rate", "0", "-max-cycles", "500",
		"-stack", "16", "-vf-index-overflow=false", "-trace", "game.ch8")
	assert.NoError(t, err)

	assert.Equal(t, options.DisplayTerminal, opts.Display)
	assert.Equal(t, 0, opts.Rate)
	assert.Equal(t, uint64(500), opts.MaxCycles)
	assert.Equal(t, 16, opts.StackCapacity)
	assert.False(t, opts.IndexOverflowFlag)
	assert.True(t, opts.Trace)
	assert.True(t, opts.Debug)
}

func TestParseFlagsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two files", []string{"a.ch8", "b.ch8"}},
		{"flag after file", []string{"a.ch8", "-debug"}},
		{"unknown flag", []string{"-unknown", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlagsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"display", []string{"-display", "vga", "a.ch8"}, "unsupported display"},
		{"rate", []string{"-rate", "-1", "a.ch8"}, "invalid instruction rate"},
		{"scale", []string{"-scale", "0", "a.ch8"}, "invalid scale"},
		{"stack", []string{"-stack", "0", "a.ch8"}, "invalid stack capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}
