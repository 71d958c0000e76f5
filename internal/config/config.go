// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineConfig returns the machine configuration for the program options.
func MachineConfig(opts options.Program) chip8.Config {
	cfg := chip8.DefaultConfig()
	cfg.StackCapacity = opts.StackCapacity
	cfg.IndexOverflowFlag = opts.IndexOverflowFlag
	return cfg
}
