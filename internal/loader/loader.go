// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load resets the machine and loads the ROM file into its program memory.
// It returns the size of the loaded program.
func (l *Loader) Load(path string, machine *chip8.Machine) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("reading file info of %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}

	machine.Reset()
	if err := machine.Load(file, info.Size()); err != nil {
		return 0, fmt.Errorf("loading program %s: %w", path, err)
	}
	return int(info.Size()), nil
}
