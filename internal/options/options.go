// Package options contains the program options.
package options

// Display backends.
const (
	DisplaySDL      = "sdl"
	DisplayTerminal = "terminal"
	DisplayNone     = "none"
)

// Program options of the virtual machine.
type Program struct {
	Input string // ROM file to run

	Display string // presentation backend: sdl, terminal or none
	Scale   int    // pixel scale factor of the sdl window

	Rate          int    // instructions per second, 0 runs unpaced
	MaxCycles     uint64 // stop after this many cycles, 0 runs until quit
	StackCapacity int    // call stack entries

	IndexOverflowFlag bool // set VF when I overflows on ADD I, Vx

	List  bool // print the program listing instead of running it
	Trace bool // log every executed instruction
	Debug bool
	Quiet bool
}

// Default values of the program options.
const (
	DefaultRate  = 700
	DefaultScale = 8
)
