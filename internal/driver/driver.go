// Package driver implements the instruction cycle loop of the virtual machine.
// Each cycle polls the keypad, fetches, decodes and executes one instruction,
// forwards a changed display to the presenter and waits for the pacer.
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

const (
	// TimerRate is the rate in Hz at which the delay and sound timers decrement.
	TimerRate = 60

	// ReferenceRate is the instruction rate assumed for the timer cadence
	// when cycles are not paced.
	ReferenceRate = 700
)

// ErrQuit is returned by a Keypad when the user requested to quit.
var ErrQuit = errors.New("quit requested")

// Presenter shows a complete display frame.
type Presenter interface {
	Present(frame chip8.Frame) error
}

// Keypad updates the key latch with the current key states.
type Keypad interface {
	PollKeys(latch *chip8.KeyLatch) error
}

// Pacer blocks until the next cycle is due.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Options control the cycle loop.
type Options struct {
	Rate      int    // instruction cycles per second, used for the timer cadence
	MaxCycles uint64 // 0 runs until an error occurs
	Trace     bool   // log every executed instruction
}

// CycleError wraps a fault with the location it occurred at.
type CycleError struct {
	PC   uint16
	Word uint16
	Err  error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle at 0x%03X (word 0x%04X): %v", e.PC, e.Word, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}

// Driver runs the machine.
type Driver struct {
	logger    *log.Logger
	machine   *chip8.Machine
	presenter Presenter
	keypad    Keypad
	pacer     Pacer
	opts      Options

	cycles          uint64
	cyclesPerTick   uint64
	cyclesSinceTick uint64
}

// New returns a new driver for the machine.
func New(logger *log.Logger, machine *chip8.Machine, presenter Presenter, keypad Keypad,
	pacer Pacer, opts Options) *Driver {

	rate := opts.Rate
	if rate <= 0 {
		rate = ReferenceRate
	}
	cyclesPerTick := uint64(1)
	if rate > TimerRate {
		cyclesPerTick = uint64(rate / TimerRate)
	}

	return &Driver{
		logger:        logger,
		machine:       machine,
		presenter:     presenter,
		keypad:        keypad,
		pacer:         pacer,
		opts:          opts,
		cyclesPerTick: cyclesPerTick,
	}
}

// Run executes cycles until a fault occurs, the keypad requests to quit, the
// context is canceled or the cycle limit is reached. Reaching the cycle limit
// returns nil.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("Starting emulation",
		log.Hex("pc", d.machine.PC),
		log.Int("rate", d.opts.Rate))

	for d.opts.MaxCycles == 0 || d.cycles < d.opts.MaxCycles {
		if err := d.keypad.PollKeys(&d.machine.Keys); err != nil {
			return fmt.Errorf("polling keys: %w", err)
		}

		if err := d.Step(); err != nil {
			d.logger.Error("Machine fault", log.Err(err))
			return err
		}

		if err := d.pacer.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for next cycle: %w", err)
		}
	}

	d.logger.Info("Cycle limit reached", log.Int("cycles", int(d.cycles)))
	return nil
}

// Step executes a single instruction cycle.
func (d *Driver) Step() error {
	pc := d.machine.PC
	word, err := d.machine.Fetch()
	if err != nil {
		return &CycleError{PC: pc, Err: err}
	}

	ins, err := chip8.Decode(word)
	if err != nil {
		return &CycleError{PC: pc, Word: word, Err: err}
	}

	if d.opts.Trace {
		d.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("word", word),
			log.String("instruction", disasm.Format(word)))
	}

	if err := d.machine.Execute(ins); err != nil {
		return &CycleError{PC: pc, Word: word, Err: err}
	}
	d.cycles++

	d.tickTimers()

	if d.machine.Display.TakeDirty() {
		if err := d.presenter.Present(d.machine.Display.Snapshot()); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}
	}
	return nil
}

// Cycles returns the number of executed instruction cycles.
func (d *Driver) Cycles() uint64 {
	return d.cycles
}

// tickTimers decrements the machine timers at TimerRate based on the number
// of executed cycles.
func (d *Driver) tickTimers() {
	d.cyclesSinceTick++
	if d.cyclesSinceTick >= d.cyclesPerTick {
		d.cyclesSinceTick = 0
		d.machine.DecrementTimers()
	}
}
