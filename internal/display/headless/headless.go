// Package headless provides a display backend without any output or input.
package headless

import "github.com/retroenv/chip8vm/internal/chip8"

// Display counts presented frames and keeps the last one. No key is ever
// pressed.
type Display struct {
	Frames int
	Last   chip8.Frame
}

// New returns a new headless display.
func New() *Display {
	return &Display{}
}

// Present stores the frame.
func (d *Display) Present(frame chip8.Frame) error {
	d.Frames++
	d.Last = frame
	return nil
}

// PollKeys leaves the latch unchanged.
func (d *Display) PollKeys(_ *chip8.KeyLatch) error {
	return nil
}
