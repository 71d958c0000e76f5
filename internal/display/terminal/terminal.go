// Package terminal provides a display backend rendering to an ANSI terminal
// and reading the keypad from the raw terminal input.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/driver"
)

// DefaultHoldTime is the duration a key stays pressed after it was read.
// Terminals only report key presses, not releases.
const DefaultHoldTime = 150 * time.Millisecond

const (
	escape      = 0x1b
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Terminal presents frames using half block characters, two display rows
// per text line.
type Terminal struct {
	out  *bufio.Writer
	in   io.Reader
	buf  []byte
	hold time.Duration
	now  func() time.Time

	pressedAt [chip8.KeyCount]time.Time
	restore   func() error
}

// New returns a terminal display writing to out and reading keys from in.
func New(out io.Writer, in io.Reader) *Terminal {
	return &Terminal{
		out:  bufio.NewWriter(out),
		in:   in,
		buf:  make([]byte, 64),
		hold: DefaultHoldTime,
		now:  time.Now,
	}
}

// Start prepares the terminal for output.
func (t *Terminal) Start() error {
	if _, err := t.out.WriteString(clearScreen + hideCursor); err != nil {
		return fmt.Errorf("writing terminal setup: %w", err)
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Close restores the cursor and the terminal mode.
func (t *Terminal) Close() error {
	_, _ = t.out.WriteString(showCursor + "\n")
	err := t.out.Flush()
	if t.restore != nil {
		if restoreErr := t.restore(); restoreErr != nil {
			return fmt.Errorf("restoring terminal mode: %w", restoreErr)
		}
	}
	if err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Present draws the frame.
func (t *Terminal) Present(frame chip8.Frame) error {
	if _, err := t.out.WriteString(cursorHome + renderFrame(frame)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

// PollKeys reads all pending input and latches every mapped key for the hold
// time. Escape requests to quit.
func (t *Terminal) PollKeys(latch *chip8.KeyLatch) error {
	n, err := t.in.Read(t.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading terminal input: %w", err)
	}

	now := t.now()
	for _, b := range t.buf[:n] {
		if b == escape {
			return driver.ErrQuit
		}
		if key, ok := display.KeyForRune(rune(b)); ok {
			t.pressedAt[key] = now
		}
	}

	for key, pressedAt := range t.pressedAt {
		latch[key] = !pressedAt.IsZero() && now.Sub(pressedAt) < t.hold
	}
	return nil
}

// renderFrame renders the frame as text, every character covers two
// vertically adjacent pixels.
func renderFrame(frame chip8.Frame) string {
	var sb strings.Builder
	sb.Grow((chip8.Width*3 + 1) * chip8.Height / 2)

	for y := 0; y < chip8.Height; y += 2 {
		for x := 0; x < chip8.Width; x++ {
			top, bottom := frame[y][x], frame[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
