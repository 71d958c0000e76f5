package driver

import (
	"context"

	"github.com/retroenv/chip8vm/internal/chip8"
)

// mockPresenter records all presented frames.
type mockPresenter struct {
	frames []chip8.Frame
	err    error
}

func (p *mockPresenter) Present(frame chip8.Frame) error {
	p.frames = append(p.frames, frame)
	return p.err
}

// mockKeypad replays a key latch sequence, one entry per poll. The last entry
// is repeated once the sequence is exhausted.
type mockKeypad struct {
	sequence []chip8.KeyLatch
	polls    int
	quitAt   int // poll number returning ErrQuit, 0 disables it
}

func (k *mockKeypad) PollKeys(latch *chip8.KeyLatch) error {
	k.polls++
	if k.quitAt > 0 && k.polls >= k.quitAt {
		return ErrQuit
	}
	if len(k.sequence) == 0 {
		return nil
	}
	index := k.polls - 1
	if index >= len(k.sequence) {
		index = len(k.sequence) - 1
	}
	*latch = k.sequence[index]
	return nil
}

// mockPacer counts waits and never blocks.
type mockPacer struct {
	waits int
}

func (p *mockPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}
