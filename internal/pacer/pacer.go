// Package pacer paces the instruction cycles of the virtual machine.
package pacer

import (
	"context"
	"time"
)

// Ticker paces cycles to a fixed rate per second.
type Ticker struct {
	ticker *time.Ticker
}

// New returns a pacer for the given rate of cycles per second. A rate of 0
// or less returns a pacer that does not wait.
func New(rate int) *Ticker {
	if rate <= 0 {
		return &Ticker{}
	}
	return &Ticker{
		ticker: time.NewTicker(time.Second / time.Duration(rate)),
	}
}

// Wait blocks until the next cycle is due or the context is done.
func (t *Ticker) Wait(ctx context.Context) error {
	if t.ticker == nil {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

// Stop releases the resources of the pacer.
func (t *Ticker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
}
