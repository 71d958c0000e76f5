package chip8

// fixedRandom is a random source that always returns the same value.
type fixedRandom struct {
	value int
	calls int
}

func (r *fixedRandom) Intn(n int) int {
	r.calls++
	return r.value % n
}

// newTestMachine returns a machine with a deterministic random source.
func newTestMachine(random RandomSource) *Machine {
	cfg := DefaultConfig()
	cfg.Random = random
	return New(cfg)
}
