package chip8

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// CHIP-8 memory layout and register file constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where programs are loaded and
	// execution begins.
	ProgramStart = 0x200

	// ProgramCapacity is the maximum size of a program image.
	ProgramCapacity = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16

	// FlagRegister is the index of VF, the carry, borrow and collision flag.
	FlagRegister = 0xF

	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16
)

// KeyLatch holds the pressed state of every key of the keypad.
type KeyLatch [KeyCount]bool

// RandomSource provides the random numbers for the random instruction.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Config contains the machine options.
type Config struct {
	// StackCapacity is the number of return addresses the call stack holds.
	StackCapacity int

	// IndexOverflowFlag sets VF when adding to the index register overflows
	// 16 bits. This deviates from most CHIP-8 references.
	IndexOverflowFlag bool

	// Random is the source for the random instruction, a time seeded
	// generator is used if nil.
	Random RandomSource
}

// DefaultConfig returns the default machine options.
func DefaultConfig() Config {
	return Config{
		StackCapacity:     DefaultStackCapacity,
		IndexOverflowFlag: true,
	}
}

// Machine is the complete state of a CHIP-8 virtual machine.
type Machine struct {
	Memory [MemorySize]byte
	V      [RegisterCount]uint8
	I      uint16
	PC     uint16

	DelayTimer uint8
	SoundTimer uint8

	// Keys is written by the input side and only read by instructions.
	Keys KeyLatch

	Display Framebuffer

	stack             *Stack
	random            RandomSource
	indexOverflowFlag bool
}

// New returns a new machine in its reset state.
func New(cfg Config) *Machine {
	random := cfg.Random
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Machine{
		stack:             NewStack(cfg.StackCapacity),
		random:            random,
		indexOverflowFlag: cfg.IndexOverflowFlag,
	}
	m.Reset()
	return m
}

// Reset clears memory, registers, stack, timers, keys and display, seeds the
// font and points the program counter to ProgramStart.
func (m *Machine) Reset() {
	m.Memory = [MemorySize]byte{}
	copy(m.Memory[FontStart:], Font[:])

	m.V = [RegisterCount]uint8{}
	m.I = 0
	m.PC = ProgramStart
	m.DelayTimer = 0
	m.SoundTimer = 0
	m.Keys = KeyLatch{}
	m.Display = Framebuffer{}
	m.stack.Reset()
}

// Load writes a program of size bytes read from reader to ProgramStart.
// It fails if the program does not fit into memory or the reader does not
// provide exactly size bytes.
func (m *Machine) Load(reader io.Reader, size int64) error {
	if size < 0 || size > ProgramCapacity {
		return &LoadFault{
			Err:      ErrProgramTooLarge,
			Size:     size,
			Capacity: ProgramCapacity,
		}
	}

	end := ProgramStart + int(size)
	n, err := io.ReadFull(reader, m.Memory[ProgramStart:end])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &LoadFault{
				Err:  ErrSizeMismatch,
				Size: size,
				Read: int64(n),
			}
		}
		return fmt.Errorf("reading program: %w", err)
	}

	// the source has to be exhausted, otherwise bytes would silently be dropped
	var extra [1]byte
	k, err := reader.Read(extra[:])
	if k > 0 {
		return &LoadFault{
			Err:  ErrSizeMismatch,
			Size: size,
			Read: size + int64(k),
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading program: %w", err)
	}
	return nil
}

// Fetch returns the big-endian instruction word at the program counter.
func (m *Machine) Fetch() (uint16, error) {
	if err := checkRange(int(m.PC), 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(m.Memory[m.PC:]), nil
}

// DecrementTimers decrements the delay and sound timers if they are not 0.
// It is expected to be called at 60 Hz.
func (m *Machine) DecrementTimers() {
	if m.DelayTimer > 0 {
		m.DelayTimer--
	}
	if m.SoundTimer > 0 {
		m.SoundTimer--
	}
}

// Stack returns the call stack.
func (m *Machine) Stack() *Stack {
	return m.stack
}

// checkRange returns an AddressFault if length bytes starting at address are
// not all inside the memory.
func checkRange(address, length int) error {
	if address < 0 || address+length > MemorySize {
		return &AddressFault{
			Address: address,
			Length:  length,
		}
	}
	return nil
}
