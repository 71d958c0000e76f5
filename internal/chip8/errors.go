package chip8

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the fault types, usable with errors.Is.
var (
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrStackOverflow      = errors.New("call stack overflow")
	ErrStackUnderflow     = errors.New("call stack underflow")
	ErrAddressOutOfRange  = errors.New("address out of range")
	ErrProgramTooLarge    = errors.New("program too large")
	ErrSizeMismatch       = errors.New("program size mismatch")
)

// DecodeError is returned for an instruction word that matches no known encoding.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown instruction 0x%04X", e.Word)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownInstruction
}

// StackFault is returned when a call overflows or a return underflows the call stack.
type StackFault struct {
	Err      error  // ErrStackOverflow or ErrStackUnderflow
	Depth    int    // stack depth at the time of the fault
	Address  uint16 // return address that could not be pushed, 0 for underflow
	Capacity int
}

func (e *StackFault) Error() string {
	if errors.Is(e.Err, ErrStackOverflow) {
		return fmt.Sprintf("%v: pushing return address 0x%03X with %d of %d entries used",
			e.Err, e.Address, e.Depth, e.Capacity)
	}
	return fmt.Sprintf("%v: return with empty stack", e.Err)
}

func (e *StackFault) Unwrap() error {
	return e.Err
}

// AddressFault is returned when an access of Length bytes starting at Address
// would leave the memory.
type AddressFault struct {
	Address int
	Length  int
}

func (e *AddressFault) Error() string {
	return fmt.Sprintf("%v: accessing %d bytes at 0x%04X, memory ends at 0x%03X",
		ErrAddressOutOfRange, e.Length, e.Address, MaxAddress)
}

func (e *AddressFault) Unwrap() error {
	return ErrAddressOutOfRange
}

// LoadFault is returned when a program image can not be loaded into memory.
type LoadFault struct {
	Err      error // ErrProgramTooLarge or ErrSizeMismatch
	Size     int64 // expected program size
	Read     int64 // bytes actually available from the source
	Capacity int   // space available for programs
}

func (e *LoadFault) Error() string {
	if errors.Is(e.Err, ErrProgramTooLarge) {
		return fmt.Sprintf("%v: %d bytes exceed the %d bytes of program memory", e.Err, e.Size, e.Capacity)
	}
	return fmt.Sprintf("%v: expected %d bytes but source provided %d", e.Err, e.Size, e.Read)
}

func (e *LoadFault) Unwrap() error {
	return e.Err
}
