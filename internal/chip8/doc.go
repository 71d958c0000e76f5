// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Model
//
// The machine has 4KB of byte addressable memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter area, the built-in font lives at FontStart (0x050-0x09F)
//   - ProgramStart-MaxAddress: User program and data area
//
// The register file consists of 16 general purpose 8-bit registers V0-VF, the
// 16-bit index register I and the program counter. VF doubles as the carry,
// borrow and collision flag and is overwritten by several instructions.
//
// Return addresses of subroutine calls are kept on a bounded call stack outside
// of the addressable memory. Delay and sound timers are plain 8-bit values, the
// 60 Hz decrement cadence is driven by the caller through DecrementTimers.
//
// # Instruction Cycle
//
// Every instruction is a big-endian 16-bit word. Decode turns a word into one of
// the Instruction types of this package, Execute applies it to the machine:
//
//	word, err := m.Fetch()
//	ins, err := chip8.Decode(word)
//	err = m.Execute(ins)
//
// All failures are returned as errors (DecodeError, StackFault, AddressFault,
// LoadFault) and are never resolved inside the package.
package chip8
