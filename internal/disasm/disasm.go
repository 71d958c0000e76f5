// Package disasm renders CHIP-8 instruction words as assembly mnemonics.
// It is used for instruction tracing and program listings and is based on
// the CHIP-8 opcode table of retrogolib.
package disasm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Lookup returns the opcode table entry matching the instruction word.
func Lookup(word uint16) (chip8.Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// Format returns the assembly representation of an instruction word. Words
// that are not instructions are rendered as data.
func Format(word uint16) string {
	op, ok := Lookup(word)
	if !ok || op.Instruction == nil {
		return fmt.Sprintf(".word $%04X", word)
	}

	name := op.Instruction.Name
	if params := formatParams(name, word); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// List writes a listing of the program to the writer. Every line contains the
// address, the raw word and its mnemonic. A trailing odd byte is written as data.
func List(w io.Writer, program []byte, base uint16) error {
	address := base
	for len(program) >= opcodeSize {
		word := binary.BigEndian.Uint16(program)
		if _, err := fmt.Fprintf(w, "$%03X  %04X  %s\n", address, word, Format(word)); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
		program = program[opcodeSize:]
		address += opcodeSize
	}

	if len(program) > 0 {
		if _, err := fmt.Fprintf(w, "$%03X  %02X    .byte $%02X\n", address, program[0], program[0]); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}
