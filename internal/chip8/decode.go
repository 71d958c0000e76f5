package chip8

// Decode converts a raw instruction word into its Instruction.
// Words that do not match any known encoding return a *DecodeError.
func Decode(word uint16) (Instruction, error) {
	x := extractRegisterX(word)
	y := extractRegisterY(word)
	n := uint8(word & 0x000F)
	nn := uint8(word & 0x00FF)
	nnn := word & 0x0FFF

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			return ClearScreen{}, nil
		case 0x00EE:
			return Return{}, nil
		}

	case 0x1:
		return Jump{Address: nnn}, nil
	case 0x2:
		return Call{Address: nnn}, nil
	case 0x3:
		return SkipEqualImm{X: x, Value: nn}, nil
	case 0x4:
		return SkipNotEqualImm{X: x, Value: nn}, nil

	case 0x5:
		if n == 0 {
			return SkipEqualReg{X: x, Y: y}, nil
		}

	case 0x6:
		return SetImm{X: x, Value: nn}, nil
	case 0x7:
		return AddImm{X: x, Value: nn}, nil

	case 0x8:
		return decodeALU(word, x, y, n)

	case 0x9:
		if n == 0 {
			return SkipNotEqualReg{X: x, Y: y}, nil
		}

	case 0xA:
		return SetIndex{Address: nnn}, nil
	case 0xB:
		return JumpOffset{Address: nnn}, nil
	case 0xC:
		return Random{X: x, Mask: nn}, nil
	case 0xD:
		return Draw{X: x, Y: y, Height: n}, nil

	case 0xE:
		switch nn {
		case 0x9E:
			return SkipKeyPressed{X: x}, nil
		case 0xA1:
			return SkipKeyNotPressed{X: x}, nil
		}

	case 0xF:
		return decodeMisc(word, x, nn)
	}

	return nil, &DecodeError{Word: word}
}

// decodeALU decodes the register to register operations of group 8,
// they are keyed by the lowest nibble.
func decodeALU(word uint16, x, y, n uint8) (Instruction, error) {
	switch n {
	case 0x0:
		return SetReg{X: x, Y: y}, nil
	case 0x1:
		return Or{X: x, Y: y}, nil
	case 0x2:
		return And{X: x, Y: y}, nil
	case 0x3:
		return Xor{X: x, Y: y}, nil
	case 0x4:
		return AddReg{X: x, Y: y}, nil
	case 0x5:
		return SubReg{X: x, Y: y}, nil
	case 0x6:
		return ShiftRight{X: x}, nil
	case 0x7:
		return SubRegReverse{X: x, Y: y}, nil
	case 0xE:
		return ShiftLeft{X: x}, nil
	}
	return nil, &DecodeError{Word: word}
}

// decodeMisc decodes the timer, keyboard and memory operations of group F,
// they are keyed by the low byte.
func decodeMisc(word uint16, x, nn uint8) (Instruction, error) {
	switch nn {
	case 0x07:
		return LoadDelay{X: x}, nil
	case 0x0A:
		return WaitKey{X: x}, nil
	case 0x15:
		return SetDelay{X: x}, nil
	case 0x18:
		return SetSound{X: x}, nil
	case 0x1E:
		return AddIndex{X: x}, nil
	case 0x29:
		return SetFont{X: x}, nil
	case 0x33:
		return StoreBCD{X: x}, nil
	case 0x55:
		return StoreRegisters{X: x}, nil
	case 0x65:
		return LoadRegisters{X: x}, nil
	}
	return nil, &DecodeError{Word: word}
}

// extractRegisterX extracts the X register nibble from an instruction word.
func extractRegisterX(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from an instruction word.
func extractRegisterY(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}
