package chip8

import "fmt"

// instructionSize is the size of an instruction word in bytes.
const instructionSize = 2

// Execute applies a decoded instruction to the machine. The program counter
// is advanced past the instruction before it is applied, jumps overwrite it
// and skips advance it by another instruction.
func (m *Machine) Execute(ins Instruction) error {
	m.PC += instructionSize

	switch ins := ins.(type) {
	case ClearScreen:
		m.Display.Clear()

	case Return:
		address, err := m.stack.Pop()
		if err != nil {
			return err
		}
		m.PC = address

	case Jump:
		m.PC = ins.Address

	case Call:
		if err := m.stack.Push(m.PC); err != nil {
			return err
		}
		m.PC = ins.Address

	case SkipEqualImm:
		m.skipIf(m.V[ins.X] == ins.Value)
	case SkipNotEqualImm:
		m.skipIf(m.V[ins.X] != ins.Value)
	case SkipEqualReg:
		m.skipIf(m.V[ins.X] == m.V[ins.Y])
	case SkipNotEqualReg:
		m.skipIf(m.V[ins.X] != m.V[ins.Y])

	case SetImm:
		m.V[ins.X] = ins.Value
	case AddImm:
		m.V[ins.X] += ins.Value

	case SetReg:
		m.V[ins.X] = m.V[ins.Y]
	case Or:
		m.V[ins.X] |= m.V[ins.Y]
	case And:
		m.V[ins.X] &= m.V[ins.Y]
	case Xor:
		m.V[ins.X] ^= m.V[ins.Y]

	case AddReg:
		vx, vy := m.V[ins.X], m.V[ins.Y]
		m.V[FlagRegister] = boolToFlag(uint16(vx)+uint16(vy) > 0xFF)
		m.V[ins.X] = vx + vy

	case SubReg:
		vx, vy := m.V[ins.X], m.V[ins.Y]
		m.V[FlagRegister] = boolToFlag(vx > vy)
		m.V[ins.X] = vx - vy

	case SubRegReverse:
		vx, vy := m.V[ins.X], m.V[ins.Y]
		m.V[FlagRegister] = boolToFlag(vy > vx)
		m.V[ins.X] = vy - vx

	case ShiftRight:
		vx := m.V[ins.X]
		m.V[FlagRegister] = vx & 0x01
		m.V[ins.X] = vx >> 1

	case ShiftLeft:
		vx := m.V[ins.X]
		m.V[FlagRegister] = vx >> 7
		m.V[ins.X] = vx << 1

	case SetIndex:
		m.I = ins.Address

	case JumpOffset:
		m.PC = ins.Address + uint16(m.V[0])

	case Random:
		m.V[ins.X] = uint8(m.random.Intn(0x100)) & ins.Mask

	case Draw:
		return m.draw(ins)

	case SkipKeyPressed:
		m.skipIf(m.Keys[m.V[ins.X]&0x0F])
	case SkipKeyNotPressed:
		m.skipIf(!m.Keys[m.V[ins.X]&0x0F])

	case LoadDelay:
		m.V[ins.X] = m.DelayTimer
	case SetDelay:
		m.DelayTimer = m.V[ins.X]
	case SetSound:
		m.SoundTimer = m.V[ins.X]

	case WaitKey:
		m.waitKey(ins.X)

	case AddIndex:
		sum := uint32(m.I) + uint32(m.V[ins.X])
		if sum > 0xFFFF && m.indexOverflowFlag {
			m.V[FlagRegister] = 1
		}
		m.I = uint16(sum)

	case SetFont:
		m.I = FontStart + uint16(m.V[ins.X]&0x0F)*GlyphSize

	case StoreBCD:
		if err := checkRange(int(m.I), 3); err != nil {
			return err
		}
		vx := m.V[ins.X]
		m.Memory[m.I] = vx / 100
		m.Memory[m.I+1] = vx / 10 % 10
		m.Memory[m.I+2] = vx % 10

	case StoreRegisters:
		count := int(ins.X) + 1
		if err := checkRange(int(m.I), count); err != nil {
			return err
		}
		copy(m.Memory[m.I:], m.V[:count])

	case LoadRegisters:
		count := int(ins.X) + 1
		if err := checkRange(int(m.I), count); err != nil {
			return err
		}
		copy(m.V[:count], m.Memory[m.I:])

	default:
		return fmt.Errorf("%w: unsupported instruction type %T", ErrUnknownInstruction, ins)
	}

	return nil
}

// skipIf skips the next instruction if the condition is true.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.PC += instructionSize
	}
}

// waitKey re-presents the current instruction until a key is pressed. The
// lowest pressed key is stored in VX.
func (m *Machine) waitKey(x uint8) {
	m.PC -= instructionSize

	for key, pressed := range m.Keys {
		if pressed {
			m.V[x] = uint8(key)
			m.PC += instructionSize
			return
		}
	}
}

// draw XORs a sprite of ins.Height rows read from I onto the display. The
// origin wraps around the display, the sprite itself is clipped at the right
// and bottom edges. VF is set if any pixel was turned off.
func (m *Machine) draw(ins Draw) error {
	originX := int(m.V[ins.X]) % Width
	originY := int(m.V[ins.Y]) % Height

	rows := int(ins.Height)
	if rows > Height-originY {
		rows = Height - originY
	}
	columns := 8
	if columns > Width-originX {
		columns = Width - originX
	}

	if err := checkRange(int(m.I), rows); err != nil {
		return err
	}

	m.V[FlagRegister] = 0

	for row := 0; row < rows; row++ {
		sprite := m.Memory[int(m.I)+row]
		y := originY + row

		for column := 0; column < columns; column++ {
			bit := sprite&(0x80>>column) != 0
			x := originX + column

			current := m.Display.Get(x, y)
			if current && bit {
				m.V[FlagRegister] = 1
			}
			m.Display.Set(x, y, current != bit)
		}
	}
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
