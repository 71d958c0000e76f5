package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestExecuteAdvancesProgramCounter(t *testing.T) {
	m := newTestMachine(nil)
	assert.NoError(t, m.Execute(SetImm{X: 1, Value: 0x12}))
	assert.Equal(t, uint16(ProgramStart+2), m.PC)
	assert.Equal(t, uint8(0x12), m.V[1])
}

func TestExecuteArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		ins      Instruction
		vx, vy   uint8
		expected uint8
		flag     uint8
	}{
		{"add with carry", AddReg{X: 1, Y: 2}, 250, 10, 4, 1},
		{"add without carry", AddReg{X: 1, Y: 2}, 200, 55, 255, 0},
		{"sub with borrow", SubReg{X: 1, Y: 2}, 5, 10, 251, 0},
		{"sub without borrow", SubReg{X: 1, Y: 2}, 10, 5, 5, 1},
		{"sub equal", SubReg{X: 1, Y: 2}, 7, 7, 0, 0},
		{"reverse sub without borrow", SubRegReverse{X: 1, Y: 2}, 5, 10, 5, 1},
		{"reverse sub with borrow", SubRegReverse{X: 1, Y: 2}, 10, 5, 251, 0},
		{"shift right odd", ShiftRight{X: 1}, 0x05, 0, 0x02, 1},
		{"shift right even", ShiftRight{X: 1}, 0x04, 0, 0x02, 0},
		{"shift left high bit", ShiftLeft{X: 1}, 0x81, 0, 0x02, 1},
		{"shift left low bits", ShiftLeft{X: 1}, 0x41, 0, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(nil)
			m.V[1] = tt.vx
			m.V[2] = tt.vy
			m.V[FlagRegister] = 0xAA

			assert.NoError(t, m.Execute(tt.ins))
			assert.Equal(t, tt.expected, m.V[1])
			assert.Equal(t, tt.flag, m.V[FlagRegister])
		})
	}
}

func TestExecuteAddCarryAllRegisterPairs(t *testing.T) {
	for x := uint8(0); x < FlagRegister; x++ {
		for y := uint8(0); y < FlagRegister; y++ {
			if x == y {
				continue
			}
			m := newTestMachine(nil)
			m.V[x] = 250
			m.V[y] = 10

			assert.NoError(t, m.Execute(AddReg{X: x, Y: y}))
			assert.Equal(t, uint8(4), m.V[x])
			assert.Equal(t, uint8(1), m.V[FlagRegister])
		}
	}
}

func TestExecuteFlagRegisterAsTarget(t *testing.T) {
	m := newTestMachine(nil)
	m.V[FlagRegister] = 250
	m.V[1] = 10

	// the result is written after the flag and wins
	assert.NoError(t, m.Execute(AddReg{X: FlagRegister, Y: 1}))
	assert.Equal(t, uint8(4), m.V[FlagRegister])
}

func TestExecuteLogic(t *testing.T) {
	m := newTestMachine(nil)
	m.V[1] = 0b1100
	m.V[2] = 0b1010

	assert.NoError(t, m.Execute(Or{X: 1, Y: 2}))
	assert.Equal(t, uint8(0b1110), m.V[1])

	m.V[1] = 0b1100
	assert.NoError(t, m.Execute(And{X: 1, Y: 2}))
	assert.Equal(t, uint8(0b1000), m.V[1])

	m.V[1] = 0b1100
	assert.NoError(t, m.Execute(Xor{X: 1, Y: 2}))
	assert.Equal(t, uint8(0b0110), m.V[1])

	assert.NoError(t, m.Execute(SetReg{X: 3, Y: 2}))
	assert.Equal(t, uint8(0b1010), m.V[3])
}

func TestExecuteAddImmediateWraps(t *testing.T) {
	m := newTestMachine(nil)
	m.V[3] = 0xFF
	m.V[FlagRegister] = 0x55

	assert.NoError(t, m.Execute(AddImm{X: 3, Value: 2}))
	assert.Equal(t, uint8(1), m.V[3])
	assert.Equal(t, uint8(0x55), m.V[FlagRegister])
}

func TestExecuteSkips(t *testing.T) {
	tests := []struct {
		name   string
		ins    Instruction
		vx, vy uint8
		skip   bool
	}{
		{"equal immediate taken", SkipEqualImm{X: 1, Value: 0x42}, 0x42, 0, true},
		{"equal immediate not taken", SkipEqualImm{X: 1, Value: 0x42}, 0x41, 0, false},
		{"not equal immediate taken", SkipNotEqualImm{X: 1, Value: 0x42}, 0x41, 0, true},
		{"not equal immediate not taken", SkipNotEqualImm{X: 1, Value: 0x42}, 0x42, 0, false},
		{"equal register taken", SkipEqualReg{X: 1, Y: 2}, 7, 7, true},
		{"equal register not taken", SkipEqualReg{X: 1, Y: 2}, 7, 8, false},
		{"not equal register taken", SkipNotEqualReg{X: 1, Y: 2}, 7, 8, true},
		{"not equal register not taken", SkipNotEqualReg{X: 1, Y: 2}, 7, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(nil)
			m.V[1] = tt.vx
			m.V[2] = tt.vy

			assert.NoError(t, m.Execute(tt.ins))
			expected := uint16(ProgramStart + 2)
			if tt.skip {
				expected += 2
			}
			assert.Equal(t, expected, m.PC)
		})
	}
}

func TestExecuteKeySkips(t *testing.T) {
	m := newTestMachine(nil)
	m.V[4] = 0x1A // only the low nibble selects the key
	m.Keys[0xA] = true

	assert.NoError(t, m.Execute(SkipKeyPressed{X: 4}))
	assert.Equal(t, uint16(ProgramStart+4), m.PC)

	assert.NoError(t, m.Execute(SkipKeyNotPressed{X: 4}))
	assert.Equal(t, uint16(ProgramStart+6), m.PC)

	m.Keys[0xA] = false
	assert.NoError(t, m.Execute(SkipKeyNotPressed{X: 4}))
	assert.Equal(t, uint16(ProgramStart+10), m.PC)
}

func TestExecuteJumps(t *testing.T) {
	m := newTestMachine(nil)
	assert.NoError(t, m.Execute(Jump{Address: 0x345}))
	assert.Equal(t, uint16(0x345), m.PC)

	m.V[0] = 0x10
	assert.NoError(t, m.Execute(JumpOffset{Address: 0x300}))
	assert.Equal(t, uint16(0x310), m.PC)
}

func TestExecuteCallReturn(t *testing.T) {
	m := newTestMachine(nil)
	m.PC = 0x250

	assert.NoError(t, m.Execute(Call{Address: 0x300}))
	assert.Equal(t, uint16(0x300), m.PC)
	assert.Equal(t, 1, m.Stack().Len())

	assert.NoError(t, m.Execute(Return{}))
	assert.Equal(t, uint16(0x252), m.PC)
	assert.Equal(t, 0, m.Stack().Len())
}

func TestExecuteReturnEmptyStack(t *testing.T) {
	m := newTestMachine(nil)

	err := m.Execute(Return{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackUnderflow))

	var fault *StackFault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, 0, m.Stack().Len())
}

func TestExecuteCallOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StackCapacity = 2
	m := New(cfg)

	assert.NoError(t, m.Execute(Call{Address: 0x300}))
	assert.NoError(t, m.Execute(Call{Address: 0x400}))

	err := m.Execute(Call{Address: 0x500})
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.ErrorContains(t, err, "0x402")
	assert.Equal(t, 2, m.Stack().Len())
}

func TestExecuteIndex(t *testing.T) {
	m := newTestMachine(nil)
	assert.NoError(t, m.Execute(SetIndex{Address: 0x123}))
	assert.Equal(t, uint16(0x123), m.I)

	m.V[2] = 0x10
	assert.NoError(t, m.Execute(AddIndex{X: 2}))
	assert.Equal(t, uint16(0x133), m.I)
	assert.Equal(t, uint8(0), m.V[FlagRegister])
}

func TestExecuteAddIndexOverflow(t *testing.T) {
	t.Run("flag enabled", func(t *testing.T) {
		m := newTestMachine(nil)
		m.I = 0xFFFF
		m.V[2] = 2

		assert.NoError(t, m.Execute(AddIndex{X: 2}))
		assert.Equal(t, uint16(1), m.I)
		assert.Equal(t, uint8(1), m.V[FlagRegister])
	})

	t.Run("flag disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.IndexOverflowFlag = false
		m := New(cfg)
		m.I = 0xFFFF
		m.V[2] = 2

		assert.NoError(t, m.Execute(AddIndex{X: 2}))
		assert.Equal(t, uint16(1), m.I)
		assert.Equal(t, uint8(0), m.V[FlagRegister])
	})
}

func TestExecuteRandom(t *testing.T) {
	random := &fixedRandom{value: 0xFF}
	m := newTestMachine(random)

	assert.NoError(t, m.Execute(Random{X: 3, Mask: 0x0F}))
	assert.Equal(t, uint8(0x0F), m.V[3])
	assert.Equal(t, 1, random.calls)
}

func TestExecuteRandomMask(t *testing.T) {
	m := newTestMachine(nil)
	masks := []uint8{0x00, 0x01, 0x0F, 0xA5, 0xF0, 0xFF}

	for _, mask := range masks {
		for i := 0; i < 64; i++ {
			assert.NoError(t, m.Execute(Random{X: 5, Mask: mask}))
			assert.Equal(t, uint8(0), m.V[5]&^mask)
		}
	}
}

func TestExecuteTimers(t *testing.T) {
	m := newTestMachine(nil)
	m.V[1] = 30
	m.V[2] = 40

	assert.NoError(t, m.Execute(SetDelay{X: 1}))
	assert.NoError(t, m.Execute(SetSound{X: 2}))
	assert.Equal(t, uint8(30), m.DelayTimer)
	assert.Equal(t, uint8(40), m.SoundTimer)

	m.DecrementTimers()
	assert.NoError(t, m.Execute(LoadDelay{X: 3}))
	assert.Equal(t, uint8(29), m.V[3])
	assert.Equal(t, uint8(39), m.SoundTimer)
}

func TestExecuteWaitKey(t *testing.T) {
	m := newTestMachine(nil)
	m.PC = 0x300

	for i := 0; i < 3; i++ {
		assert.NoError(t, m.Execute(WaitKey{X: 6}))
		assert.Equal(t, uint16(0x300), m.PC)
	}

	m.Keys[0x9] = true
	m.Keys[0x3] = true
	assert.NoError(t, m.Execute(WaitKey{X: 6}))
	assert.Equal(t, uint16(0x302), m.PC)
	assert.Equal(t, uint8(0x3), m.V[6])
}

func TestExecuteWaitKeyHighestKey(t *testing.T) {
	m := newTestMachine(nil)
	m.Keys[0xF] = true

	assert.NoError(t, m.Execute(WaitKey{X: 1}))
	assert.Equal(t, uint16(ProgramStart+2), m.PC)
	assert.Equal(t, uint8(0xF), m.V[1])
}

func TestExecuteSetFont(t *testing.T) {
	m := newTestMachine(nil)
	m.V[1] = 0x0A

	assert.NoError(t, m.Execute(SetFont{X: 1}))
	assert.Equal(t, uint16(FontStart+0xA*GlyphSize), m.I)
	assert.Equal(t, byte(0xF0), m.Memory[m.I])
}

func TestExecuteStoreBCD(t *testing.T) {
	m := newTestMachine(nil)
	m.V[7] = 254
	m.I = 0x300

	assert.NoError(t, m.Execute(StoreBCD{X: 7}))
	assert.Equal(t, byte(2), m.Memory[0x300])
	assert.Equal(t, byte(5), m.Memory[0x301])
	assert.Equal(t, byte(4), m.Memory[0x302])

	m.I = MaxAddress - 1
	err := m.Execute(StoreBCD{X: 7})
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestExecuteStoreLoadRegisters(t *testing.T) {
	m := newTestMachine(nil)
	for i := range m.V {
		m.V[i] = uint8(i + 1)
	}
	m.I = 0x400

	assert.NoError(t, m.Execute(StoreRegisters{X: 3}))
	for i := 0; i < 4; i++ {
		assert.Equal(t, byte(i+1), m.Memory[0x400+i])
	}
	assert.Equal(t, byte(0), m.Memory[0x404])
	assert.Equal(t, uint16(0x400), m.I)

	m.V = [RegisterCount]uint8{}
	assert.NoError(t, m.Execute(LoadRegisters{X: 2}))
	assert.Equal(t, uint8(1), m.V[0])
	assert.Equal(t, uint8(2), m.V[1])
	assert.Equal(t, uint8(3), m.V[2])
	assert.Equal(t, uint8(0), m.V[3])
}

func TestExecuteStoreRegistersOutOfRange(t *testing.T) {
	m := newTestMachine(nil)
	m.I = MaxAddress

	assert.NoError(t, m.Execute(StoreRegisters{X: 0}))

	err := m.Execute(StoreRegisters{X: 1})
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	err = m.Execute(LoadRegisters{X: 1})
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestExecuteClearScreen(t *testing.T) {
	m := newTestMachine(nil)
	m.Display.Set(3, 4, true)
	m.Display.TakeDirty()

	assert.NoError(t, m.Execute(ClearScreen{}))
	assert.False(t, m.Display.Get(3, 4))
	assert.True(t, m.Display.TakeDirty())
}

func TestExecuteDrawCollision(t *testing.T) {
	m := newTestMachine(nil)
	m.I = 0x300
	m.Memory[0x300] = 0b1010_0001
	m.V[1] = 10
	m.V[2] = 5

	draw := Draw{X: 1, Y: 2, Height: 1}
	assert.NoError(t, m.Execute(draw))
	assert.Equal(t, uint8(0), m.V[FlagRegister])
	assert.True(t, m.Display.Get(10, 5))
	assert.False(t, m.Display.Get(11, 5))
	assert.True(t, m.Display.Get(12, 5))
	assert.True(t, m.Display.Get(17, 5))

	assert.NoError(t, m.Execute(draw))
	assert.Equal(t, uint8(1), m.V[FlagRegister])
	assert.Equal(t, Frame{}, m.Display.Snapshot())
}

func TestExecuteDrawWrapsOrigin(t *testing.T) {
	m := newTestMachine(nil)
	m.I = 0x300
	m.Memory[0x300] = 0x80
	m.V[1] = Width + 3
	m.V[2] = Height + 7

	assert.NoError(t, m.Execute(Draw{X: 1, Y: 2, Height: 1}))
	assert.True(t, m.Display.Get(3, 7))
}

func TestExecuteDrawClips(t *testing.T) {
	m := newTestMachine(nil)
	m.I = 0x300
	m.Memory[0x300] = 0xFF
	m.Memory[0x301] = 0xFF
	m.Memory[0x302] = 0xFF
	m.V[1] = Width - 2
	m.V[2] = Height - 1

	assert.NoError(t, m.Execute(Draw{X: 1, Y: 2, Height: 3}))

	frame := m.Display.Snapshot()
	count := 0
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] {
				count++
			}
		}
	}
	assert.Equal(t, 2, count)
	assert.True(t, m.Display.Get(Width-2, Height-1))
	assert.True(t, m.Display.Get(Width-1, Height-1))
	assert.False(t, m.Display.Get(0, 0))
}

func TestExecuteDrawFlagResetBeforeDrawing(t *testing.T) {
	m := newTestMachine(nil)
	m.I = 0x300
	m.Memory[0x300] = 0x80
	m.V[FlagRegister] = 1

	assert.NoError(t, m.Execute(Draw{X: 0, Y: 1, Height: 1}))
	assert.Equal(t, uint8(0), m.V[FlagRegister])
}

func TestExecuteDrawOutOfMemory(t *testing.T) {
	m := newTestMachine(nil)
	m.I = MaxAddress

	err := m.Execute(Draw{X: 0, Y: 1, Height: 2})
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	var fault *AddressFault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, MaxAddress, fault.Address)
	assert.Equal(t, 2, fault.Length)
}

// unknownInstruction satisfies Instruction without being handled by Execute.
type unknownInstruction struct {
	Instruction
}

func TestExecuteUnsupportedInstruction(t *testing.T) {
	m := newTestMachine(nil)
	err := m.Execute(unknownInstruction{})
	assert.True(t, errors.Is(err, ErrUnknownInstruction))
}
