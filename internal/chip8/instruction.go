package chip8

// Instruction is a decoded CHIP-8 instruction word.
// The set of implementations is closed, only types of this package satisfy it.
type Instruction interface {
	instruction()
}

// ClearScreen clears the framebuffer (00E0).
type ClearScreen struct{}

// Return returns from a subroutine (00EE).
type Return struct{}

// Jump jumps to Address (1NNN).
type Jump struct {
	Address uint16
}

// Call calls the subroutine at Address (2NNN).
type Call struct {
	Address uint16
}

// SkipEqualImm skips the next instruction if VX == Value (3XNN).
type SkipEqualImm struct {
	X     uint8
	Value uint8
}

// SkipNotEqualImm skips the next instruction if VX != Value (4XNN).
type SkipNotEqualImm struct {
	X     uint8
	Value uint8
}

// SkipEqualReg skips the next instruction if VX == VY (5XY0).
type SkipEqualReg struct {
	X, Y uint8
}

// SetImm sets VX to Value (6XNN).
type SetImm struct {
	X     uint8
	Value uint8
}

// AddImm adds Value to VX without touching the carry flag (7XNN).
type AddImm struct {
	X     uint8
	Value uint8
}

// SetReg sets VX to VY (8XY0).
type SetReg struct {
	X, Y uint8
}

// Or sets VX to VX | VY (8XY1).
type Or struct {
	X, Y uint8
}

// And sets VX to VX & VY (8XY2).
type And struct {
	X, Y uint8
}

// Xor sets VX to VX ^ VY (8XY3).
type Xor struct {
	X, Y uint8
}

// AddReg sets VX to VX + VY, VF is the carry (8XY4).
type AddReg struct {
	X, Y uint8
}

// SubReg sets VX to VX - VY, VF is set when VX > VY (8XY5).
type SubReg struct {
	X, Y uint8
}

// ShiftRight shifts VX right by one, VF receives the shifted out bit (8XY6).
type ShiftRight struct {
	X uint8
}

// SubRegReverse sets VX to VY - VX, VF is set when VY > VX (8XY7).
type SubRegReverse struct {
	X, Y uint8
}

// ShiftLeft shifts VX left by one, VF receives the shifted out bit (8XYE).
type ShiftLeft struct {
	X uint8
}

// SkipNotEqualReg skips the next instruction if VX != VY (9XY0).
type SkipNotEqualReg struct {
	X, Y uint8
}

// SetIndex sets I to Address (ANNN).
type SetIndex struct {
	Address uint16
}

// JumpOffset jumps to Address + V0 (BNNN).
type JumpOffset struct {
	Address uint16
}

// Random sets VX to a random byte masked with Mask (CXNN).
type Random struct {
	X    uint8
	Mask uint8
}

// Draw draws the Height bytes tall sprite at I to the position VX, VY (DXYN).
type Draw struct {
	X, Y   uint8
	Height uint8
}

// SkipKeyPressed skips the next instruction if the key in VX is pressed (EX9E).
type SkipKeyPressed struct {
	X uint8
}

// SkipKeyNotPressed skips the next instruction if the key in VX is not pressed (EXA1).
type SkipKeyNotPressed struct {
	X uint8
}

// LoadDelay sets VX to the delay timer (FX07).
type LoadDelay struct {
	X uint8
}

// WaitKey blocks until a key is pressed and stores it in VX (FX0A).
type WaitKey struct {
	X uint8
}

// SetDelay sets the delay timer to VX (FX15).
type SetDelay struct {
	X uint8
}

// SetSound sets the sound timer to VX (FX18).
type SetSound struct {
	X uint8
}

// AddIndex adds VX to I (FX1E).
type AddIndex struct {
	X uint8
}

// SetFont points I to the font glyph for the digit in VX (FX29).
type SetFont struct {
	X uint8
}

// StoreBCD stores the decimal digits of VX at I, I+1 and I+2 (FX33).
type StoreBCD struct {
	X uint8
}

// StoreRegisters stores V0 to VX inclusive starting at I (FX55).
type StoreRegisters struct {
	X uint8
}

// LoadRegisters loads V0 to VX inclusive from memory starting at I (FX65).
type LoadRegisters struct {
	X uint8
}

func (ClearScreen) instruction()       {}
func (Return) instruction()            {}
func (Jump) instruction()              {}
func (Call) instruction()              {}
func (SkipEqualImm) instruction()      {}
func (SkipNotEqualImm) instruction()   {}
func (SkipEqualReg) instruction()      {}
func (SetImm) instruction()            {}
func (AddImm) instruction()            {}
func (SetReg) instruction()            {}
func (Or) instruction()                {}
func (And) instruction()               {}
func (Xor) instruction()               {}
func (AddReg) instruction()            {}
func (SubReg) instruction()            {}
func (ShiftRight) instruction()        {}
func (SubRegReverse) instruction()     {}
func (ShiftLeft) instruction()         {}
func (SkipNotEqualReg) instruction()   {}
func (SetIndex) instruction()          {}
func (JumpOffset) instruction()        {}
func (Random) instruction()            {}
func (Draw) instruction()              {}
func (SkipKeyPressed) instruction()    {}
func (SkipKeyNotPressed) instruction() {}
func (LoadDelay) instruction()         {}
func (WaitKey) instruction()           {}
func (SetDelay) instruction()          {}
func (SetSound) instruction()          {}
func (AddIndex) instruction()          {}
func (SetFont) instruction()           {}
func (StoreBCD) instruction()          {}
func (StoreRegisters) instruction()    {}
func (LoadRegisters) instruction()     {}
