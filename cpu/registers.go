package cpu

// PSW is the Processor Status Word: eight single-bit flags kept as named
// bools rather than a raw bitfield, so callers never depend on bit
// ordering.
type PSW struct {
	N bool // negative
	V bool // overflow
	P bool // direct-page selector: false selects 0x0000, true selects 0x0100
	B bool // break
	H bool // half-carry
	I bool // interrupt enable; unused by audio playback
	Z bool // zero
	C bool // carry
}

// Value packs the flags into their canonical SPC700 bit positions,
// N(7) V(6) P(5) B(4) H(3) I(2) Z(1) C(0).
func (p PSW) Value() uint8 {
	var v uint8
	if p.N {
		v |= 1 << 7
	}
	if p.V {
		v |= 1 << 6
	}
	if p.P {
		v |= 1 << 5
	}
	if p.B {
		v |= 1 << 4
	}
	if p.H {
		v |= 1 << 3
	}
	if p.I {
		v |= 1 << 2
	}
	if p.Z {
		v |= 1 << 1
	}
	if p.C {
		v |= 1 << 0
	}
	return v
}

// FromValue unpacks a raw byte into the flag fields, overwriting the
// receiver in place.
func (p *PSW) FromValue(v uint8) {
	p.N = v&(1<<7) != 0
	p.V = v&(1<<6) != 0
	p.P = v&(1<<5) != 0
	p.B = v&(1<<4) != 0
	p.H = v&(1<<3) != 0
	p.I = v&(1<<2) != 0
	p.Z = v&(1<<1) != 0
	p.C = v&(1<<0) != 0
}

// setNZ sets N from bit 7 of v and Z from v == 0, the common flag update
// shared by nearly every data-movement and ALU instruction.
func (p *PSW) setNZ(v uint8) {
	p.N = v&0x80 != 0
	p.Z = v == 0
}

// setNZ16 is setNZ for 16-bit results (YA pair operations).
func (p *PSW) setNZ16(v uint16) {
	p.N = v&0x8000 != 0
	p.Z = v == 0
}

// Registers is the SPC700 register file: PC, A, X, Y, SP and the PSW.
type Registers struct {
	PC  uint16
	A   uint8
	X   uint8
	Y   uint8
	SP  uint8
	PSW PSW
}

// YA returns the 16-bit pairing of Y (high byte) and A (low byte), used by
// the word-width arithmetic and MUL/DIV instructions.
func (r *Registers) YA() uint16 {
	return uint16(r.Y)<<8 | uint16(r.A)
}

// SetYA writes a 16-bit value back into the Y/A pair, high byte to Y.
func (r *Registers) SetYA(v uint16) {
	r.Y = uint8(v >> 8)
	r.A = uint8(v)
}

// directPageBase returns 0x0000 or 0x0100 depending on the P flag.
func (r *Registers) directPageBase() uint16 {
	if r.PSW.P {
		return 0x0100
	}
	return 0x0000
}
