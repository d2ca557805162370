package cpu

// execute runs the operand fetch and side effects for opcode (the opcode
// byte itself has already been consumed by Step) and returns any extra
// cycles beyond the table's base cost - only conditional branches and the
// bit-test-and-branch family ever return non-zero here.
func (c *CPU) execute(opcode uint8) int {
	p := &c.Reg.PSW

	switch opcode {

	// ---- row 0x0_ ----
	case 0x00: // NOP
	case 0x01, 0x11, 0x21, 0x31, 0x41, 0x51, 0x61, 0x71, 0x81, 0x91, 0xa1, 0xb1, 0xc1, 0xd1, 0xe1, 0xf1: // TCALL n
		n := uint16(opcode >> 4)
		vector := uint16(0xffde) - 2*n
		c.pushAddr(c.Reg.PC)
		c.Reg.PC = c.bus.ReadWord(vector)
	case 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x82, 0x92, 0xa2, 0xb2, 0xc2, 0xd2, 0xe2, 0xf2: // SET1/CLR1 d.n
		c.execBitOp(opcode)
	case 0x03, 0x13, 0x23, 0x33, 0x43, 0x53, 0x63, 0x73, 0x83, 0x93, 0xa3, 0xb3, 0xc3, 0xd3, 0xe3, 0xf3: // BBS/BBC
		return c.execBranchBit(opcode)
	case 0x04:
		c.aluToA(bitOr, c.valDP())
	case 0x05:
		c.aluToA(bitOr, c.valAbs())
	case 0x06:
		c.aluToA(bitOr, c.valIndX())
	case 0x07:
		c.aluToA(bitOr, c.valIndDPX())
	case 0x08:
		c.aluToA(bitOr, c.valImm())
	case 0x09:
		c.aluMemMem(bitOr, true)
	case 0x0a:
		c.execMemBit(opcode)
	case 0x0b:
		off := c.fetch8()
		c.writeDP(off, asl(p, c.readDP(off)))
	case 0x0c:
		addr := c.fetch16()
		c.bus.WriteByte(addr, asl(p, c.bus.ReadByte(addr)))
	case 0x0d: // PUSH PSW
		c.push8(p.Value())
	case 0x0e: // TSET1 !a
		addr := c.fetch16()
		m := c.bus.ReadByte(addr)
		p.setNZ(c.Reg.A - m)
		c.bus.WriteByte(addr, m|c.Reg.A)
	case 0x0f: // BRK
		c.pushAddr(c.Reg.PC)
		c.push8(p.Value())
		p.B = true
		p.I = false
		c.Reg.PC = c.bus.ReadWord(0xffde)

	// ---- row 0x1_ ----
	case 0x10:
		return c.branch(!p.N, c.fetchRel())
	case 0x14:
		c.aluToA(bitOr, c.valDPX())
	case 0x15:
		c.aluToA(bitOr, c.valAbsX())
	case 0x16:
		c.aluToA(bitOr, c.valAbsY())
	case 0x17:
		c.aluToA(bitOr, c.valIndDPY())
	case 0x18:
		c.aluDPImm(bitOr, true)
	case 0x19:
		c.aluIndXY(bitOr, true)
	case 0x1a: // DECW d
		c.execWordOp(func(v uint16) uint16 { r := v - 1; p.setNZ16(r); return r })
	case 0x1b:
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		c.bus.WriteByte(addr, asl(p, c.bus.ReadByte(addr)))
	case 0x1c:
		c.Reg.A = asl(p, c.Reg.A)
	case 0x1d:
		c.Reg.X = dec8(p, c.Reg.X)
	case 0x1e:
		cmp8(p, c.Reg.X, c.valAbs())
	case 0x1f: // JMP [!a+X]
		addr := c.fetch16() + uint16(c.Reg.X)
		c.Reg.PC = c.bus.ReadWord(addr)

	// ---- row 0x2_ ----
	case 0x20:
		p.P = false
	case 0x24:
		c.aluToA(bitAnd, c.valDP())
	case 0x25:
		c.aluToA(bitAnd, c.valAbs())
	case 0x26:
		c.aluToA(bitAnd, c.valIndX())
	case 0x27:
		c.aluToA(bitAnd, c.valIndDPX())
	case 0x28:
		c.aluToA(bitAnd, c.valImm())
	case 0x29:
		c.aluMemMem(bitAnd, true)
	case 0x2a:
		c.execMemBit(opcode)
	case 0x2b:
		off := c.fetch8()
		c.writeDP(off, rol(p, c.readDP(off)))
	case 0x2c:
		addr := c.fetch16()
		c.bus.WriteByte(addr, rol(p, c.bus.ReadByte(addr)))
	case 0x2d: // PUSH A
		c.push8(c.Reg.A)
	case 0x2e: // CBNE d,r
		off := c.fetch8()
		v := c.readDP(off)
		rel := c.fetchRel()
		return c.branch(v != c.Reg.A, rel)
	case 0x2f: // BRA r
		rel := c.fetchRel()
		c.branch(true, rel)

	// ---- row 0x3_ ----
	case 0x30:
		return c.branch(p.N, c.fetchRel())
	case 0x34:
		c.aluToA(bitAnd, c.valDPX())
	case 0x35:
		c.aluToA(bitAnd, c.valAbsX())
	case 0x36:
		c.aluToA(bitAnd, c.valAbsY())
	case 0x37:
		c.aluToA(bitAnd, c.valIndDPY())
	case 0x38:
		c.aluDPImm(bitAnd, true)
	case 0x39:
		c.aluIndXY(bitAnd, true)
	case 0x3a: // INCW d
		c.execWordOp(func(v uint16) uint16 { r := v + 1; p.setNZ16(r); return r })
	case 0x3b:
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		c.bus.WriteByte(addr, rol(p, c.bus.ReadByte(addr)))
	case 0x3c:
		c.Reg.A = rol(p, c.Reg.A)
	case 0x3d:
		c.Reg.X = inc8(p, c.Reg.X)
	case 0x3e:
		cmp8(p, c.Reg.X, c.valDP())
	case 0x3f: // CALL !a
		addr := c.fetch16()
		c.pushAddr(c.Reg.PC)
		c.Reg.PC = addr

	// ---- row 0x4_ ----
	case 0x40:
		p.P = true
	case 0x44:
		c.aluToA(bitEor, c.valDP())
	case 0x45:
		c.aluToA(bitEor, c.valAbs())
	case 0x46:
		c.aluToA(bitEor, c.valIndX())
	case 0x47:
		c.aluToA(bitEor, c.valIndDPX())
	case 0x48:
		c.aluToA(bitEor, c.valImm())
	case 0x49:
		c.aluMemMem(bitEor, true)
	case 0x4a:
		c.execMemBit(opcode)
	case 0x4b:
		off := c.fetch8()
		c.writeDP(off, lsr(p, c.readDP(off)))
	case 0x4c:
		addr := c.fetch16()
		c.bus.WriteByte(addr, lsr(p, c.bus.ReadByte(addr)))
	case 0x4d: // PUSH X
		c.push8(c.Reg.X)
	case 0x4e: // TCLR1 !a
		addr := c.fetch16()
		m := c.bus.ReadByte(addr)
		p.setNZ(c.Reg.A - m)
		c.bus.WriteByte(addr, m&^c.Reg.A)
	case 0x4f: // PCALL u
		u := c.fetch8()
		c.pushAddr(c.Reg.PC)
		c.Reg.PC = 0xff00 | uint16(u)

	// ---- row 0x5_ ----
	case 0x50:
		return c.branch(!p.V, c.fetchRel())
	case 0x54:
		c.aluToA(bitEor, c.valDPX())
	case 0x55:
		c.aluToA(bitEor, c.valAbsX())
	case 0x56:
		c.aluToA(bitEor, c.valAbsY())
	case 0x57:
		c.aluToA(bitEor, c.valIndDPY())
	case 0x58:
		c.aluDPImm(bitEor, true)
	case 0x59:
		c.aluIndXY(bitEor, true)
	case 0x5a: // CMPW YA,d
		off := c.fetch8()
		cmpw(p, c.Reg.YA(), c.readDPWord(off))
	case 0x5b:
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		c.bus.WriteByte(addr, lsr(p, c.bus.ReadByte(addr)))
	case 0x5c:
		c.Reg.A = lsr(p, c.Reg.A)
	case 0x5d:
		c.Reg.X = c.Reg.A
		p.setNZ(c.Reg.X)
	case 0x5e:
		cmp8(p, c.Reg.Y, c.valAbs())
	case 0x5f: // JMP !a
		c.Reg.PC = c.fetch16()

	// ---- row 0x6_ ----
	case 0x60:
		p.C = false
	case 0x64:
		cmp8(p, c.Reg.A, c.valDP())
	case 0x65:
		cmp8(p, c.Reg.A, c.valAbs())
	case 0x66:
		cmp8(p, c.Reg.A, c.valIndX())
	case 0x67:
		cmp8(p, c.Reg.A, c.valIndDPX())
	case 0x68:
		cmp8(p, c.Reg.A, c.valImm())
	case 0x69:
		c.aluMemMem(func(p *PSW, dst, src uint8) uint8 { cmp8(p, dst, src); return dst }, false)
	case 0x6a:
		c.execMemBit(opcode)
	case 0x6b:
		off := c.fetch8()
		c.writeDP(off, ror(p, c.readDP(off)))
	case 0x6c:
		addr := c.fetch16()
		c.bus.WriteByte(addr, ror(p, c.bus.ReadByte(addr)))
	case 0x6d: // PUSH Y
		c.push8(c.Reg.Y)
	case 0x6e: // DBNZ d,r
		off := c.fetch8()
		v := c.readDP(off) - 1
		c.writeDP(off, v)
		rel := c.fetchRel()
		return c.branch(v != 0, rel)
	case 0x6f: // RET
		c.Reg.PC = c.popAddr()

	// ---- row 0x7_ ----
	case 0x70:
		return c.branch(p.V, c.fetchRel())
	case 0x74:
		cmp8(p, c.Reg.A, c.valDPX())
	case 0x75:
		cmp8(p, c.Reg.A, c.valAbsX())
	case 0x76:
		cmp8(p, c.Reg.A, c.valAbsY())
	case 0x77:
		cmp8(p, c.Reg.A, c.valIndDPY())
	case 0x78:
		c.aluDPImm(func(p *PSW, dst, src uint8) uint8 { cmp8(p, dst, src); return dst }, false)
	case 0x79:
		c.aluIndXY(func(p *PSW, dst, src uint8) uint8 { cmp8(p, dst, src); return dst }, false)
	case 0x7a: // ADDW YA,d
		off := c.fetch8()
		c.Reg.SetYA(addw(p, c.Reg.YA(), c.readDPWord(off)))
	case 0x7b:
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		c.bus.WriteByte(addr, ror(p, c.bus.ReadByte(addr)))
	case 0x7c:
		c.Reg.A = ror(p, c.Reg.A)
	case 0x7d:
		c.Reg.A = c.Reg.X
		p.setNZ(c.Reg.A)
	case 0x7e:
		cmp8(p, c.Reg.Y, c.valDP())
	case 0x7f: // RET1
		psw := c.pop8()
		p.FromValue(psw)
		c.Reg.PC = c.popAddr()

	// ---- row 0x8_ ----
	case 0x80:
		p.C = true
	case 0x84:
		c.aluToA(adc, c.valDP())
	case 0x85:
		c.aluToA(adc, c.valAbs())
	case 0x86:
		c.aluToA(adc, c.valIndX())
	case 0x87:
		c.aluToA(adc, c.valIndDPX())
	case 0x88:
		c.aluToA(adc, c.valImm())
	case 0x89:
		c.aluMemMem(adc, true)
	case 0x8a:
		c.execMemBit(opcode)
	case 0x8b:
		off := c.fetch8()
		c.writeDP(off, dec8(p, c.readDP(off)))
	case 0x8c:
		addr := c.fetch16()
		c.bus.WriteByte(addr, dec8(p, c.bus.ReadByte(addr)))
	case 0x8d:
		c.Reg.Y = c.fetch8()
		p.setNZ(c.Reg.Y)
	case 0x8e: // POP PSW
		p.FromValue(c.pop8())
	case 0x8f: // MOV d,#i
		off := c.fetch8()
		imm := c.fetch8()
		c.writeDP(off, imm)

	// ---- row 0x9_ ----
	case 0x90:
		return c.branch(!p.C, c.fetchRel())
	case 0x94:
		c.aluToA(adc, c.valDPX())
	case 0x95:
		c.aluToA(adc, c.valAbsX())
	case 0x96:
		c.aluToA(adc, c.valAbsY())
	case 0x97:
		c.aluToA(adc, c.valIndDPY())
	case 0x98:
		c.aluDPImm(adc, true)
	case 0x99:
		c.aluIndXY(adc, true)
	case 0x9a: // SUBW YA,d
		off := c.fetch8()
		c.Reg.SetYA(subw(p, c.Reg.YA(), c.readDPWord(off)))
	case 0x9b:
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		c.bus.WriteByte(addr, dec8(p, c.bus.ReadByte(addr)))
	case 0x9c:
		c.Reg.A = dec8(p, c.Reg.A)
	case 0x9d:
		c.Reg.X = c.Reg.SP
	case 0x9e: // DIV YA,X
		c.execDiv()
	case 0x9f: // XCN A
		c.Reg.A = c.Reg.A<<4 | c.Reg.A>>4
		p.setNZ(c.Reg.A)

	// ---- row 0xa_ ----
	case 0xa0:
		p.I = true
	case 0xa4:
		c.aluToA(sbc, c.valDP())
	case 0xa5:
		c.aluToA(sbc, c.valAbs())
	case 0xa6:
		c.aluToA(sbc, c.valIndX())
	case 0xa7:
		c.aluToA(sbc, c.valIndDPX())
	case 0xa8:
		c.aluToA(sbc, c.valImm())
	case 0xa9:
		c.aluMemMem(sbc, true)
	case 0xaa:
		c.execMemBit(opcode)
	case 0xab:
		off := c.fetch8()
		c.writeDP(off, inc8(p, c.readDP(off)))
	case 0xac:
		addr := c.fetch16()
		c.bus.WriteByte(addr, inc8(p, c.bus.ReadByte(addr)))
	case 0xad:
		cmp8(p, c.Reg.Y, c.valImm())
	case 0xae: // POP A
		c.Reg.A = c.pop8()
	case 0xaf: // MOV (X)+,A
		addr := c.indX()
		c.bus.WriteByte(addr, c.Reg.A)
		c.Reg.X++

	// ---- row 0xb_ ----
	case 0xb0:
		return c.branch(p.C, c.fetchRel())
	case 0xb4:
		c.aluToA(sbc, c.valDPX())
	case 0xb5:
		c.aluToA(sbc, c.valAbsX())
	case 0xb6:
		c.aluToA(sbc, c.valAbsY())
	case 0xb7:
		c.aluToA(sbc, c.valIndDPY())
	case 0xb8:
		c.aluDPImm(sbc, true)
	case 0xb9:
		c.aluIndXY(sbc, true)
	case 0xba: // MOVW YA,d
		off := c.fetch8()
		v := c.readDPWord(off)
		c.Reg.SetYA(v)
		p.setNZ16(v)
	case 0xbb:
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		c.bus.WriteByte(addr, inc8(p, c.bus.ReadByte(addr)))
	case 0xbc:
		c.Reg.A = inc8(p, c.Reg.A)
	case 0xbd:
		c.Reg.SP = c.Reg.X
	case 0xbe: // DAS A
		c.execDas()
	case 0xbf: // MOV A,(X)+
		addr := c.indX()
		c.Reg.A = c.bus.ReadByte(addr)
		p.setNZ(c.Reg.A)
		c.Reg.X++

	// ---- row 0xc_ ----
	case 0xc0:
		p.I = false
	case 0xc4:
		off := c.fetch8()
		c.writeDP(off, c.Reg.A)
	case 0xc5:
		addr := c.fetch16()
		c.bus.WriteByte(addr, c.Reg.A)
	case 0xc6:
		c.bus.WriteByte(c.indX(), c.Reg.A)
	case 0xc7:
		d := c.fetch8()
		c.bus.WriteByte(c.indDPX(d), c.Reg.A)
	case 0xc8:
		cmp8(p, c.Reg.X, c.valImm())
	case 0xc9:
		addr := c.fetch16()
		c.bus.WriteByte(addr, c.Reg.X)
	case 0xca:
		c.execMemBit(opcode)
	case 0xcb:
		off := c.fetch8()
		c.writeDP(off, c.Reg.Y)
	case 0xcc:
		addr := c.fetch16()
		c.bus.WriteByte(addr, c.Reg.Y)
	case 0xcd:
		c.Reg.X = c.fetch8()
		p.setNZ(c.Reg.X)
	case 0xce: // POP X
		c.Reg.X = c.pop8()
	case 0xcf: // MUL YA
		product := uint16(c.Reg.Y) * uint16(c.Reg.A)
		c.Reg.SetYA(product)
		p.setNZ(c.Reg.Y)

	// ---- row 0xd_ ----
	case 0xd0:
		return c.branch(!p.Z, c.fetchRel())
	case 0xd4:
		off := c.fetch8()
		c.bus.WriteByte(c.Reg.dp(off+c.Reg.X), c.Reg.A)
	case 0xd5:
		addr := c.fetch16() + uint16(c.Reg.X)
		c.bus.WriteByte(addr, c.Reg.A)
	case 0xd6:
		addr := c.fetch16() + uint16(c.Reg.Y)
		c.bus.WriteByte(addr, c.Reg.A)
	case 0xd7:
		d := c.fetch8()
		c.bus.WriteByte(c.indDPY(d), c.Reg.A)
	case 0xd8:
		off := c.fetch8()
		c.writeDP(off, c.Reg.X)
	case 0xd9:
		off := c.fetch8()
		c.writeDP(off+c.Reg.Y, c.Reg.X)
	case 0xda: // MOVW d,YA
		off := c.fetch8()
		ya := c.Reg.YA()
		c.writeDP(off, uint8(ya))
		c.writeDP(off+1, uint8(ya>>8))
	case 0xdb:
		off := c.fetch8()
		c.writeDP(off+c.Reg.X, c.Reg.Y)
	case 0xdc:
		c.Reg.Y = dec8(p, c.Reg.Y)
	case 0xdd:
		c.Reg.A = c.Reg.Y
		p.setNZ(c.Reg.A)
	case 0xde: // CBNE d+X,r
		off := c.fetch8()
		addr := c.Reg.dp(off + c.Reg.X)
		v := c.bus.ReadByte(addr)
		rel := c.fetchRel()
		return c.branch(v != c.Reg.A, rel)
	case 0xdf: // DAA A
		c.execDaa()

	// ---- row 0xe_ ----
	case 0xe0:
		p.V = false
		p.H = false
	case 0xe4:
		c.Reg.A = c.valDP()
		p.setNZ(c.Reg.A)
	case 0xe5:
		c.Reg.A = c.valAbs()
		p.setNZ(c.Reg.A)
	case 0xe6:
		c.Reg.A = c.valIndX()
		p.setNZ(c.Reg.A)
	case 0xe7:
		c.Reg.A = c.valIndDPX()
		p.setNZ(c.Reg.A)
	case 0xe8:
		c.Reg.A = c.valImm()
		p.setNZ(c.Reg.A)
	case 0xe9:
		c.Reg.X = c.valAbs()
		p.setNZ(c.Reg.X)
	case 0xea:
		c.execMemBit(opcode)
	case 0xeb:
		c.Reg.Y = c.valDP()
		p.setNZ(c.Reg.Y)
	case 0xec:
		c.Reg.Y = c.valAbs()
		p.setNZ(c.Reg.Y)
	case 0xed:
		p.C = !p.C
	case 0xee: // POP Y
		c.Reg.Y = c.pop8()
	case 0xef: // SLEEP

	// ---- row 0xf_ ----
	case 0xf0:
		return c.branch(p.Z, c.fetchRel())
	case 0xf4:
		c.Reg.A = c.valDPX()
		p.setNZ(c.Reg.A)
	case 0xf5:
		c.Reg.A = c.valAbsX()
		p.setNZ(c.Reg.A)
	case 0xf6:
		c.Reg.A = c.valAbsY()
		p.setNZ(c.Reg.A)
	case 0xf7:
		c.Reg.A = c.valIndDPY()
		p.setNZ(c.Reg.A)
	case 0xf8:
		c.Reg.X = c.valDP()
		p.setNZ(c.Reg.X)
	case 0xf9:
		off := c.fetch8()
		c.Reg.X = c.readDP(off + c.Reg.Y)
		p.setNZ(c.Reg.X)
	case 0xfa: // MOV dd,ds  (byte1=src, byte2=dst)
		src := c.fetch8()
		dst := c.fetch8()
		c.writeDP(dst, c.readDP(src))
	case 0xfb:
		off := c.fetch8()
		c.Reg.Y = c.readDP(off + c.Reg.X)
		p.setNZ(c.Reg.Y)
	case 0xfc:
		c.Reg.Y = inc8(p, c.Reg.Y)
	case 0xfd:
		c.Reg.Y = c.Reg.A
		p.setNZ(c.Reg.Y)
	case 0xfe: // DBNZ Y,r
		c.Reg.Y--
		rel := c.fetchRel()
		return c.branch(c.Reg.Y != 0, rel)
	case 0xff: // STOP
	}

	return 0
}

// ---- shared helpers for the ALU-on-A family ----

func (c *CPU) aluToA(apply func(p *PSW, a, m uint8) uint8, m uint8) {
	c.Reg.A = apply(&c.Reg.PSW, c.Reg.A, m)
}

// aluMemMem implements the "dd,ds" encoding shared by OR/AND/EOR/ADC/SBC/
// CMP: the first operand byte is the source direct-page offset, the
// second is the destination. When store is false (CMP) the result is
// discarded and only flags take effect.
func (c *CPU) aluMemMem(apply func(p *PSW, dst, src uint8) uint8, store bool) {
	srcOff := c.fetch8()
	dstOff := c.fetch8()
	src := c.readDP(srcOff)
	dst := c.readDP(dstOff)
	result := apply(&c.Reg.PSW, dst, src)
	if store {
		c.writeDP(dstOff, result)
	}
}

// aluDPImm implements the "dp,#imm" encoding: direct-page byte first,
// immediate second.
func (c *CPU) aluDPImm(apply func(p *PSW, dst, src uint8) uint8, store bool) {
	dpOff := c.fetch8()
	imm := c.fetch8()
	dst := c.readDP(dpOff)
	result := apply(&c.Reg.PSW, dst, imm)
	if store {
		c.writeDP(dpOff, result)
	}
}

// aluIndXY implements the "(X),(Y)" encoding: destination is dp(X),
// source is dp(Y).
func (c *CPU) aluIndXY(apply func(p *PSW, dst, src uint8) uint8, store bool) {
	dstAddr := c.indX()
	srcAddr := c.indY()
	dst := c.bus.ReadByte(dstAddr)
	src := c.bus.ReadByte(srcAddr)
	result := apply(&c.Reg.PSW, dst, src)
	if store {
		c.bus.WriteByte(dstAddr, result)
	}
}

// ---- operand fetchers for the "A,<mode>" family ----

func (c *CPU) valDP() uint8 {
	return c.readDP(c.fetch8())
}

func (c *CPU) valAbs() uint8 {
	return c.bus.ReadByte(c.fetch16())
}

func (c *CPU) valIndX() uint8 {
	return c.bus.ReadByte(c.indX())
}

func (c *CPU) valIndDPX() uint8 {
	return c.bus.ReadByte(c.indDPX(c.fetch8()))
}

func (c *CPU) valImm() uint8 {
	return c.fetch8()
}

func (c *CPU) valDPX() uint8 {
	off := c.fetch8()
	return c.bus.ReadByte(c.Reg.dp(off + c.Reg.X))
}

func (c *CPU) valAbsX() uint8 {
	addr := c.fetch16() + uint16(c.Reg.X)
	return c.bus.ReadByte(addr)
}

func (c *CPU) valAbsY() uint8 {
	addr := c.fetch16() + uint16(c.Reg.Y)
	return c.bus.ReadByte(addr)
}

func (c *CPU) valIndDPY() uint8 {
	return c.bus.ReadByte(c.indDPY(c.fetch8()))
}

// ---- bit and memory-bit instruction families ----

func (c *CPU) execBitOp(opcode uint8) {
	bit, isClear := bitOf(opcode)
	off := c.fetch8()
	v := c.readDP(off)
	if isClear {
		v &^= 1 << bit
	} else {
		v |= 1 << bit
	}
	c.writeDP(off, v)
}

func (c *CPU) execBranchBit(opcode uint8) int {
	bit, isClear := bitOf(opcode)
	off := c.fetch8()
	v := c.readDP(off)
	rel := c.fetchRel()
	bitSet := v&(1<<bit) != 0
	if isClear {
		return c.branch(!bitSet, rel)
	}
	return c.branch(bitSet, rel)
}

func (c *CPU) execMemBit(opcode uint8) {
	word := c.fetch16()
	addr, bit := memBit(word)
	m := c.bus.ReadByte(addr)
	bitVal := m&(1<<bit) != 0
	p := &c.Reg.PSW

	switch opcode {
	case 0x0a: // OR1 C,m.b
		p.C = p.C || bitVal
	case 0x2a: // OR1 C,/m.b
		p.C = p.C || !bitVal
	case 0x4a: // AND1 C,m.b
		p.C = p.C && bitVal
	case 0x6a: // AND1 C,/m.b
		p.C = p.C && !bitVal
	case 0x8a: // EOR1 C,m.b
		p.C = p.C != bitVal
	case 0xaa: // MOV1 C,m.b
		p.C = bitVal
	case 0xca: // MOV1 m.b,C
		if p.C {
			m |= 1 << bit
		} else {
			m &^= 1 << bit
		}
		c.bus.WriteByte(addr, m)
	case 0xea: // NOT1 m.b
		m ^= 1 << bit
		c.bus.WriteByte(addr, m)
	}
}

// ---- direct-page word helper for INCW/DECW ----

func (c *CPU) execWordOp(apply func(v uint16) uint16) {
	off := c.fetch8()
	v := c.readDPWord(off)
	r := apply(v)
	c.writeDP(off, uint8(r))
	c.writeDP(off+1, uint8(r>>8))
}

// ---- MUL/DIV/DAA/DAS, too irregular to share a helper ----

func (c *CPU) execDiv() {
	p := &c.Reg.PSW
	ya := c.Reg.YA()
	x := c.Reg.X
	if x == 0 {
		c.Reg.A = 0xff
		c.Reg.Y = uint8(ya >> 8)
	} else {
		c.Reg.A = uint8(ya / uint16(x))
		c.Reg.Y = uint8(ya % uint16(x))
	}
	p.setNZ(c.Reg.A)
}

func (c *CPU) execDaa() {
	p := &c.Reg.PSW
	if c.Reg.A&0x0f > 9 || p.H {
		c.Reg.A += 6
	}
	if c.Reg.A > 0x99 || p.C {
		c.Reg.A += 0x60
		p.C = true
	}
	p.setNZ(c.Reg.A)
}

func (c *CPU) execDas() {
	p := &c.Reg.PSW
	if c.Reg.A&0x0f > 9 || !p.H {
		c.Reg.A -= 6
	}
	if c.Reg.A > 0x99 || !p.C {
		c.Reg.A -= 0x60
		p.C = false
	} else {
		p.C = true
	}
	p.setNZ(c.Reg.A)
}
