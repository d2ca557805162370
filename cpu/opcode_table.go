package cpu

// OpcodeEntry is one row of the decode table: the opcode's mnemonic (for
// disassembly and logging only), its total length in bytes including the
// opcode byte, and its base cycle cost. Conditional branches and the
// bit-test-and-branch family add extra cycles at execution time when the
// branch is taken; see Step.
type OpcodeEntry struct {
	Mnemonic string
	Length   uint8
	Cycles   uint8
}

// OpcodeTable is the single source of truth for opcode shape, shared by
// the CPU executor and the disassembler so the two can never disagree
// about instruction length.
var OpcodeTable = [256]OpcodeEntry{
	0x00: {"NOP", 1, 2},
	0x01: {"TCALL 0", 1, 8},
	0x02: {"SET1 d.0", 2, 4},
	0x03: {"BBS d.0", 3, 5},
	0x04: {"OR A,d", 2, 3},
	0x05: {"OR A,!a", 3, 4},
	0x06: {"OR A,(X)", 1, 3},
	0x07: {"OR A,[d+X]", 2, 6},
	0x08: {"OR A,#i", 2, 2},
	0x09: {"OR dd,ds", 3, 6},
	0x0a: {"OR1 C,m.b", 3, 5},
	0x0b: {"ASL d", 2, 4},
	0x0c: {"ASL !a", 3, 5},
	0x0d: {"PUSH PSW", 1, 4},
	0x0e: {"TSET1 !a", 3, 6},
	0x0f: {"BRK", 1, 8},

	0x10: {"BPL r", 2, 4},
	0x11: {"TCALL 1", 1, 8},
	0x12: {"CLR1 d.0", 2, 4},
	0x13: {"BBC d.0", 3, 5},
	0x14: {"OR A,d+X", 2, 4},
	0x15: {"OR A,!a+X", 3, 5},
	0x16: {"OR A,!a+Y", 3, 5},
	0x17: {"OR A,[d]+Y", 2, 6},
	0x18: {"OR d,#i", 3, 5},
	0x19: {"OR (X),(Y)", 1, 5},
	0x1a: {"DECW d", 2, 6},
	0x1b: {"ASL d+X", 2, 5},
	0x1c: {"ASL A", 1, 2},
	0x1d: {"DEC X", 1, 2},
	0x1e: {"CMP X,!a", 3, 4},
	0x1f: {"JMP [!a+X]", 3, 6},

	0x20: {"CLRP", 1, 2},
	0x21: {"TCALL 2", 1, 8},
	0x22: {"SET1 d.1", 2, 4},
	0x23: {"BBS d.1", 3, 5},
	0x24: {"AND A,d", 2, 3},
	0x25: {"AND A,!a", 3, 4},
	0x26: {"AND A,(X)", 1, 3},
	0x27: {"AND A,[d+X]", 2, 6},
	0x28: {"AND A,#i", 2, 2},
	0x29: {"AND dd,ds", 3, 6},
	0x2a: {"OR1 C,/m.b", 3, 5},
	0x2b: {"ROL d", 2, 4},
	0x2c: {"ROL !a", 3, 5},
	0x2d: {"PUSH A", 1, 4},
	0x2e: {"CBNE d,r", 3, 5},
	0x2f: {"BRA r", 2, 4},

	0x30: {"BMI r", 2, 4},
	0x31: {"TCALL 3", 1, 8},
	0x32: {"CLR1 d.1", 2, 4},
	0x33: {"BBC d.1", 3, 5},
	0x34: {"AND A,d+X", 2, 4},
	0x35: {"AND A,!a+X", 3, 5},
	0x36: {"AND A,!a+Y", 3, 5},
	0x37: {"AND A,[d]+Y", 2, 6},
	0x38: {"AND d,#i", 3, 5},
	0x39: {"AND (X),(Y)", 1, 5},
	0x3a: {"INCW d", 2, 6},
	0x3b: {"ROL d+X", 2, 5},
	0x3c: {"ROL A", 1, 2},
	0x3d: {"INC X", 1, 2},
	0x3e: {"CMP X,d", 2, 3},
	0x3f: {"CALL !a", 3, 8},

	0x40: {"SETP", 1, 2},
	0x41: {"TCALL 4", 1, 8},
	0x42: {"SET1 d.2", 2, 4},
	0x43: {"BBS d.2", 3, 5},
	0x44: {"EOR A,d", 2, 3},
	0x45: {"EOR A,!a", 3, 4},
	0x46: {"EOR A,(X)", 1, 3},
	0x47: {"EOR A,[d+X]", 2, 6},
	0x48: {"EOR A,#i", 2, 2},
	0x49: {"EOR dd,ds", 3, 6},
	0x4a: {"AND1 C,m.b", 3, 4},
	0x4b: {"LSR d", 2, 4},
	0x4c: {"LSR !a", 3, 5},
	0x4d: {"PUSH X", 1, 4},
	0x4e: {"TCLR1 !a", 3, 6},
	0x4f: {"PCALL u", 2, 6},

	0x50: {"BVC r", 2, 4},
	0x51: {"TCALL 5", 1, 8},
	0x52: {"CLR1 d.2", 2, 4},
	0x53: {"BBC d.2", 3, 5},
	0x54: {"EOR A,d+X", 2, 4},
	0x55: {"EOR A,!a+X", 3, 5},
	0x56: {"EOR A,!a+Y", 3, 5},
	0x57: {"EOR A,[d]+Y", 2, 6},
	0x58: {"EOR d,#i", 3, 5},
	0x59: {"EOR (X),(Y)", 1, 5},
	0x5a: {"CMPW YA,d", 2, 4},
	0x5b: {"LSR d+X", 2, 5},
	0x5c: {"LSR A", 1, 2},
	0x5d: {"MOV X,A", 1, 2},
	0x5e: {"CMP Y,!a", 3, 4},
	0x5f: {"JMP !a", 3, 3},

	0x60: {"CLRC", 1, 2},
	0x61: {"TCALL 6", 1, 8},
	0x62: {"SET1 d.3", 2, 4},
	0x63: {"BBS d.3", 3, 5},
	0x64: {"CMP A,d", 2, 3},
	0x65: {"CMP A,!a", 3, 4},
	0x66: {"CMP A,(X)", 1, 3},
	0x67: {"CMP A,[d+X]", 2, 6},
	0x68: {"CMP A,#i", 2, 2},
	0x69: {"CMP dd,ds", 3, 6},
	0x6a: {"AND1 C,/m.b", 3, 4},
	0x6b: {"ROR d", 2, 4},
	0x6c: {"ROR !a", 3, 5},
	0x6d: {"PUSH Y", 1, 4},
	0x6e: {"DBNZ d,r", 3, 5},
	0x6f: {"RET", 1, 5},

	0x70: {"BVS r", 2, 4},
	0x71: {"TCALL 7", 1, 8},
	0x72: {"CLR1 d.3", 2, 4},
	0x73: {"BBC d.3", 3, 5},
	0x74: {"CMP A,d+X", 2, 4},
	0x75: {"CMP A,!a+X", 3, 5},
	0x76: {"CMP A,!a+Y", 3, 5},
	0x77: {"CMP A,[d]+Y", 2, 6},
	0x78: {"CMP d,#i", 3, 5},
	0x79: {"CMP (X),(Y)", 1, 5},
	0x7a: {"ADDW YA,d", 2, 5},
	0x7b: {"ROR d+X", 2, 5},
	0x7c: {"ROR A", 1, 2},
	0x7d: {"MOV A,X", 1, 2},
	0x7e: {"CMP Y,d", 2, 3},
	0x7f: {"RET1", 1, 6},

	0x80: {"SETC", 1, 2},
	0x81: {"TCALL 8", 1, 8},
	0x82: {"SET1 d.4", 2, 4},
	0x83: {"BBS d.4", 3, 5},
	0x84: {"ADC A,d", 2, 3},
	0x85: {"ADC A,!a", 3, 4},
	0x86: {"ADC A,(X)", 1, 3},
	0x87: {"ADC A,[d+X]", 2, 6},
	0x88: {"ADC A,#i", 2, 2},
	0x89: {"ADC dd,ds", 3, 6},
	0x8a: {"EOR1 C,m.b", 3, 4},
	0x8b: {"DEC d", 2, 4},
	0x8c: {"DEC !a", 3, 5},
	0x8d: {"MOV Y,#i", 2, 2},
	0x8e: {"POP PSW", 1, 4},
	0x8f: {"MOV d,#i", 3, 5},

	0x90: {"BCC r", 2, 4},
	0x91: {"TCALL 9", 1, 8},
	0x92: {"CLR1 d.4", 2, 4},
	0x93: {"BBC d.4", 3, 5},
	0x94: {"ADC A,d+X", 2, 4},
	0x95: {"ADC A,!a+X", 3, 5},
	0x96: {"ADC A,!a+Y", 3, 5},
	0x97: {"ADC A,[d]+Y", 2, 6},
	0x98: {"ADC d,#i", 3, 5},
	0x99: {"ADC (X),(Y)", 1, 5},
	0x9a: {"SUBW YA,d", 2, 5},
	0x9b: {"DEC d+X", 2, 5},
	0x9c: {"DEC A", 1, 2},
	0x9d: {"MOV X,SP", 1, 2},
	0x9e: {"DIV YA,X", 1, 12},
	0x9f: {"XCN A", 1, 5},

	0xa0: {"EI", 1, 3},
	0xa1: {"TCALL 10", 1, 8},
	0xa2: {"SET1 d.5", 2, 4},
	0xa3: {"BBS d.5", 3, 5},
	0xa4: {"SBC A,d", 2, 3},
	0xa5: {"SBC A,!a", 3, 4},
	0xa6: {"SBC A,(X)", 1, 3},
	0xa7: {"SBC A,[d+X]", 2, 6},
	0xa8: {"SBC A,#i", 2, 2},
	0xa9: {"SBC dd,ds", 3, 6},
	0xaa: {"MOV1 C,m.b", 3, 4},
	0xab: {"INC d", 2, 4},
	0xac: {"INC !a", 3, 5},
	0xad: {"CMP Y,#i", 2, 2},
	0xae: {"POP A", 1, 4},
	0xaf: {"MOV (X)+,A", 1, 4},

	0xb0: {"BCS r", 2, 4},
	0xb1: {"TCALL 11", 1, 8},
	0xb2: {"CLR1 d.5", 2, 4},
	0xb3: {"BBC d.5", 3, 5},
	0xb4: {"SBC A,d+X", 2, 4},
	0xb5: {"SBC A,!a+X", 3, 5},
	0xb6: {"SBC A,!a+Y", 3, 5},
	0xb7: {"SBC A,[d]+Y", 2, 6},
	0xb8: {"SBC d,#i", 3, 5},
	0xb9: {"SBC (X),(Y)", 1, 5},
	0xba: {"MOVW YA,d", 2, 5},
	0xbb: {"INC d+X", 2, 5},
	0xbc: {"INC A", 1, 2},
	0xbd: {"MOV SP,X", 1, 2},
	0xbe: {"DAS A", 1, 3},
	0xbf: {"MOV A,(X)+", 1, 4},

	0xc0: {"DI", 1, 3},
	0xc1: {"TCALL 12", 1, 8},
	0xc2: {"SET1 d.6", 2, 4},
	0xc3: {"BBS d.6", 3, 5},
	0xc4: {"MOV d,A", 2, 4},
	0xc5: {"MOV !a,A", 3, 5},
	0xc6: {"MOV (X),A", 1, 4},
	0xc7: {"MOV [d+X],A", 2, 7},
	0xc8: {"CMP X,#i", 2, 2},
	0xc9: {"MOV !a,X", 3, 5},
	0xca: {"MOV1 m.b,C", 3, 6},
	0xcb: {"MOV d,Y", 2, 4},
	0xcc: {"MOV !a,Y", 3, 5},
	0xcd: {"MOV X,#i", 2, 2},
	0xce: {"POP X", 1, 4},
	0xcf: {"MUL YA", 1, 9},

	0xd0: {"BNE r", 2, 4},
	0xd1: {"TCALL 13", 1, 8},
	0xd2: {"CLR1 d.6", 2, 4},
	0xd3: {"BBC d.6", 3, 5},
	0xd4: {"MOV d+X,A", 2, 5},
	0xd5: {"MOV !a+X,A", 3, 6},
	0xd6: {"MOV !a+Y,A", 3, 6},
	0xd7: {"MOV [d]+Y,A", 2, 7},
	0xd8: {"MOV d,X", 2, 4},
	0xd9: {"MOV d+Y,X", 2, 5},
	0xda: {"MOVW d,YA", 2, 5},
	0xdb: {"MOV d+X,Y", 2, 5},
	0xdc: {"DEC Y", 1, 2},
	0xdd: {"MOV A,Y", 1, 2},
	0xde: {"CBNE d+X,r", 3, 6},
	0xdf: {"DAA A", 1, 3},

	0xe0: {"CLRV", 1, 2},
	0xe1: {"TCALL 14", 1, 8},
	0xe2: {"SET1 d.7", 2, 4},
	0xe3: {"BBS d.7", 3, 5},
	0xe4: {"MOV A,d", 2, 3},
	0xe5: {"MOV A,!a", 3, 4},
	0xe6: {"MOV A,(X)", 1, 3},
	0xe7: {"MOV A,[d+X]", 2, 6},
	0xe8: {"MOV A,#i", 2, 2},
	0xe9: {"MOV X,!a", 3, 4},
	0xea: {"NOT1 m.b", 3, 5},
	0xeb: {"MOV Y,d", 2, 3},
	0xec: {"MOV Y,!a", 3, 4},
	0xed: {"NOTC", 1, 2},
	0xee: {"POP Y", 1, 4},
	0xef: {"SLEEP", 1, 2},

	0xf0: {"BEQ r", 2, 4},
	0xf1: {"TCALL 15", 1, 8},
	0xf2: {"CLR1 d.7", 2, 4},
	0xf3: {"BBC d.7", 3, 5},
	0xf4: {"MOV A,d+X", 2, 4},
	0xf5: {"MOV A,!a+X", 3, 5},
	0xf6: {"MOV A,!a+Y", 3, 5},
	0xf7: {"MOV A,[d]+Y", 2, 6},
	0xf8: {"MOV X,d", 2, 3},
	0xf9: {"MOV X,d+Y", 2, 4},
	0xfa: {"MOV dd,ds", 3, 5},
	0xfb: {"MOV Y,d+X", 2, 4},
	0xfc: {"INC Y", 1, 2},
	0xfd: {"MOV Y,A", 1, 2},
	0xfe: {"DBNZ Y,r", 2, 4},
	0xff: {"STOP", 1, 2},
}
