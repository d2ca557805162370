// Package disasm renders SPC700 instructions as text, reusing
// cpu.OpcodeTable as its only source of opcode shape so it can never
// disagree with the executor about instruction length. Grounded on the
// specification's own design note calling the mnemonic table "a
// debug-only collaborator" over the same compile-time opcode table the
// CPU executor uses.
package disasm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spc700-sound/spcsound/cpu"
)

// Bus is the narrow read-only view the disassembler needs of the Memory
// Fabric.
type Bus interface {
	ReadByte(addr uint16) uint8
}

var (
	tokenImm    = regexp.MustCompile(`#i`)
	tokenAbsX   = regexp.MustCompile(`!a\+X`)
	tokenAbsY   = regexp.MustCompile(`!a\+Y`)
	tokenAbs    = regexp.MustCompile(`!a`)
	tokenIndDPX = regexp.MustCompile(`\[d\+X\]`)
	tokenIndDPY = regexp.MustCompile(`\[d\]\+Y`)
	tokenDPX    = regexp.MustCompile(`d\+X`)
	tokenDPY    = regexp.MustCompile(`d\+Y`)
	tokenDP     = regexp.MustCompile(`\bd\b`)
	tokenRel    = regexp.MustCompile(`\br\b`)
	tokenMemBit = regexp.MustCompile(`/?m\.b`)
)

// Instruction is one disassembled line: its address, raw bytes and
// rendered text.
type Instruction struct {
	Addr  uint16
	Bytes []byte
	Text  string
}

// One decodes a single instruction starting at addr and returns it along
// with the address of the next instruction.
func One(bus Bus, addr uint16) (Instruction, uint16) {
	opcode := bus.ReadByte(addr)
	entry := cpu.OpcodeTable[opcode]
	if entry.Length == 0 {
		return Instruction{Addr: addr, Bytes: []byte{opcode}, Text: fmt.Sprintf(".byte %#02x", opcode)}, addr + 1
	}

	raw := make([]byte, entry.Length)
	for i := range raw {
		raw[i] = bus.ReadByte(addr + uint16(i))
	}

	text := render(entry.Mnemonic, raw[1:])
	return Instruction{Addr: addr, Bytes: raw, Text: text}, addr + uint16(entry.Length)
}

// Range decodes count instructions starting at addr, for a debugger's
// disassembly listing.
func Range(bus Bus, addr uint16, count int) []Instruction {
	out := make([]Instruction, 0, count)
	for i := 0; i < count; i++ {
		var ins Instruction
		ins, addr = One(bus, addr)
		out = append(out, ins)
	}
	return out
}

// render substitutes a mnemonic template's operand placeholders with
// values decoded from operand, the instruction's bytes after the opcode.
// Most addressing modes consume operand bytes left to right in the same
// order they appear in the template; the two-direct-page-operand family
// (OR/AND/EOR/ADC/SBC/CMP/MOV dd,ds) is the one exception, since its byte
// encoding is source-then-destination while the mnemonic is written
// destination-first.
func render(mnemonic string, operand []byte) string {
	if strings.Contains(mnemonic, "dd,ds") {
		src, dst := operand[0], operand[1]
		return strings.Replace(mnemonic, "dd,ds", fmt.Sprintf("$%02x,$%02x", dst, src), 1)
	}

	pos := 0
	next8 := func() uint8 {
		v := operand[pos]
		pos++
		return v
	}
	next16 := func() uint16 {
		lo, hi := operand[pos], operand[pos+1]
		pos += 2
		return uint16(hi)<<8 | uint16(lo)
	}

	s := mnemonic
	for _, step := range []struct {
		re   *regexp.Regexp
		fill func() string
	}{
		{tokenAbsX, func() string { return fmt.Sprintf("$%04x+X", next16()) }},
		{tokenAbsY, func() string { return fmt.Sprintf("$%04x+Y", next16()) }},
		{tokenAbs, func() string { return fmt.Sprintf("$%04x", next16()) }},
		{tokenIndDPX, func() string { return fmt.Sprintf("[$%02x+X]", next8()) }},
		{tokenIndDPY, func() string { return fmt.Sprintf("[$%02x]+Y", next8()) }},
		{tokenDPX, func() string { return fmt.Sprintf("$%02x+X", next8()) }},
		{tokenDPY, func() string { return fmt.Sprintf("$%02x+Y", next8()) }},
		{tokenDP, func() string { return fmt.Sprintf("$%02x", next8()) }},
		{tokenRel, func() string { return fmt.Sprintf("$%02x", next8()) }},
		{tokenMemBit, func() string {
			word := next16()
			addr, bit := uint16(word&0x1fff), uint(word>>13)
			return fmt.Sprintf("$%04x.%d", addr, bit)
		}},
		{tokenImm, func() string { return fmt.Sprintf("#$%02x", next8()) }},
	} {
		if loc := step.re.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + step.fill() + s[loc[1]:]
		}
	}
	return s
}
