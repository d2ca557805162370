package disasm_test

import (
	"testing"

	"github.com/spc700-sound/spcsound/disasm"
)

type flatBus struct {
	mem [65536]byte
}

func (b *flatBus) ReadByte(addr uint16) uint8 { return b.mem[addr] }

func TestOneDecodesImmediate(t *testing.T) {
	b := &flatBus{}
	b.mem[0x1000] = 0x88 // ADC A,#i
	b.mem[0x1001] = 0x42

	ins, next := disasm.One(b, 0x1000)
	if ins.Text != "ADC A,#$42" {
		t.Errorf("expected %q, got %q", "ADC A,#$42", ins.Text)
	}
	if next != 0x1002 {
		t.Errorf("expected next=0x1002, got %#04x", next)
	}
}

func TestOneDecodesAbsolute(t *testing.T) {
	b := &flatBus{}
	b.mem[0x1000] = 0x05 // OR A,!a
	b.mem[0x1001] = 0x34
	b.mem[0x1002] = 0x12

	ins, _ := disasm.One(b, 0x1000)
	if ins.Text != "OR A,$1234" {
		t.Errorf("expected %q, got %q", "OR A,$1234", ins.Text)
	}
}

func TestOneDecodesTwoDirectPageOperandsInMnemonicOrder(t *testing.T) {
	b := &flatBus{}
	b.mem[0x1000] = 0x09 // OR dd,ds; encoded source,dest
	b.mem[0x1001] = 0x10 // source offset
	b.mem[0x1002] = 0x20 // dest offset

	ins, _ := disasm.One(b, 0x1000)
	if ins.Text != "OR $20,$10" {
		t.Errorf("expected %q, got %q", "OR $20,$10", ins.Text)
	}
}

func TestOneDecodesBranchDisplacement(t *testing.T) {
	b := &flatBus{}
	b.mem[0x1000] = 0x10 // BPL r
	b.mem[0x1001] = 0xfe

	ins, _ := disasm.One(b, 0x1000)
	if ins.Text != "BPL $fe" {
		t.Errorf("expected %q, got %q", "BPL $fe", ins.Text)
	}
}

func TestRangeProducesRequestedCount(t *testing.T) {
	b := &flatBus{}
	for i := 0; i < 8; i++ {
		b.mem[uint16(i)] = 0x00 // NOP, length 1
	}
	out := disasm.Range(b, 0, 5)
	if len(out) != 5 {
		t.Fatalf("expected 5 instructions, got %d", len(out))
	}
	if out[4].Addr != 4 {
		t.Errorf("expected 5th instruction at addr 4, got %d", out[4].Addr)
	}
}
