package cpu_test

import (
	"testing"

	"github.com/spc700-sound/spcsound/cpu"
)

// flatBus is a trivial 64 KiB Bus for exercising the CPU in isolation,
// with no MMIO behaviour at all.
type flatBus struct {
	mem [65536]byte
}

func (b *flatBus) ReadByte(addr uint16) uint8  { return b.mem[addr] }
func (b *flatBus) WriteByte(addr uint16, v uint8) { b.mem[addr] = v }
func (b *flatBus) ReadWord(addr uint16) uint16 {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}
func (b *flatBus) WriteWord(addr uint16, v uint16) {
	b.mem[addr] = uint8(v)
	b.mem[addr+1] = uint8(v >> 8)
}

func newCPU() (*cpu.CPU, *flatBus) {
	bus := &flatBus{}
	return cpu.New(bus), bus
}

func TestAdcWrapsAndSetsCarryZero(t *testing.T) {
	c, bus := newCPU()
	c.LoadState(0x1000, 0xff, 0, 0, 0, 0xff)
	bus.mem[0x1000] = 0x88 // ADC A,#i
	bus.mem[0x1001] = 0x01

	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.Reg.A != 0x00 {
		t.Errorf("expected A=0x00, got %#02x", c.Reg.A)
	}
	if !c.Reg.PSW.C || !c.Reg.PSW.Z || c.Reg.PSW.N || c.Reg.PSW.V {
		t.Errorf("unexpected flags: %+v", c.Reg.PSW)
	}
}

func TestAdcSignedOverflow(t *testing.T) {
	c, bus := newCPU()
	c.LoadState(0x1000, 0x7f, 0, 0, 0, 0xff)
	bus.mem[0x1000] = 0x88
	bus.mem[0x1001] = 0x01

	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if !c.Reg.PSW.V || !c.Reg.PSW.N || c.Reg.PSW.Z {
		t.Errorf("unexpected flags: %+v", c.Reg.PSW)
	}
}

func TestCmpEqualSetsZeroAndCarry(t *testing.T) {
	c, bus := newCPU()
	c.LoadState(0x1000, 0x42, 0, 0, 0, 0xff)
	bus.mem[0x1000] = 0x68 // CMP A,#i
	bus.mem[0x1001] = 0x42

	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if !c.Reg.PSW.Z || !c.Reg.PSW.C {
		t.Errorf("expected Z and C set, got %+v", c.Reg.PSW)
	}
}

func TestCallThenRetRoundTrips(t *testing.T) {
	c, bus := newCPU()
	c.LoadState(0x1000, 0, 0, 0, 0, 0xff)
	bus.mem[0x1000] = 0x3f // CALL !a
	bus.mem[0x1001] = 0x34
	bus.mem[0x1002] = 0x12
	bus.mem[0x1234] = 0x6f // RET

	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.Reg.PC != 0x1234 {
		t.Fatalf("expected PC=0x1234 after CALL, got %#04x", c.Reg.PC)
	}
	if c.Reg.SP != 0xfd {
		t.Fatalf("expected SP=0xfd after CALL, got %#02x", c.Reg.SP)
	}

	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.Reg.PC != 0x1003 {
		t.Fatalf("expected PC=0x1003 after RET, got %#04x", c.Reg.PC)
	}
	if c.Reg.SP != 0xff {
		t.Fatalf("expected SP restored to 0xff, got %#02x", c.Reg.SP)
	}
}

func TestBBSTakenAndNotTaken(t *testing.T) {
	c, bus := newCPU()
	c.LoadState(0x2000, 0, 0, 0, 0, 0xff)
	bus.mem[0x0010] = 0x01
	bus.mem[0x2000] = 0x03 // BBS d.0
	bus.mem[0x2001] = 0x10
	bus.mem[0x2002] = 0x05

	cycles, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if c.Reg.PC != 0x2008 {
		t.Errorf("expected PC=0x2008, got %#04x", c.Reg.PC)
	}
	if cycles != 7 {
		t.Errorf("expected 7 cycles, got %d", cycles)
	}

	c.LoadState(0x2000, 0, 0, 0, 0, 0xff)
	bus.mem[0x0010] = 0x00
	cycles, err = c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if c.Reg.PC != 0x2003 {
		t.Errorf("expected PC=0x2003, got %#04x", c.Reg.PC)
	}
	if cycles != 5 {
		t.Errorf("expected 5 cycles, got %d", cycles)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	// the table is fully populated (every real SPC700 opcode is defined
	// in hardware), so this exercises DecodeError's message directly
	// rather than through Step.
	err := cpu.DecodeError{Opcode: 0xff, PC: 0x1000}
	if err.Error() == "" {
		t.Fatal("expected non-empty error message")
	}
}

func TestPushPopRoundTrips(t *testing.T) {
	c, bus := newCPU()
	c.LoadState(0x1000, 0x55, 0, 0, 0, 0xff)
	bus.mem[0x1000] = 0x2d // PUSH A
	bus.mem[0x1001] = 0xae // POP A

	if _, err := c.Step(); err != nil { // PUSH A
		t.Fatal(err)
	}
	c.Reg.A = 0x00
	if _, err := c.Step(); err != nil { // POP A
		t.Fatal(err)
	}
	if c.Reg.A != 0x55 {
		t.Errorf("expected A=0x55 after push/pop round trip, got %#02x", c.Reg.A)
	}
}
