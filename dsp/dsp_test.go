package dsp

import "testing"

// flatRAM is a trivial RAM for exercising the voice engine in isolation.
type flatRAM struct {
	mem [65536]byte
}

func (r *flatRAM) ReadByte(addr uint16) uint8 { return r.mem[addr] }

// flatRegisters is a standalone 128-byte register file satisfying
// Registers, mirroring what memory.Fabric provides in the full machine.
type flatRegisters struct {
	regs [128]byte
}

func (r *flatRegisters) DSPRegister(index int) uint8        { return r.regs[index&0x7f] }
func (r *flatRegisters) SetDSPRegister(index int, v uint8) { r.regs[index&0x7f] = v }

func newHarness() (*Engine, *flatRAM, *flatRegisters) {
	ram := &flatRAM{}
	regs := &flatRegisters{}
	e := NewEngine()
	e.Attach(ram, regs)
	return e, ram, regs
}

func TestSilentSnapshotProducesZeroSamples(t *testing.T) {
	e, _, regs := newHarness()
	regs.regs[regFLG] = 0x60

	for i := 0; i < 32; i++ {
		l, r := e.Step()
		if l != 0 || r != 0 {
			t.Fatalf("sample %d: expected (0,0), got (%d,%d)", i, l, r)
		}
	}
}

func TestConstantVolumeSawtoothRampsUp(t *testing.T) {
	e, ram, regs := newHarness()

	// BRR block at 0x1000: header 0xC0 (range=12, filter=0, loop=0, last=0),
	// payload nibbles monotonically non-decreasing from 0 to 7 (avoiding
	// nibble value 8, which two's-complement sign-extends to -8 and would
	// not be monotonic). The following block plateaus at the same top
	// nibble so decode never dips once pitch_counter rolls into it.
	ram.mem[0x1000] = 0xc0
	payload := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	for i, b := range payload {
		ram.mem[0x1001+i] = b
	}
	ram.mem[0x1009] = 0xc0 // next block header: range 12, filter 0, loop 0, last 0
	for i := 0; i < 8; i++ {
		ram.mem[0x100a+i] = 0x77
	}

	// Directory at DIR*0x100 = 0x2000, clear of the block data: source 0
	// starts (and loops) at 0x1000.
	regs.regs[regDIR] = 0x20
	ram.mem[0x2000+0] = 0x00
	ram.mem[0x2000+1] = 0x10
	ram.mem[0x2000+2] = 0x00
	ram.mem[0x2000+3] = 0x10

	regs.regs[0x04] = 0x00 // V0SRCN
	regs.regs[0x02] = 0x00 // V0PITCHL
	regs.regs[0x03] = 0x10 // V0PITCHH -> pitch 0x1000
	regs.regs[0x00] = 0x7f // V0VOLL
	regs.regs[0x01] = 0x7f // V0VOLR
	regs.regs[regMVOLL] = 0x7f
	regs.regs[regMVOLR] = 0x7f
	regs.regs[0x05] = 0x8f // V0ADSR1: ADSR on, ar=15
	regs.regs[0x06] = 0xe0 // V0ADSR2: sl=7, sr=0

	e.OnRegisterWrite(0x04, regs.regs[0x04])
	e.OnRegisterWrite(0x02, regs.regs[0x02])
	e.OnRegisterWrite(0x03, regs.regs[0x03])
	e.OnRegisterWrite(0x00, regs.regs[0x00])
	e.OnRegisterWrite(0x01, regs.regs[0x01])
	e.OnRegisterWrite(0x05, regs.regs[0x05])
	e.OnRegisterWrite(0x06, regs.regs[0x06])
	e.OnRegisterWrite(regKON, 0x01)

	// The Gaussian kernel's negative side lobes mean strict sample-by-sample
	// monotonicity isn't guaranteed even for a monotonic input sequence, so
	// this checks the overall trend (rising from silence to a clearly
	// louder tail) rather than asserting every consecutive pair increases.
	var samples [16]int16
	for i := range samples {
		samples[i], _ = e.Step()
	}
	if samples[0] > samples[15]/2 {
		t.Fatalf("expected a clear rise from sample 0 (%d) to sample 15 (%d)", samples[0], samples[15])
	}
	if samples[15] == 0 {
		t.Fatalf("expected non-zero output by sample 15")
	}

	if e.voices[0].env.level != envelopeMax-1 {
		t.Errorf("expected envelope to reach max after two fast (ar=15) attack steps, got %d", e.voices[0].env.level)
	}
}

func TestVoiceEndWithLoopKeepsVoiceEnabledAndSetsENDX(t *testing.T) {
	e, ram, regs := newHarness()

	// Directory table lives at 0x2000 (DIR=0x20); its one entry gives
	// block A at 0x2100 (last=1, loop=1) as the start address and block B
	// at 0x3000 as the loop target.
	ram.mem[0x2100] = 0xc0 | 0x02 | 0x01 // range 12, filter 0, loop=1, last=1
	ram.mem[0x3000] = 0xc0

	regs.regs[regDIR] = 0x20
	dirBase := uint16(0x2000)
	ram.mem[dirBase+0] = 0x00
	ram.mem[dirBase+1] = 0x21
	ram.mem[dirBase+2] = 0x00
	ram.mem[dirBase+3] = 0x30

	regs.regs[0x04] = 0x00
	regs.regs[0x02] = 0x00
	regs.regs[0x03] = 0x10
	regs.regs[0x05] = 0x00 // GAIN mode, direct value 0: the envelope sits at 0, but a voice only disables in Release
	regs.regs[0x07] = 0x00
	e.OnRegisterWrite(0x04, regs.regs[0x04])
	e.OnRegisterWrite(0x02, regs.regs[0x02])
	e.OnRegisterWrite(0x03, regs.regs[0x03])
	e.OnRegisterWrite(0x05, regs.regs[0x05])
	e.OnRegisterWrite(0x07, regs.regs[0x07])
	e.OnRegisterWrite(regKON, 0x01)

	for i := 0; i < 16; i++ {
		e.Step()
	}

	if regs.DSPRegister(regENDX)&0x01 == 0 {
		t.Fatalf("expected ENDX bit 0 set after block end")
	}
	if !e.voices[0].enabled {
		t.Fatalf("expected voice to remain enabled after looping")
	}
	if e.voices[0].curAddr != 0x3000+9 {
		t.Fatalf("expected voice to have decoded loop block at 0x3000, curAddr=%#04x", e.voices[0].curAddr)
	}
}

func TestBRRDecodeIsIdempotentForNonLastBlocks(t *testing.T) {
	raw := [9]byte{0xc0, 0x01, 0x23, 0x45, 0x67, 0x88, 0x88, 0x88, 0x88}
	b1, p0a, p1a := decodeBlock(raw, 0, 0)
	b2, p0b, p1b := decodeBlock(raw, 0, 0)

	if b1.pcm != b2.pcm {
		t.Fatalf("expected identical decode output, got %v vs %v", b1.pcm, b2.pcm)
	}
	if p0a != p0b || p1a != p1b {
		t.Fatalf("expected identical filter history output")
	}
}

func TestKeyOffForcesReleaseAndEventuallyDisables(t *testing.T) {
	e, ram, regs := newHarness()
	ram.mem[0x4100] = 0xc0
	regs.regs[regDIR] = 0x40
	ram.mem[0x4000+0], ram.mem[0x4000+1] = 0x00, 0x41
	regs.regs[0x04] = 0x00
	regs.regs[0x03] = 0x10
	regs.regs[0x05] = 0x80 // ADSR on, ar=0
	e.OnRegisterWrite(0x04, regs.regs[0x04])
	e.OnRegisterWrite(0x03, regs.regs[0x03])
	e.OnRegisterWrite(0x05, regs.regs[0x05])
	e.OnRegisterWrite(regKON, 0x01)

	e.voices[0].env.level = 4 // near zero so release finishes quickly
	e.OnRegisterWrite(regKOFF, 0x01)

	for i := 0; i < 4; i++ {
		e.Step()
	}

	if e.voices[0].enabled {
		t.Fatalf("expected voice to disable once release envelope reaches 0")
	}
}
