// Package memory implements the Memory Fabric: a flat 64 KiB byte-addressable
// store with a 16-byte memory-mapped IO window (addresses 0x00F0-0x00FF)
// that dispatches reads and writes to the timer bank and the DSP voice
// engine. See SPEC_FULL.md section 4.1.
package memory

import "github.com/spc700-sound/spcsound/logger"

// Timers is the narrow view of the timer bank that the Memory Fabric needs
// in order to service the Control (0xF1), divisor (0xFA-0xFC) and counter
// (0xFD-0xFF) registers. Implemented by *timer.Bank.
type Timers interface {
	SetEnable(index int, enabled bool, divisor uint8)
	ReadCounter(index int) uint8
}

// DSPObserver is notified whenever the CPU writes to the DSP data register
// (0xF3), after the byte has already been stored in the register file.
// Implemented by *dsp.Engine so it can react to KON, KOFF, FLG and ENDX
// writes as described in SPEC_FULL.md section 4.4.
type DSPObserver interface {
	OnRegisterWrite(index int, value uint8)
}

const (
	mmioBase = 0x00f0
	mmioTop  = 0x00ff

	regTest        = 0x00
	regControl     = 0x01
	regDSPIndex    = 0x02
	regDSPData     = 0x03
	regDivisorBase = 0x0a // 0xfa, 0xfb, 0xfc
	regCounterBase = 0x0d // 0xfd, 0xfe, 0xff
)

// Fabric is the 64 KiB RAM image plus the 128-byte DSP register file. Per
// SPEC_FULL.md section 3, the Fabric owns both; the CPU and DSP voice
// engine only ever hold a borrowed reference to it.
type Fabric struct {
	ram     [65536]byte
	dspRegs [128]byte
	dspIdx  uint8

	timers   Timers
	observer DSPObserver
}

// NewFabric constructs an empty Memory Fabric. The DSP index/data port
// works without any collaborator attached. Until AttachTimers is called,
// Control writes only store the byte and counter reads at 0xFD-0xFF
// return 0; until AttachDSPObserver is called, data-port writes only
// update the register file.
func NewFabric() *Fabric {
	return &Fabric{}
}

// AttachTimers wires the timer bank that the Control/divisor/counter
// registers dispatch to.
func (f *Fabric) AttachTimers(t Timers) {
	f.timers = t
}

// AttachDSPObserver wires the DSP engine that reacts to writes through the
// DSP data register.
func (f *Fabric) AttachDSPObserver(o DSPObserver) {
	f.observer = o
}

// LoadRAM overwrites the entire RAM image, e.g. from a loaded snapshot.
func (f *Fabric) LoadRAM(data [65536]byte) {
	f.ram = data
}

// LoadDSPRegisters overwrites the entire DSP register file.
func (f *Fabric) LoadDSPRegisters(data [128]byte) {
	f.dspRegs = data
}

// DSPRegister returns the DSP register at the given index (0..127),
// wrapping out-of-range indices modulo 128. It is the read half of the
// borrow the DSP voice engine holds on the Fabric's register file.
func (f *Fabric) DSPRegister(index int) uint8 {
	return f.dspRegs[index&0x7f]
}

// SetDSPRegister stores a byte into the DSP register file directly,
// bypassing the CPU-visible index/data port. Used by the DSP voice engine
// to update VxENVX, VxOUTX and ENDX (SPEC_FULL.md section 4.4).
func (f *Fabric) SetDSPRegister(index int, value uint8) {
	f.dspRegs[index&0x7f] = value
}

// ReadByte reads one byte, dispatching the MMIO window as needed.
func (f *Fabric) ReadByte(addr uint16) uint8 {
	if addr < mmioBase || addr > mmioTop {
		return f.ram[addr]
	}
	return f.readMMIO(addr - mmioBase)
}

// WriteByte writes one byte, dispatching the MMIO window as needed.
func (f *Fabric) WriteByte(addr uint16, val uint8) {
	if addr < mmioBase || addr > mmioTop {
		f.ram[addr] = val
		return
	}
	f.writeMMIO(addr-mmioBase, val)
}

// ReadWord reads a little-endian 16-bit value as two successive byte reads.
func (f *Fabric) ReadWord(addr uint16) uint16 {
	lo := f.ReadByte(addr)
	hi := f.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit value as two successive byte
// writes, low byte first.
func (f *Fabric) WriteWord(addr uint16, val uint16) {
	f.WriteByte(addr, uint8(val))
	f.WriteByte(addr+1, uint8(val>>8))
}

func (f *Fabric) readMMIO(offset uint16) uint8 {
	switch {
	case offset == regDSPData:
		return f.dspRegs[f.dspIdx&0x7f]
	case offset >= regCounterBase && offset <= regCounterBase+2:
		idx := int(offset - regCounterBase)
		if f.timers != nil {
			return f.timers.ReadCounter(idx)
		}
		return 0
	default:
		return f.ram[mmioBase+offset]
	}
}

func (f *Fabric) writeMMIO(offset uint16, val uint8) {
	switch {
	case offset == regControl:
		f.ram[mmioBase+offset] = val
		if f.timers != nil {
			for i := 0; i < 3; i++ {
				enabled := val&(1<<uint(i)) != 0
				f.timers.SetEnable(i, enabled, f.ram[mmioBase+regDivisorBase+uint16(i)])
			}
		}
	case offset == regDSPIndex:
		idx := val
		if idx > 127 {
			idx %= 127
			logger.Logf(logger.Allow, "dsp", "register index %#02x out of range, wrapped to %#02x", val, idx)
		}
		f.dspIdx = idx
		f.ram[mmioBase+offset] = idx
	case offset == regDSPData:
		f.dspRegs[f.dspIdx&0x7f] = val
		if f.observer != nil {
			f.observer.OnRegisterWrite(int(f.dspIdx&0x7f), val)
		}
	case offset >= regCounterBase && offset <= regCounterBase+2:
		// timer counters are read-only; writes are silently ignored.
	default:
		f.ram[mmioBase+offset] = val
	}
}
