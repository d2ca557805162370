// Package machine wires the Memory Fabric, timer bank, DSP voice engine
// and CPU into one owned value, the only place in the module that holds
// concrete references to all four. See SPEC_FULL.md section 3.
package machine

import (
	"github.com/spc700-sound/spcsound/cpu"
	"github.com/spc700-sound/spcsound/dsp"
	"github.com/spc700-sound/spcsound/memory"
	"github.com/spc700-sound/spcsound/timer"
)

// Machine owns every piece of state the core touches. The CPU and DSP
// engine only ever see it through the narrow interfaces the memory and
// dsp packages declare; Machine is where those borrows are wired up.
type Machine struct {
	Fabric *memory.Fabric
	Timers *timer.Bank
	DSP    *dsp.Engine
	CPU    *cpu.CPU
}

// New constructs a fully wired Machine with empty RAM and all voices
// disabled. Load a snapshot onto it before running the scheduler.
func New() *Machine {
	fabric := memory.NewFabric()
	timers := timer.NewBank()
	engine := dsp.NewEngine()
	c := cpu.New(fabric)

	fabric.AttachTimers(timers)
	fabric.AttachDSPObserver(engine)
	engine.Attach(fabric, fabric)

	return &Machine{
		Fabric: fabric,
		Timers: timers,
		DSP:    engine,
		CPU:    c,
	}
}

// LoadState installs a fully parsed snapshot: CPU registers, the RAM
// image and the DSP register file. The DSP register file is installed
// via LoadDSPRegisters rather than through the CPU-visible index/data
// port, so no KON/KOFF/FLG/ENDX side effects fire for state that was
// already baked into the snapshot.
func (m *Machine) LoadState(pc uint16, a, x, y, psw, sp uint8, ram [65536]byte, dspRegs [128]byte) {
	m.CPU.LoadState(pc, a, x, y, psw, sp)
	m.Fabric.LoadRAM(ram)
	m.Fabric.LoadDSPRegisters(dspRegs)
}
