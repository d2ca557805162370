// Package debugger implements the interactive collaborator spec.md
// section 4.5 surrenders control to when the scheduler's current PC
// matches a breakpoint: step/continue, a PC breakpoint set, register and
// memory dumps, and a trace toggle. It never owns the machine it drives,
// only borrows it, per SPEC_FULL.md section 9.
//
// Grounded on the teacher's debugger.Debugger / breakpoints.go shape,
// narrowed from its target/trap/watch machinery (which has no SPC700
// analogue) down to the plain PC-breakpoint set spec.md actually calls
// for.
package debugger

import (
	"fmt"
	"strings"

	"github.com/spc700-sound/spcsound/disasm"
	"github.com/spc700-sound/spcsound/machine"
	"github.com/spc700-sound/spcsound/scheduler"
)

// Debugger wraps a Scheduler with a breakpoint set and inspection
// commands. Constructing one wires its breakpoint check into the
// Scheduler's BreakCheck, so Run halts exactly when spec.md section 4.5
// step 1 requires.
type Debugger struct {
	Machine   *machine.Machine
	Scheduler *scheduler.Scheduler

	breakpoints map[uint16]bool
	tracing     bool
	traceOut    func(line string)
}

// New wraps sched for interactive use. m must be the same Machine sched
// was constructed with.
func New(m *machine.Machine, sched *scheduler.Scheduler) *Debugger {
	d := &Debugger{
		Machine:     m,
		Scheduler:   sched,
		breakpoints: make(map[uint16]bool),
		traceOut:    func(line string) { fmt.Println(line) },
	}
	sched.BreakCheck = d.checkBreak
	return d
}

func (d *Debugger) checkBreak(pc uint16) bool {
	return d.breakpoints[pc]
}

// AddBreakpoint arms a breakpoint at pc.
func (d *Debugger) AddBreakpoint(pc uint16) {
	d.breakpoints[pc] = true
}

// RemoveBreakpoint disarms a breakpoint at pc.
func (d *Debugger) RemoveBreakpoint(pc uint16) {
	delete(d.breakpoints, pc)
}

// Breakpoints returns the currently armed addresses in no particular
// order.
func (d *Debugger) Breakpoints() []uint16 {
	out := make([]uint16, 0, len(d.breakpoints))
	for pc := range d.breakpoints {
		out = append(out, pc)
	}
	return out
}

// SetTrace toggles per-instruction trace output.
func (d *Debugger) SetTrace(on bool) {
	d.tracing = on
}

// Step executes exactly one instruction, ignoring breakpoints: a
// breakpoint sitting at the current PC would otherwise make
// single-stepping past it impossible.
func (d *Debugger) Step() error {
	if d.tracing {
		ins, _ := disasm.One(d.Machine.Fabric, d.Machine.CPU.Reg.PC)
		d.traceOut(fmt.Sprintf("%04x  %s", ins.Addr, ins.Text))
	}
	return d.Scheduler.Tick()
}

// Continue runs the scheduler until a breakpoint is hit, Stop is called
// on the underlying Scheduler, or a fatal CPU error occurs.
func (d *Debugger) Continue() error {
	d.Scheduler.Reset()
	return d.Scheduler.Run()
}

// DumpRegisters renders the CPU register file as one line of text.
func (d *Debugger) DumpRegisters() string {
	r := d.Machine.CPU.Reg
	return fmt.Sprintf("pc=%04x a=%02x x=%02x y=%02x sp=%02x psw=%02x",
		r.PC, r.A, r.X, r.Y, r.SP, r.PSW.Value())
}

// DumpMemory renders Fabric[start:end) as a hex listing, 16 bytes per
// line, for the REPL's "mem" command.
func (d *Debugger) DumpMemory(start, end uint16) string {
	var b strings.Builder
	for addr := uint32(start); addr < uint32(end); addr++ {
		if (addr-uint32(start))%16 == 0 {
			if addr != uint32(start) {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%04x ", addr)
		}
		fmt.Fprintf(&b, " %02x", d.Machine.Fabric.ReadByte(uint16(addr)))
	}
	return b.String()
}
