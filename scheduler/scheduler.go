// Package scheduler implements the single-threaded cooperative loop that
// drives a machine.Machine: one CPU instruction at a time, timers ticked
// for the cycles that instruction consumed, and exactly one DSP sample
// pair produced per 64-cycle window. See SPEC_FULL.md section 4.5 and
// the concurrency model in section 5.
//
// Grounded on the teacher's hardware.VCS.Run (hardware/run.go): a
// continueCheck-style external predicate consulted between steps, rather
// than a goroutine or channel, since the core has exactly one thread of
// execution.
package scheduler

import (
	"time"

	"github.com/spc700-sound/spcsound/audiosink"
	"github.com/spc700-sound/spcsound/logger"
	"github.com/spc700-sound/spcsound/machine"
)

// SamplePeriod is the fixed number of CPU cycles between DSP sample
// ticks: 2,048,000 Hz / 32,000 Hz, per spec.md section 4.5.
const SamplePeriod = 64

// backpressureIdle is how long Run pauses after a Sink reports its
// buffer full, before resuming. Short enough not to visibly stall
// playback, long enough that a real consumer has a chance to drain.
const backpressureIdle = time.Millisecond

// BreakCheck is consulted before every instruction; it reports whether
// the current PC matches a debugger breakpoint, surrendering control to
// the debugger collaborator per spec.md section 4.5 step 1. A nil
// BreakCheck never halts.
type BreakCheck func(pc uint16) bool

// Scheduler owns the running cycle count, the next sample deadline and
// the sample counter; everything else it touches belongs to the Machine
// or the Sink it was constructed with.
type Scheduler struct {
	Machine *machine.Machine
	Sink    audiosink.Sink

	// BreakCheck, when set, is polled at the top of every Run iteration.
	BreakCheck BreakCheck

	cycle           uint64
	nextSampleCycle uint64
	sampleCounter   uint64
	stopRequested   bool
}

// New constructs a Scheduler driving m and pushing every produced sample
// pair to sink. The first sample fires after SamplePeriod cycles, not at
// cycle zero.
func New(m *machine.Machine, sink audiosink.Sink) *Scheduler {
	return &Scheduler{
		Machine:         m,
		Sink:            sink,
		nextSampleCycle: SamplePeriod,
	}
}

// Cycle returns the total CPU cycles executed so far.
func (s *Scheduler) Cycle() uint64 { return s.cycle }

// SampleCounter returns the number of sample pairs pushed to the sink.
func (s *Scheduler) SampleCounter() uint64 { return s.sampleCounter }

// Stop requests that Run return at the next loop iteration, the coarsest
// cancellation point the core offers: between instructions, never
// mid-instruction.
func (s *Scheduler) Stop() {
	s.stopRequested = true
}

// Reset clears the stop flag, allowing a Scheduler to Run again after a
// prior Stop or BreakCheck halt.
func (s *Scheduler) Reset() {
	s.stopRequested = false
}

// Run drives the machine until Stop is called, BreakCheck matches the
// current PC, or the CPU returns a fatal decode error. A BreakCheck halt
// and a Stop both return nil; only a CPU error is returned to the
// caller, which per spec.md section 7 is always fatal.
func (s *Scheduler) Run() error {
	for {
		if s.stopRequested {
			return nil
		}
		if s.BreakCheck != nil && s.BreakCheck(s.Machine.CPU.Reg.PC) {
			return nil
		}
		if err := s.Tick(); err != nil {
			return err
		}
	}
}

// Tick executes exactly one CPU instruction, advances timers by the
// cycles it consumed, and emits every DSP sample whose 64-cycle window
// that instruction crossed. An instruction that takes more than 64
// cycles can cross more than one window; Tick emits all of them before
// returning, preserving "at most one sample pair per 64-cycle window."
func (s *Scheduler) Tick() error {
	cycles, err := s.Machine.CPU.Step()
	if err != nil {
		return err
	}

	s.cycle += uint64(cycles)
	s.Machine.Timers.Tick(uint64(cycles))

	for s.cycle >= s.nextSampleCycle {
		left, right := s.Machine.DSP.Step()
		s.pushSample(left, right)
		s.nextSampleCycle += SamplePeriod
	}

	return nil
}

// pushSample hands one stereo pair to the sink and idles briefly if the
// sink reports backpressure, per spec.md section 5: the Scheduler never
// blocks, it surfaces the signal and yields.
func (s *Scheduler) pushSample(left, right int16) {
	full := s.Sink.Push(left, right)
	s.sampleCounter++

	if full {
		logger.Logf(logger.Allow, "scheduler", "sink backpressure at sample %d", s.sampleCounter)
		time.Sleep(backpressureIdle)
	}
}
