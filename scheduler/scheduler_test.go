package scheduler_test

import (
	"testing"

	"github.com/spc700-sound/spcsound/audiosink"
	"github.com/spc700-sound/spcsound/machine"
	"github.com/spc700-sound/spcsound/scheduler"
)

// writeDSP drives the CPU-visible index/data MMIO port, exactly as a real
// program would, rather than poking the register file directly.
func writeDSP(m *machine.Machine, index, value uint8) {
	m.Fabric.WriteByte(0x00f2, index)
	m.Fabric.WriteByte(0x00f3, value)
}

func TestSilentSnapshotProducesThirtyTwoZeroSamples(t *testing.T) {
	m := machine.New()
	m.CPU.LoadState(0x0000, 0, 0, 0, 0, 0xff)
	writeDSP(m, 0x6c, 0x60) // FLG: mute

	sink := audiosink.NewRingBuffer(64)
	s := scheduler.New(m, sink)

	for sink.Len() < 32 {
		if err := s.Tick(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for i := 0; i < 32; i++ {
		l, r, ok := sink.Pop()
		if !ok {
			t.Fatalf("sample %d: expected a buffered sample", i)
		}
		if l != 0 || r != 0 {
			t.Fatalf("sample %d: expected (0,0), got (%d,%d)", i, l, r)
		}
	}
}

func TestTimerTickAfter256CyclesSetsCounterToOne(t *testing.T) {
	m := machine.New()
	m.CPU.LoadState(0x0000, 0, 0, 0, 0, 0xff)
	m.Fabric.WriteByte(0x00fa, 0x01) // timer 0 divisor
	m.Fabric.WriteByte(0x00f1, 0x01) // enable timer 0

	s := scheduler.New(m, audiosink.NewRingBuffer(8))

	for s.Cycle() < 256 {
		if err := s.Tick(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := m.Fabric.ReadByte(0x00fd); got != 1 {
		t.Fatalf("expected timer 0 counter to read 1 after 256 cycles, got %d", got)
	}
	if got := m.Fabric.ReadByte(0x00fd); got != 0 {
		t.Fatalf("expected read to clear the counter, got %d", got)
	}
}

func TestSampleCadenceMatchesCycleCount(t *testing.T) {
	m := machine.New()
	m.CPU.LoadState(0x0000, 0, 0, 0, 0, 0xff)

	sink := audiosink.NewRingBuffer(4096)
	s := scheduler.New(m, sink)

	for i := 0; i < 500; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := s.Cycle() / scheduler.SamplePeriod
	if s.SampleCounter() != want {
		t.Fatalf("expected exactly one sample per %d-cycle window: cycle=%d samples=%d want=%d",
			scheduler.SamplePeriod, s.Cycle(), s.SampleCounter(), want)
	}
}

func TestStopHaltsRunAtNextInstructionBoundary(t *testing.T) {
	m := machine.New()
	m.CPU.LoadState(0x0000, 0, 0, 0, 0, 0xff)

	s := scheduler.New(m, audiosink.NewRingBuffer(4096))
	s.BreakCheck = func(pc uint16) bool {
		if pc >= 10 {
			s.Stop()
		}
		return false
	}

	if err := s.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.CPU.Reg.PC < 10 {
		t.Fatalf("expected Run to stop no earlier than pc=10, got pc=%#04x", m.CPU.Reg.PC)
	}
}

func TestBreakCheckHaltsRunBeforeExecutingTheBreakpointInstruction(t *testing.T) {
	m := machine.New()
	m.CPU.LoadState(0x0000, 0, 0, 0, 0, 0xff)

	s := scheduler.New(m, audiosink.NewRingBuffer(4096))
	s.BreakCheck = func(pc uint16) bool { return pc == 0x0005 }

	if err := s.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.CPU.Reg.PC != 0x0005 {
		t.Fatalf("expected Run to surrender control exactly at the breakpoint, got pc=%#04x", m.CPU.Reg.PC)
	}
}

func TestPushSampleReportsBackpressureWithoutBlockingTheLoop(t *testing.T) {
	m := machine.New()
	m.CPU.LoadState(0x0000, 0, 0, 0, 0, 0xff)

	// A one-slot ring buffer is immediately under backpressure from the
	// second sample onward; the scheduler must still make forward
	// progress rather than stalling.
	sink := audiosink.NewRingBuffer(1)
	s := scheduler.New(m, sink)

	for i := 0; i < 200; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if s.SampleCounter() == 0 {
		t.Fatalf("expected the scheduler to keep producing samples under backpressure")
	}
}
