package memory_test

import (
	"testing"

	"github.com/spc700-sound/spcsound/memory"
)

func TestPlainRAMReadWrite(t *testing.T) {
	f := memory.NewFabric()
	f.WriteByte(0x0200, 0x42)
	if v := f.ReadByte(0x0200); v != 0x42 {
		t.Errorf("expected 0x42, got %#02x", v)
	}
}

func TestWordReadWriteLittleEndian(t *testing.T) {
	f := memory.NewFabric()
	f.WriteWord(0x0300, 0x1234)
	if v := f.ReadByte(0x0300); v != 0x34 {
		t.Errorf("expected low byte 0x34, got %#02x", v)
	}
	if v := f.ReadByte(0x0301); v != 0x12 {
		t.Errorf("expected high byte 0x12, got %#02x", v)
	}
	if v := f.ReadWord(0x0300); v != 0x1234 {
		t.Errorf("expected 0x1234, got %#04x", v)
	}
}

func TestDSPIndexDataPort(t *testing.T) {
	f := memory.NewFabric()
	f.WriteByte(0x00f2, 0x0c) // select register 0x0c
	f.WriteByte(0x00f3, 0x7f) // write through data port
	if v := f.DSPRegister(0x0c); v != 0x7f {
		t.Errorf("expected register 0x0c to hold 0x7f, got %#02x", v)
	}
	if v := f.ReadByte(0x00f3); v != 0x7f {
		t.Errorf("expected data port readback 0x7f, got %#02x", v)
	}
}

type recordingObserver struct {
	index int
	value uint8
	calls int
}

func (r *recordingObserver) OnRegisterWrite(index int, value uint8) {
	r.index, r.value, r.calls = index, value, r.calls+1
}

func TestDSPObserverNotifiedOnWrite(t *testing.T) {
	f := memory.NewFabric()
	obs := &recordingObserver{}
	f.AttachDSPObserver(obs)

	f.WriteByte(0x00f2, 0x4c) // KON
	f.WriteByte(0x00f3, 0x01)

	if obs.calls != 1 {
		t.Fatalf("expected 1 observer call, got %d", obs.calls)
	}
	if obs.index != 0x4c || obs.value != 0x01 {
		t.Errorf("unexpected observer call: index=%#02x value=%#02x", obs.index, obs.value)
	}
}

type recordingTimers struct {
	enabled  [3]bool
	divisors [3]uint8
	counters [3]uint8
}

func (r *recordingTimers) SetEnable(index int, enabled bool, divisor uint8) {
	r.enabled[index] = enabled
	r.divisors[index] = divisor
}

func (r *recordingTimers) ReadCounter(index int) uint8 {
	return r.counters[index]
}

func TestControlWriteDispatchesToTimers(t *testing.T) {
	f := memory.NewFabric()
	rt := &recordingTimers{}
	f.AttachTimers(rt)

	f.WriteByte(0x00fa, 0x08) // divisor for timer 0
	f.WriteByte(0x00f1, 0x01) // enable timer 0 only

	if !rt.enabled[0] || rt.enabled[1] || rt.enabled[2] {
		t.Errorf("expected only timer 0 enabled, got %v", rt.enabled)
	}
	if rt.divisors[0] != 0x08 {
		t.Errorf("expected divisor 0x08 latched, got %#02x", rt.divisors[0])
	}
}

func TestCounterReadDispatchesToTimers(t *testing.T) {
	f := memory.NewFabric()
	rt := &recordingTimers{counters: [3]uint8{1, 2, 3}}
	f.AttachTimers(rt)

	if v := f.ReadByte(0x00fd); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	if v := f.ReadByte(0x00ff); v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
}
