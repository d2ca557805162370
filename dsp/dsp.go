// Package dsp implements the 8-voice ADPCM DSP Voice Engine: per-voice
// BRR decode, Gaussian interpolation, ADSR/GAIN envelopes and the
// per-sample stereo mix. See SPEC_FULL.md section 4.4.
package dsp

import "github.com/spc700-sound/spcsound/logger"

const (
	regMVOLL = 0x0c
	regMVOLR = 0x1c
	regKON   = 0x4c
	regKOFF  = 0x5c
	regDIR   = 0x5d
	regFLG   = 0x6c
	regENDX  = 0x7c

	flgMute  = 0x40
	flgReset = 0x80
)

// Registers is the narrow view of the Memory Fabric's 128-byte DSP
// register file the engine needs to read master volume, DIR and FLG
// and to write ENVX/OUTX/ENDX back.
type Registers interface {
	DSPRegister(index int) uint8
	SetDSPRegister(index int, value uint8)
}

// Engine owns the eight voices and mixes them to a (left, right) pair
// once per call to Step. It satisfies memory.DSPObserver structurally
// via OnRegisterWrite.
type Engine struct {
	voices [8]voice
	endx   uint8

	ram  RAM
	regs Registers
}

// NewEngine constructs an Engine with all voices disabled.
func NewEngine() *Engine {
	return &Engine{}
}

// Attach wires the engine to the Memory Fabric it will read ADPCM data
// and the DSP register file from.
func (e *Engine) Attach(ram RAM, regs Registers) {
	e.ram = ram
	e.regs = regs
}

// OnRegisterWrite implements memory.DSPObserver. It is called after the
// Memory Fabric has already stored value at index; KON, KOFF, FLG and
// ENDX carry side effects beyond the plain store.
func (e *Engine) OnRegisterWrite(index int, value uint8) {
	switch index {
	case regKON:
		for i := 0; i < 8; i++ {
			if value&(1<<i) != 0 {
				e.keyOnVoice(i)
			}
		}
	case regKOFF:
		for i := 0; i < 8; i++ {
			if value&(1<<i) != 0 {
				e.voices[i].keyOff()
			}
		}
	case regFLG:
		if value&flgReset != 0 {
			for i := range e.voices {
				e.voices[i].keyOff()
			}
		}
	case regENDX:
		e.endx = 0
		e.regs.SetDSPRegister(regENDX, 0)
	default:
		e.applyVoiceFieldWrite(index, value)
	}
}

func (e *Engine) keyOnVoice(i int) {
	e.voices[i].dirBase = uint16(e.regs.DSPRegister(regDIR)) << 8
	e.voices[i].keyOn(e.ram)
}

// applyVoiceFieldWrite updates the in-memory voice struct mirroring the
// per-voice DSP register block (voice<<4 + 0..9). ENVX/OUTX (fields 8,9)
// are engine-written outputs; writes to them from the CPU side are
// accepted by the register file but have no effect on voice behaviour.
func (e *Engine) applyVoiceFieldWrite(index int, value uint8) {
	if index >= 0x80 {
		return
	}
	v := index >> 4
	field := index & 0x0f
	if v >= 8 || field > 9 {
		return
	}
	voice := &e.voices[v]

	switch field {
	case 0:
		voice.setVolume(int8(value), voice.volr)
	case 1:
		voice.setVolume(voice.voll, int8(value))
	case 2:
		voice.setPitch(value, uint8(voice.pitch>>8))
	case 3:
		voice.setPitch(uint8(voice.pitch), value)
	case 4:
		voice.srcn = value
	case 5, 6, 7:
		base := v << 4
		voice.env.configure(e.regs.DSPRegister(base+5), e.regs.DSPRegister(base+6), e.regs.DSPRegister(base+7))
	}
}

// Step produces one (left, right) sample pair by stepping all eight
// voices and mixing them per SPEC_FULL.md section 4.4.
func (e *Engine) Step() (left, right int16) {
	var leftAcc, rightAcc int32
	for i := range e.voices {
		l, r, endxFired := e.voices[i].step(e.ram)
		leftAcc += l
		rightAcc += r

		base := i << 4
		e.regs.SetDSPRegister(base+8, e.voices[i].envx)
		e.regs.SetDSPRegister(base+9, e.voices[i].outx)

		if endxFired {
			e.endx |= 1 << i
			e.regs.SetDSPRegister(regENDX, e.endx)
		}
	}

	mvoll := int8(e.regs.DSPRegister(regMVOLL))
	mvolr := int8(e.regs.DSPRegister(regMVOLR))
	l := (leftAcc * int32(mvoll)) >> 7
	r := (rightAcc * int32(mvolr)) >> 7

	if e.regs.DSPRegister(regFLG)&flgMute != 0 {
		l, r = 0, 0
	}

	return clampInt16(l), clampInt16(r)
}

func clampInt16(v int32) int16 {
	switch {
	case v < -32768:
		logger.Logf(logger.Allow, "dsp", "mix sample clamped from %d", v)
		return -32768
	case v > 32767:
		logger.Logf(logger.Allow, "dsp", "mix sample clamped from %d", v)
		return 32767
	default:
		return int16(v)
	}
}
