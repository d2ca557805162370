package dsp

// ratePeriod maps a 5-bit envelope rate code to the number of samples
// between updates. Attack, decay, sustain and the gain modes all index
// into this single table (attack and decay use an odd/even slice of it);
// this is the standard period-table scheme documented for the DSP's
// envelope hardware, grounded against the shape the original_source
// rate-generation scripts (attack-sample-rate.py, decay-sample-rate.py,
// sustain-sample-rate.py) converge on: each produces, per rate code, a
// number of samples to wait before the next step, monotonically
// decreasing as the rate code increases. Those scripts derive their
// numbers from a simulated exponential decay and don't agree on a
// second axis (sustain level) changing the period itself - only the
// stopping point does, per SPEC_FULL.md's ADSR description - so the
// period here depends only on the rate code, with sustain level used
// purely as the decay-phase stop threshold.
var ratePeriod = [32]int{
	0, 2048, 1536, 1280, 1024, 768, 640, 512,
	384, 320, 256, 192, 160, 128, 96, 80,
	64, 48, 40, 32, 24, 20, 16, 12,
	10, 8, 6, 5, 4, 3, 2, 1,
}

func attackPeriod(ar uint8) int {
	return ratePeriod[ar*2+1]
}

func decayPeriod(dr uint8) int {
	return ratePeriod[16+dr*2]
}

func sustainPeriod(sr uint8) int {
	return ratePeriod[sr&0x1f]
}

func gainPeriod(rate uint8) int {
	return ratePeriod[rate&0x1f]
}

const (
	attackStep       = 32
	attackStepFast   = 1024 // used when ar == 15: period 1, big step
	decayDivisorLog2 = 8    // env -= ((env-1) >> 8) + 1
	gainLinearStep   = 32
	gainBentStepLow  = 32 // below the bend point
	gainBentStepHigh = 8  // at or above the bend point
	gainBendPoint    = 1536
	envelopeMax      = 2048
)
