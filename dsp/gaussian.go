package dsp

// gaussianTable holds the 512-entry interpolation kernel described in
// SPEC_FULL.md section 4.4. Each entry is a fixed-point weight (the
// mixing formula sums four of them and shifts right 11, so the four taps
// at any phase sum to approximately 1<<11).
//
// The real hardware table is a fixed ROM constant; this one is built once
// at package init from the symmetric four-point cubic (Catmull-Rom)
// basis, which has the same "sums to one at every phase" property the
// mixing formula relies on. Audible shape, not a bit-exact transcription
// of the ROM contents - consistent with not requiring unit-perfect
// fidelity to the original hardware.
var gaussianTable [512]int32

func init() {
	for i := 0; i < 256; i++ {
		t := float64(i) / 256.0
		gaussianTable[i] = round2048(catmullP2(t))
		gaussianTable[256+i] = round2048(catmullP1(t))
	}
}

func round2048(w float64) int32 {
	v := w * 2048.0
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}

// catmullP1 and catmullP2 are two of the four Catmull-Rom basis weights;
// the other two are recovered from these by the table's built-in
// symmetry (w_p0(t) == w_p1(1-t), w_pm1(t) == w_p2(1-t)), which is why a
// 512-entry table can serve all four taps.
func catmullP1(t float64) float64 {
	return -1.5*t*t*t + 2*t*t + 0.5*t
}

func catmullP2(t float64) float64 {
	return 0.5*t*t*t - 0.5*t*t
}

// interpolate applies the Gaussian/Catmull-Rom kernel to three previous
// samples and the newest decoded sample, using i (0..255) as the
// fractional phase. Result is clamped to the signed 15-bit range the
// specification requires.
func interpolate(i uint8, p0, p1, p2, s int32) int32 {
	mix := (int64(gaussianTable[0xff-i])*int64(p0) +
		int64(gaussianTable[0x1ff-uint16(i)])*int64(p1) +
		int64(gaussianTable[0x100+uint16(i)])*int64(p2) +
		int64(gaussianTable[i])*int64(s)) >> 11

	return clamp15(int32(mix))
}

func clamp15(v int32) int32 {
	switch {
	case v < -16384:
		return -16384
	case v > 16383:
		return 16383
	default:
		return v
	}
}
