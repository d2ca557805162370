package audiosink

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/spc700-sound/spcsound/curated"
	"github.com/spc700-sound/spcsound/logger"
)

// SampleFreq is the fixed output rate of the DSP voice engine, per
// spec.md section 4.5.
const SampleFreq = 32000

// WavSink accumulates pushed samples in memory and writes them to disk as
// a stereo 16-bit PCM WAV file when Close is called. Suitable for capture
// and for tests; not suitable for very long recordings.
type WavSink struct {
	filename string
	buffer   []wav.Sample
}

// NewWavSink is the preferred method of initialisation for WavSink.
func NewWavSink(filename string) *WavSink {
	return &WavSink{
		filename: filename,
		buffer:   make([]wav.Sample, 0, SampleFreq*2),
	}
}

// Push implements Sink. WavSink never applies backpressure.
func (w *WavSink) Push(left, right int16) bool {
	s := wav.Sample{}
	s.Values[0] = int(left)
	s.Values[1] = int(right)
	w.buffer = append(w.buffer, s)
	return false
}

// Close writes the accumulated samples to disk.
func (w *WavSink) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return curated.Errorf("audiosink: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("audiosink: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(w.buffer)), 2, uint32(SampleFreq), 16)
	if enc == nil {
		return curated.Errorf("audiosink: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "audiosink", "writing %d samples to %s", len(w.buffer), w.filename)

	return enc.WriteSamples(w.buffer)
}
