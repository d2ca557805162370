package audiosink

import (
	"encoding/binary"

	"github.com/veandco/go-sdl2/sdl"
)

// sdlQueueHighWater is the queued-byte threshold past which Push reports
// backpressure: SampleFreq*4 bytes, one second of 32 kHz stereo 16-bit
// audio at 4 bytes per sample pair.
const sdlQueueHighWater = SampleFreq * 4 // bytes

// SDLSink plays mixed samples live through an SDL2 audio device, opened at
// 32000 Hz stereo signed 16-bit little-endian.
type SDLSink struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	scratch [4]byte
}

// NewSDLSink opens the default SDL2 audio output device.
func NewSDLSink() (*SDLSink, error) {
	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  1024,
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return nil, err
	}

	s := &SDLSink{id: id, spec: actual}
	sdl.PauseAudioDevice(s.id, false)

	return s, nil
}

// Push implements Sink. It queues one stereo sample pair and reports
// backpressure once the device's internal queue backs up past the
// high-water mark.
func (s *SDLSink) Push(left, right int16) bool {
	binary.LittleEndian.PutUint16(s.scratch[0:2], uint16(left))
	binary.LittleEndian.PutUint16(s.scratch[2:4], uint16(right))

	_ = sdl.QueueAudio(s.id, s.scratch[:])

	return sdl.GetQueuedAudioSize(s.id) > sdlQueueHighWater
}

// Close flushes and closes the audio device.
func (s *SDLSink) Close() error {
	sdl.CloseAudioDevice(s.id)
	return nil
}
