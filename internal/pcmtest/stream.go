// SPDX-License-Identifier: EPL-2.0

// Package pcmtest generates in-memory PCM streams for tests.
package pcmtest

import (
	"io"
	"math"

	"github.com/ik5/goao/pcm"
)

// Stream is a test helper that serves pre-rendered 16-bit little-endian
// PCM. It implements the pcm.Stream interface.
type Stream struct {
	sampleRate int
	channels   int
	data       []byte
	offset     int

	// Closed reports whether Close was called.
	Closed bool
}

// New creates a stream over the given samples.
func New(sampleRate, channels int, samples []int16) *Stream {
	data := make([]byte, 0, len(samples)*pcm.BytesPerSample)
	for _, s := range samples {
		data = pcm.AppendInt16LE(data, s)
	}
	return &Stream{
		sampleRate: sampleRate,
		channels:   channels,
		data:       data,
	}
}

// NewSilent creates a stream of zero-valued frames.
func NewSilent(sampleRate, channels, frames int) *Stream {
	return New(sampleRate, channels, make([]int16, frames*channels))
}

// NewSine creates a stream carrying a sine wave on every channel.
func NewSine(sampleRate, channels, frames int, frequency float64) *Stream {
	samples := make([]int16, frames*channels)
	for frame := 0; frame < frames; frame++ {
		t := float64(frame) / float64(sampleRate)
		v := pcm.Float32ToInt16(float32(math.Sin(2 * math.Pi * frequency * t)))
		for ch := 0; ch < channels; ch++ {
			samples[frame*channels+ch] = v
		}
	}
	return New(sampleRate, channels, samples)
}

func (s *Stream) SampleRate() int { return s.sampleRate }
func (s *Stream) Channels() int   { return s.channels }

func (s *Stream) Close() error {
	s.Closed = true
	return nil
}

func (s *Stream) Read(p []byte) (int, error) {
	if len(p)%pcm.BytesPerSample != 0 {
		return 0, pcm.ErrOddBuffer
	}
	if s.offset >= len(s.data) {
		return 0, io.EOF
	}

	n := copy(p, s.data[s.offset:])
	s.offset += n

	if s.offset >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}
