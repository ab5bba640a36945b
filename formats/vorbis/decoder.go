// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/goao/pcm"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type stream struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32 // scratch for decoder output before conversion
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) Close() error    { return nil }

func (s *stream) Read(p []byte) (int, error) {
	if len(p)%pcm.BytesPerSample != 0 {
		return 0, pcm.ErrOddBuffer
	}
	if len(p) == 0 {
		return 0, nil
	}

	wanted := len(p) / pcm.BytesPerSample
	if cap(s.floatBuf) < wanted {
		s.floatBuf = make([]float32, wanted)
	}
	s.floatBuf = s.floatBuf[:wanted]

	n, err := s.dec.Read(s.floatBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return pcm.Int16LEFromFloat32(p, s.floatBuf[:n]), err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (pcm.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &stream{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		floatBuf:   make([]float32, 4096),
	}, nil
}
