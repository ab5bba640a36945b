// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/goao/pcm"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type stream struct {
	dec        mp3Reader
	sampleRate int
	channels   int
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) Close() error    { return nil }

func (s *stream) Read(p []byte) (int, error) {
	if len(p)%pcm.BytesPerSample != 0 {
		return 0, pcm.ErrOddBuffer
	}
	// go-mp3 already emits 16-bit little-endian interleaved PCM, so the
	// bytes go straight through.
	return s.dec.Read(p)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (pcm.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 outputs stereo (2 channels) regardless of the source
	return &stream{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
	}, nil
}
