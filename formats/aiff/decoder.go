// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/goao/pcm"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type stream struct {
	dec        aiffReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
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
	if s.intBuf == nil || cap(s.intBuf.Data) < wanted {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, wanted),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:wanted]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(p[i*pcm.BytesPerSample:], uint16(int16(s.intBuf.Data[i])))
	}

	if n < wanted && err == nil {
		return n * pcm.BytesPerSample, io.EOF
	}
	return n * pcm.BytesPerSample, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (pcm.Stream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &stream{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}
