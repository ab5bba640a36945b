// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/goao/pcm"
)

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type stream struct {
	dec        wavReader
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

	// 16-bit PCM arrives as ints holding int16 values.
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(p[i*pcm.BytesPerSample:], uint16(int16(s.intBuf.Data[i])))
	}

	// A short read with no error means the data chunk is exhausted.
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
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	return &stream{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}
