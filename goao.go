// SPDX-License-Identifier: EPL-2.0

package goao

import (
	"fmt"
	"io"

	"github.com/ik5/goao/ao"
	"github.com/ik5/goao/pcm"
)

// DefaultBufferSize is the playback chunk size Play uses when the caller
// passes a non-positive size.
const DefaultBufferSize = 8192

// PCMWriter is the playback half of an *ao.Device. Taking the interface
// keeps the pump loop testable without audio hardware.
type PCMWriter interface {
	Play(buf []byte)
}

// FormatFor returns the device format matching a stream: 16-bit
// little-endian at the stream's rate and channel count, which is exactly
// the layout pcm.Stream yields.
func FormatFor(src pcm.Stream) ao.Format {
	f := ao.DefaultFormat()
	f.Rate = src.SampleRate()
	f.Channels = src.Channels()
	return f
}

// Play pumps src into dev in chunks of bufSize bytes until the stream
// ends, and returns the number of bytes played. The device must have been
// opened with a format matching the stream (see FormatFor); nothing here
// converts between layouts.
//
// bufSize values that are not a multiple of the 2-byte sample size fail
// with pcm.ErrOddBuffer; non-positive values use DefaultBufferSize.
func Play(dev PCMWriter, src pcm.Stream, bufSize int) (int64, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	if bufSize%pcm.BytesPerSample != 0 {
		return 0, pcm.ErrOddBuffer
	}

	buf := make([]byte, bufSize)
	var total int64

	for {
		n, err := src.Read(buf)

		// Always play what arrived before looking at the error.
		if n > 0 {
			dev.Play(buf[:n])
			total += int64(n)
		}

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}
}
