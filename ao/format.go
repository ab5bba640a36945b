// SPDX-License-Identifier: EPL-2.0

package ao

import (
	"github.com/ik5/goao/internal/native"
)

// ByteFormat is the byte order of the PCM samples handed to Play.
type ByteFormat int32

const (
	// LittleEndian samples, least significant byte first.
	LittleEndian ByteFormat = ByteFormat(native.FormatLittle)
	// BigEndian samples, most significant byte first.
	BigEndian ByteFormat = ByteFormat(native.FormatBig)
	// NativeEndian inherits the machine's byte order.
	NativeEndian ByteFormat = ByteFormat(native.FormatNative)
)

func (bf ByteFormat) String() string {
	switch bf {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	case NativeEndian:
		return "native-endian"
	}
	return "unknown"
}

// Format describes the PCM layout of the data a device will play. It is a
// plain value; no field is validated here. libao is the source of truth
// for what a driver accepts, observed through OpenLive failing.
type Format struct {
	// Bits per sample, usually 8 or 16.
	Bits int
	// Rate in samples per second per channel.
	Rate int
	// Channels count: 1 mono, 2 stereo, and so on.
	Channels int
	// ByteFormat is the sample byte order.
	ByteFormat ByteFormat
	// Matrix is a free-form channel layout label. It is carried for the
	// caller's own bookkeeping and is never passed to libao: the native
	// channel matrix is always NULL.
	Matrix string
}

// DefaultFormat returns CD-style output: 16-bit, 44100 Hz, stereo,
// little-endian, no channel layout label.
func DefaultFormat() Format {
	return Format{
		Bits:       16,
		Rate:       44100,
		Channels:   2,
		ByteFormat: LittleEndian,
	}
}

// toNative copies the fields verbatim into the boundary descriptor. The
// channel matrix stays unset regardless of Matrix.
func (f Format) toNative() native.Format {
	return native.Format{
		Bits:       int32(f.Bits),
		Rate:       int32(f.Rate),
		Channels:   int32(f.Channels),
		ByteFormat: int32(f.ByteFormat),
	}
}
