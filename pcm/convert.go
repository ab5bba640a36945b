// SPDX-License-Identifier: EPL-2.0

package pcm

import "encoding/binary"

// Float32ToInt16 converts one normalized sample to signed 16-bit. Values
// outside [-1, 1] are clamped.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16LEFromFloat32 writes the samples into dst as little-endian 16-bit
// PCM and returns the number of bytes written. dst must hold at least
// len(src)*BytesPerSample bytes.
func Int16LEFromFloat32(dst []byte, src []float32) int {
	for i, x := range src {
		binary.LittleEndian.PutUint16(dst[i*BytesPerSample:], uint16(Float32ToInt16(x)))
	}
	return len(src) * BytesPerSample
}

// AppendInt16LE appends one 16-bit sample to dst in little-endian order.
func AppendInt16LE(dst []byte, v int16) []byte {
	return append(dst, byte(v), byte(uint16(v)>>8))
}
