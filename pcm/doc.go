// SPDX-License-Identifier: EPL-2.0

// Package pcm defines the decoded-audio abstraction the playback side of
// this module consumes.
//
// The binding in package ao plays raw interleaved PCM bytes and nothing
// else; decoding lives entirely on the application side. A Stream is the
// meeting point: decoders in the formats subpackages produce Streams, and
// the root package pumps a Stream into an open device.
//
// # Stream Interface
//
// A Stream yields interleaved signed 16-bit little-endian PCM, the layout
// ao.DefaultFormat describes:
//
//	type Stream interface {
//	    SampleRate() int
//	    Channels() int
//	    Read(p []byte) (n int, err error)
//	    Close() error
//	}
//
// Read follows io.Reader semantics with one extra rule: p must be a
// multiple of the 2-byte sample size, otherwise Read fails with
// ErrOddBuffer. io.EOF ends the stream.
//
// # Registry
//
// The Registry maps format names (usually file extensions) to decoders:
//
//	registry := pcm.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// # Converters
//
// Decoders whose libraries emit float32 samples use Int16LEFromFloat32 to
// produce the byte layout a device expects. Samples are clamped to
// [-1, 1] before scaling.
package pcm
