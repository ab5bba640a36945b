// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into playable PCM streams.
//
// This package uses github.com/go-audio/aiff. Only 16-bit PCM is
// supported; samples are re-emitted in the little-endian layout a libao
// device expects regardless of AIFF's big-endian storage, since go-audio
// hands back machine integers.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	stream, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// go-audio needs an io.ReadSeeker; non-seekable input is buffered into
// memory first.
package aiff
