// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into playable PCM streams.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// normalized float32 samples, which are converted to the 16-bit
// little-endian layout a libao device expects.
//
// # Decoding Ogg Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	stream, err := decoder.Decode(file)
//	if err != nil {
//	    // Not an Ogg Vorbis stream.
//	}
//
//	buf := make([]byte, 8192)
//	n, err := stream.Read(buf)
package vorbis
