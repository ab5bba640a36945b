// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into playable PCM streams.
//
// This package uses github.com/hajimehoshi/go-mp3, which conveniently
// emits exactly the layout a libao device expects: interleaved signed
// 16-bit little-endian stereo. Reads therefore pass through with no
// conversion.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	stream, err := decoder.Decode(file)
//	if err != nil {
//	    // Not an MP3, or a corrupt header.
//	}
//
//	buf := make([]byte, 8192)
//	n, err := stream.Read(buf)
//
// The stream always reports two channels; go-mp3 upmixes mono input.
package mp3
