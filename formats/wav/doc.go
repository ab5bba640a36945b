// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV audio into playable PCM streams.
//
// This package uses github.com/go-audio/wav for container parsing and
// supports 16-bit PCM, mono or multi-channel, at any sample rate. Samples
// cross unchanged into the 16-bit little-endian layout a libao device
// expects.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	stream, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]byte, 8192)
//	n, err := stream.Read(buf)
//
// go-audio needs an io.ReadSeeker; non-seekable input is buffered into
// memory first.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE container
//   - ErrOnlyPCM16bitSupported: the data is not 16-bit PCM
//   - ErrUnsupportedWavLayout: the container carries no usable format
package wav
