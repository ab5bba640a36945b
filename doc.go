// SPDX-License-Identifier: EPL-2.0

// Package goao plays decoded audio through the libao binding in this
// module.
//
// The module is layered:
//
//   - ao binds libao itself: subsystem lifecycle, driver lookup, device
//     opening, and the blocking PCM write.
//   - pcm defines the Stream abstraction decoders produce: interleaved
//     signed 16-bit little-endian PCM plus its rate and channel count.
//   - formats/wav, formats/mp3, formats/vorbis, and formats/aiff decode
//     the respective containers into Streams.
//   - This root package glues the two sides together.
//
// # Quick Start
//
//	file, _ := os.Open("song.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	ctx := ao.New()
//	defer ctx.Close()
//
//	driver, _ := ctx.DefaultDriver()
//	dev, _ := ctx.OpenLive(driver, goao.FormatFor(src), nil)
//	defer dev.Close()
//
//	goao.Play(dev, src, goao.DefaultBufferSize)
//
// The binding itself never decodes, encodes, or resamples; streams must
// already match the format the device was opened with. FormatFor derives
// that format from a stream so the two cannot drift apart.
package goao
