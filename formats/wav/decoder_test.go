package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/goao/pcm"
)

// makeWAV builds a canonical 44-byte-header PCM 16-bit WAV in memory.
func makeWAV(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	dataSize := uint32(len(samples) * 2)
	byteRate := uint32(sampleRate * channels * 2)
	blockAlign := uint16(channels * 2)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(16)) // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestDecoder_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not RIFF data at all")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_DecodesCanonicalFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 32767, -32768, 42}
	data := makeWAV(t, 8000, 2, samples)

	stream, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer stream.Close()

	if stream.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", stream.SampleRate())
	}
	if stream.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", stream.Channels())
	}

	var got []byte
	buf := make([]byte, 4)
	for {
		n, err := stream.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	want := make([]byte, 0, len(samples)*2)
	for _, v := range samples {
		want = pcm.AppendInt16LE(want, v)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Read() bytes = % x, want % x", got, want)
	}
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	samples := []int16{7, -7}
	data := makeWAV(t, 44100, 1, samples)

	// io.MultiReader hides the underlying Seeker.
	stream, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer stream.Close()

	buf := make([]byte, 16)
	n, err := stream.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Read() = %d bytes, want 4", n)
	}
}

// mockWavReader exercises the stream conversion without container parsing.
type mockWavReader struct {
	samples []int
	offset  int
}

func (m *mockWavReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (m *mockWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, nil
	}
	n := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func TestStream_ShortReadEndsStream(t *testing.T) {
	t.Parallel()

	s := &stream{
		dec:        &mockWavReader{samples: []int{5, -5, 9}},
		sampleRate: 8000,
		channels:   1,
	}

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	if n != 6 {
		t.Errorf("Read() = %d bytes, want 6", n)
	}
	if err != io.EOF {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}

	n, err = s.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestStream_OddBuffer(t *testing.T) {
	t.Parallel()

	s := &stream{dec: &mockWavReader{}, sampleRate: 8000, channels: 1}

	_, err := s.Read(make([]byte, 7))
	if !errors.Is(err, pcm.ErrOddBuffer) {
		t.Errorf("Read() error = %v, want ErrOddBuffer", err)
	}
}
