package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiffReader serves canned int samples through the parser seam.
type fakeAiffReader struct {
	samples []int
	offset  int
}

func (f *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.offset >= len(f.samples) {
		return 0, nil
	}
	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

func testSource(samples []int, channels, bitDepth int) *aiffSource {
	return &aiffSource{
		dec:        &fakeAiffReader{samples: samples},
		sampleRate: 44100,
		channels:   channels,
		scale:      float32(int(1) << (bitDepth - 1)),
		intBuf: &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: channels, SampleRate: 44100},
			Data:   make([]int, 4096),
		},
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := testSource(make([]int, 8), 2, 16)
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := testSource([]int{0, 16384, -16384, 32767, -32768}, 1, 16)

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() = %d, want 5", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	// Exhausted now.
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_BitDepthScaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		want     float32
	}{
		{"8-bit min", 8, -128, -1.0},
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"24-bit min", 24, -8388608, -1.0},
		{"32-bit max", 32, 2147483647, 2147483647.0 / 2147483648.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testSource([]int{tt.input}, 1, tt.bitDepth)
			dst := make([]float32, 1)
			if n, err := src.ReadSamples(dst); n != 1 || err != nil {
				t.Fatalf("ReadSamples() = (%d, %v), want (1, nil)", n, err)
			}
			if dst[0] != tt.want {
				t.Errorf("dst[0] = %v, want %v", dst[0], tt.want)
			}
		})
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := testSource(make([]int, 8), 1, 16)
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader([]byte("definitely not an aiff file")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() of empty input succeeded")
	}
}
