package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 100}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	out := make([]float32, len(samples))
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(samples))
	}

	for i, want16 := range samples {
		want := float32(want16) / 32768.0
		if math.Abs(float64(out[i]-want)) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}

	// The stream is exhausted now.
	if n, err := src.ReadSamples(out); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_NonSeekingReader(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, 2000, 3000}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatal(err)
	}

	// bytes.Buffer cannot seek, forcing the in-memory buffering path.
	src, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	out := make([]float32, 8)
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Errorf("ReadSamples() = %d, want 3", n)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a wav file")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() of empty input succeeded")
	}
}
