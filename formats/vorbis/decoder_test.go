package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOggReader serves a fixed block of interleaved float32 samples.
type fakeOggReader struct {
	data     []float32
	pos      int
	rate     int
	channels int
}

func (f *fakeOggReader) SampleRate() int { return f.rate }
func (f *fakeOggReader) Channels() int   { return f.channels }

func (f *fakeOggReader) Read(p []float32) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func newTestSource(rate, channels int, data []float32) *source {
	return &source{
		dec:        &fakeOggReader{data: data, rate: rate, channels: channels},
		sampleRate: rate,
		channels:   channels,
		frameBuf:   make([]float32, 4096),
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(48000, 2, nil)
	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := newTestSource(48000, 2, data)

	out := make([]float32, 6)
	n, err := src.ReadSamples(out)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() = %d, want 6", n)
	}
	for i := range data {
		if out[i] != data[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], data[i])
		}
	}
}

func TestSource_RoundsDownToWholeFrames(t *testing.T) {
	t.Parallel()

	src := newTestSource(48000, 2, []float32{0.1, -0.1, 0.2, -0.2})

	// A 5-sample buffer only has room for 2 whole stereo frames.
	out := make([]float32, 5)
	n, err := src.ReadSamples(out)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() = %d, want 4", n)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(48000, 1, []float32{0.5})
	out := make([]float32, 4)

	n, err := src.ReadSamples(out)
	if n != 1 {
		t.Fatalf("ReadSamples() = %d, want 1", n)
	}
	_ = err

	n, err = src.ReadSamples(out)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode() of garbage succeeded")
	}
}
