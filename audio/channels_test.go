package audio

import (
	"errors"
	"io"
	"testing"
)

func TestDuplicateMono(t *testing.T) {
	t.Parallel()

	mono := []float32{0.1, -0.2, 0.3}

	stereo := make([]float32, 6)
	if err := DuplicateMono(mono, stereo, 2); err != nil {
		t.Fatalf("DuplicateMono() error = %v", err)
	}
	want := []float32{0.1, 0.1, -0.2, -0.2, 0.3, 0.3}
	for i := range want {
		if stereo[i] != want[i] {
			t.Fatalf("stereo[%d] = %v, want %v", i, stereo[i], want[i])
		}
	}

	quad := make([]float32, 12)
	if err := DuplicateMono(mono, quad, 4); err != nil {
		t.Fatalf("DuplicateMono() error = %v", err)
	}
	for i, v := range mono {
		for c := 0; c < 4; c++ {
			if quad[i*4+c] != v {
				t.Fatalf("quad[%d] = %v, want %v", i*4+c, quad[i*4+c], v)
			}
		}
	}
}

func TestDuplicateMono_SizeMismatch(t *testing.T) {
	t.Parallel()

	mono := make([]float32, 3)
	if err := DuplicateMono(mono, make([]float32, 5), 2); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("DuplicateMono() error = %v, want ErrChannelMismatch", err)
	}
	if err := DuplicateMono(mono, make([]float32, 6), 0); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("DuplicateMono() with 0 channels error = %v, want ErrChannelMismatch", err)
	}
}

func TestDuplicateMono_DoesNotAllocate(t *testing.T) {
	mono := make([]float32, 480)
	stereo := make([]float32, 960)

	allocs := testing.AllocsPerRun(100, func() {
		if err := DuplicateMono(mono, stereo, 2); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Errorf("DuplicateMono allocates %v times, want 0", allocs)
	}
}

func TestChannelMapper_MonoToStereo(t *testing.T) {
	t.Parallel()

	src := newConstantSource(48000, 1, 100, 0.4)
	mapper, err := NewChannelMapper(src, 2)
	if err != nil {
		t.Fatalf("NewChannelMapper() error = %v", err)
	}

	if mapper.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", mapper.Channels())
	}

	buf := make([]float32, 40)
	n, err := mapper.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 40 {
		t.Fatalf("ReadSamples() = %d, want 40", n)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0.4 {
			t.Fatalf("buf[%d] = %v, want 0.4", i, buf[i])
		}
	}
}

func TestChannelMapper_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(48000, 2, 50, func(sample, channel int) float32 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})
	mapper, err := NewChannelMapper(src, 1)
	if err != nil {
		t.Fatalf("NewChannelMapper() error = %v", err)
	}

	buf := make([]float32, 50)
	n, err := mapper.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Fatalf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestChannelMapper_PassThrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(48000, 2, 50, 0.7)
	mapper, err := NewChannelMapper(src, 2)
	if err != nil {
		t.Fatalf("NewChannelMapper() error = %v", err)
	}

	buf := make([]float32, 100)
	n, err := mapper.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Errorf("ReadSamples() = %d, want 100", n)
	}
}

func TestChannelMapper_UnsupportedLayout(t *testing.T) {
	t.Parallel()

	src := newSilentSource(48000, 2, 100)
	if _, err := NewChannelMapper(src, 4); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("NewChannelMapper(stereo, 4) error = %v, want ErrChannelMismatch", err)
	}
	if _, err := NewChannelMapper(src, 0); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("NewChannelMapper(stereo, 0) error = %v, want ErrChannelMismatch", err)
	}
}
