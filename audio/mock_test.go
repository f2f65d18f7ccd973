package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic PCM for tests through a per-sample
// waveform function.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := framesRequested
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	for frame := 0; frame < framesToWrite; frame++ {
		sampleIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
