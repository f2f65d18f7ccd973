// SPDX-License-Identifier: MIT

// Package audiotest provides deterministic audio sources for tests
// outside the audio package.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates PCM through a per-sample waveform function. It
// implements the audio.Source interface without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a source producing totalSamples frames of
// waveform output.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a source producing a sine wave at frequency Hz.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source holding a constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
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
