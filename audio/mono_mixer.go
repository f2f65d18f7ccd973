// SPDX-License-Identifier: MIT

package audio

import "fmt"

// MonoMixer folds a multi-channel source down to mono by averaging the
// channels of every frame. A mono source passes through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 1 {
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	samplesNeeded := len(dst) * channels

	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, samplesNeeded)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels
	invChannels := 1.0 / float32(channels)

	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			idx := f * 2
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := 0; f < frames; f++ {
			sum := float32(0)
			baseIdx := f * channels
			for c := 0; c < channels; c++ {
				sum += m.tmp[baseIdx+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
