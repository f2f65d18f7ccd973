// SPDX-License-Identifier: MIT

package audio

import "fmt"

// DuplicateMono spreads a mono buffer over an interleaved multi-channel
// buffer, writing each mono sample into every channel of its frame.
// len(dst) must equal len(mono) * channels.
//
// This is the buffer-level form of ChannelMapper for real-time
// callbacks that work on raw slices. It does not allocate.
func DuplicateMono(mono, dst []float32, channels int) error {
	if channels < 1 || len(dst) != len(mono)*channels {
		return fmt.Errorf("%w: %d mono samples into %d interleaved (%d channels)",
			ErrChannelMismatch, len(mono), len(dst), channels)
	}

	switch channels {
	case 1:
		copy(dst, mono)
	case 2:
		for i, v := range mono {
			dst[2*i] = v
			dst[2*i+1] = v
		}
	default:
		for i, v := range mono {
			base := i * channels
			for c := 0; c < channels; c++ {
				dst[base+c] = v
			}
		}
	}
	return nil
}

// ChannelMapper adapts a source to a required output channel count. A
// mono source is duplicated into every output channel; a multi-channel
// source is averaged down when mono is wanted. Matching layouts pass
// through.
type ChannelMapper struct {
	src      Source
	channels int
	mono     []float32
}

// NewChannelMapper wraps src to produce the wanted channel count. It
// fails with ErrChannelMismatch for layouts it cannot map, such as
// stereo into four channels.
func NewChannelMapper(src Source, channels int) (*ChannelMapper, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d output channels", ErrChannelMismatch, channels)
	}
	if src.Channels() != channels && src.Channels() != 1 && channels != 1 {
		return nil, fmt.Errorf("%w: %d source channels into %d",
			ErrChannelMismatch, src.Channels(), channels)
	}

	if channels == 1 && src.Channels() > 1 {
		src = NewMonoMixer(src)
	}

	m := &ChannelMapper{src: src, channels: channels}
	if src.Channels() == 1 && channels > 1 {
		m.mono = make([]float32, 4096)
	}
	return m, nil
}

func (m *ChannelMapper) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMapper) Channels() int   { return m.channels }
func (m *ChannelMapper) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMapper) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMapper) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if m.src.Channels() == m.channels {
		return m.src.ReadSamples(dst)
	}

	// Mono source into a multi-channel output.
	frames := len(dst) / m.channels
	if cap(m.mono) < frames {
		m.mono = make([]float32, frames)
	}
	m.mono = m.mono[:frames]

	n, err := m.src.ReadSamples(m.mono)
	if n > 0 {
		if dupErr := DuplicateMono(m.mono[:n], dst[:n*m.channels], m.channels); dupErr != nil {
			return 0, dupErr
		}
	}
	return n * m.channels, err
}
