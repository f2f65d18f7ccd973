// SPDX-License-Identifier: MIT

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/jacksongoode/webrtc-audio-processing/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs, split
// out so tests can substitute a fake stream.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis already produces interleaved float32; only the frame
	// rounding differs from the Source contract.
	samplesWanted := (len(dst) / s.channels) * s.channels

	if cap(s.frameBuf) < samplesWanted {
		s.frameBuf = make([]float32, samplesWanted)
	}
	s.frameBuf = s.frameBuf[:samplesWanted]

	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	copy(dst, s.frameBuf[:n])
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}
