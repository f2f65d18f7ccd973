// SPDX-License-Identifier: MIT

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/jacksongoode/webrtc-audio-processing/audio"
)

type wavSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	return n, nil
}

type Decoder struct{}

// Decode parses a RIFF/WAVE stream. Any PCM bit depth go-audio handles
// (8, 16, 24, 32) comes out normalized to float32.
//
// The underlying parser needs to seek between chunks; readers that
// cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.BitDepth < 8 || dec.BitDepth > 32 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		scale:      float32(int(1) << (dec.BitDepth - 1)),
		intBuf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: int(dec.NumChans),
				SampleRate:  int(dec.SampleRate),
			},
			SourceBitDepth: int(dec.BitDepth),
			Data:           make([]int, 4096),
		},
	}, nil
}
