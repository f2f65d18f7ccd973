// SPDX-License-Identifier: MIT

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/jacksongoode/webrtc-audio-processing/audio"
)

// aiffReader is the slice of goaiff.Decoder the source reads through,
// an interface so tests can stand in for the parser.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type aiffSource struct {
	dec        aiffReader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *aiffSource) SampleRate() int { return s.sampleRate }
func (s *aiffSource) Channels() int   { return s.channels }
func (s *aiffSource) BufSize() int    { return 4096 }
func (s *aiffSource) Close() error    { return nil }

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
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

// Decode parses an AIFF stream. Any PCM bit depth go-audio handles
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

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()
	if dec.BitDepth < 8 || dec.BitDepth > 32 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, dec.BitDepth)
	}
	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}

	return &aiffSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      float32(int(1) << (dec.BitDepth - 1)),
		intBuf: &goaudio.IntBuffer{
			Format:         format,
			SourceBitDepth: int(dec.BitDepth),
			Data:           make([]int, 4096),
		},
	}, nil
}
