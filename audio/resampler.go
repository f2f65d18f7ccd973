// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"io"

	"github.com/jacksongoode/webrtc-audio-processing/utils"
)

// Resampler streams from src at a new sample rate using Catmull-Rom
// cubic interpolation. Works on interleaved samples and preserves the
// channel count. When downsampling, a one-pole low-pass tames aliasing.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // source samples consumed per output sample
	channels int

	// Ring of 4 frames for cubic interpolation:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool

	// Fractional position between frames[1] and frames[2].
	pos float64

	srcBuf []float32
	eof    bool

	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	// Only filter when downsampling; upsampling introduces no aliasing.
	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         src,
		srcRate:     float64(src.SampleRate()),
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, 4096),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetchNextFrame shifts the ring and reads one source frame into the
// last slot.
func (r *Resampler) fetchNextFrame() error {
	if r.eof {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.frames[3], r.srcBuf[:n])
		r.hasFrame[3] = true

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				r.frames[3][c] = r.filterAlpha*r.frames[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.frames[3][c]
			}
		}
	} else {
		r.hasFrame[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.hasFrame[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the destination rate. dst length must
// be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.hasFrame[1] {
		// Prime the ring with the first four source frames.
		for i := 0; i < 4; i++ {
			n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
			if n > 0 {
				copy(r.frames[i], r.srcBuf[:n])
				r.hasFrame[i] = true

				// Seed the filter with the first sample so it does not
				// ramp up from zero.
				if i == 0 && r.useFilter {
					copy(r.filterState, r.srcBuf[:n])
				}
			}
			if err == io.EOF {
				r.eof = true
				if i == 0 {
					return 0, io.EOF
				}
				for j := i; j < 4; j++ {
					copy(r.frames[j], r.frames[i-1])
					r.hasFrame[j] = true
				}
				break
			} else if err != nil {
				return 0, fmt.Errorf("%w", err)
			}
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// Advance the ring until pos lands between frames[1] and
		// frames[2].
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.fetchNextFrame(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] || !r.hasFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			var y0, y1, y2, y3 float32

			// Duplicate edge frames when the ring is not fully primed.
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			} else {
				y0 = r.frames[1][c]
			}

			y1 = r.frames[1][c]
			y2 = r.frames[2][c]

			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			} else {
				y3 = r.frames[2][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
