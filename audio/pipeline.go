// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"io"

	"github.com/jacksongoode/webrtc-audio-processing/utils"
)

// AdaptTo chains whatever conversion src needs to deliver the wanted
// sample rate and channel count. Sources that already match come back
// unwrapped.
func AdaptTo(src Source, sampleRate, channels int) (Source, error) {
	if src.SampleRate() != sampleRate {
		src = NewResampler(src, sampleRate)
	}
	if src.Channels() != channels {
		mapped, err := NewChannelMapper(src, channels)
		if err != nil {
			return nil, err
		}
		src = mapped
	}
	return src, nil
}

// ResampleToMono16 drains src through a resample-then-mono pipeline and
// collects the result as 16-bit PCM. bufferSize sets the read chunk in
// samples (4096 is a reasonable default).
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	resampler := NewResampler(src, targetRate)
	mono := NewMonoMixer(resampler)

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
