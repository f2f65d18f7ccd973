// SPDX-License-Identifier: MIT

// Package audio provides the streaming primitives that feed PCM into a
// playback path: decoders, sample rate conversion and channel mapping.
//
// # Source Interface
//
// Everything in the pipeline produces interleaved float32 samples in
// [-1.0, 1.0] through the Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (n int, err error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders and processors all implement Source, so they chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	resampled := audio.NewResampler(src, 48000)
//	stereo := audio.NewChannelMapper(resampled, 2)
//
// The chained source then delivers frames at exactly the rate and
// channel count an audio engine expects on its render input.
//
// # Sample Rate Conversion
//
// The Resampler converts between rates with Catmull-Rom cubic
// interpolation and applies a one-pole low-pass when downsampling.
//
// # Channel Mapping
//
// MonoMixer averages any channel layout down to mono. ChannelMapper
// adapts a source to a required output channel count, duplicating a
// mono source into every output channel. DuplicateMono does the same
// for a single raw buffer, which is the common case inside real-time
// callbacks where no Source wrapper exists.
//
// # Streaming
//
// ReadSamples returns io.EOF once the stream is finished, possibly
// together with a final short read:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
