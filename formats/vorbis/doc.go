// SPDX-License-Identifier: MIT

// Package vorbis decodes Ogg Vorbis audio.
//
// It wraps github.com/jfreymuth/oggvorbis, which already produces
// interleaved float32 samples, so decoding is close to a straight
// pass-through:
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// The returned audio.Source preserves the stream's sample rate and
// channel count.
package vorbis
