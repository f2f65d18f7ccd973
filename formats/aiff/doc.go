// SPDX-License-Identifier: MIT

// Package aiff decodes AIFF audio, the big-endian sibling of WAV.
//
// It wraps github.com/go-audio/aiff:
//
//	file, _ := os.Open("audio.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//
// The returned audio.Source delivers interleaved float32 samples in
// [-1.0, 1.0] at the file's sample rate and channel count.
package aiff
