// SPDX-License-Identifier: MIT

// Package mp3 decodes MPEG-1 Layer 3 audio.
//
// It wraps github.com/hajimehoshi/go-mp3, which always decodes to
// 16-bit stereo at the file's sample rate:
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
// The returned audio.Source delivers interleaved float32 samples in
// [-1.0, 1.0].
package mp3
