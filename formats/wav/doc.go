// SPDX-License-Identifier: MIT

// Package wav decodes and encodes RIFF/WAVE audio.
//
// Decoding is built on github.com/go-audio/wav, so any PCM bit depth
// that library parses (8, 16, 24, 32) is accepted, at any sample rate
// and channel count:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// The decoder returns an audio.Source delivering interleaved float32
// samples in [-1.0, 1.0].
//
// Encoding covers the one shape the processing pipeline produces, mono
// 16-bit PCM:
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, samples)
//
// WriteWAV16 never seeks, so it can stream to sockets and pipes as
// well as files.
package wav
