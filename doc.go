// SPDX-License-Identifier: MIT

// Package webrtcaudio wraps the WebRTC AudioProcessing module (APM) for Go.
//
// The heavy lifting (AEC3 echo cancellation, noise suppression, gain
// control) happens entirely inside the native webrtc-audio-processing-2
// library. This package contributes the safe binding surface on top of it:
// locating or building the native dependency, a thin C shim bridged through
// cgo, and a Processor facade that sequences fixed-size audio frames through
// the engine without allocating on the hot path.
//
// # Quick Start
//
//	processor, err := webrtcaudio.New(webrtcaudio.InitializationConfig{
//	    NumCaptureChannels: 1,
//	    NumRenderChannels:  1,
//	    SampleRateHz:       48000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer processor.Close()
//
//	config := webrtcaudio.DefaultConfig()
//	config.EchoCanceller.Enabled = true
//	config.NoiseSuppression.Enabled = true
//	processor.SetConfig(config)
//
//	// Inside the audio callback, with pre-allocated buffers:
//	_ = processor.ProcessCaptureFrame(captureFrame) // microphone path
//	_ = processor.ProcessRenderFrame(renderFrame)   // speaker path
//
// # Frames
//
// The engine operates on 10 ms frames of interleaved float32 samples in
// [-1, 1]. At 48 kHz that is 480 samples per channel; a buffer passed to
// ProcessCaptureFrame or ProcessRenderFrame must hold exactly
// NumSamplesPerFrame() × channel-count values or the call fails with
// ErrInvalidFrameLength.
//
// # Processing order
//
// Within one audio period process the capture frame first, then the render
// frame. The render frame feeds the echo-reference state consumed by the
// next capture call; getting the order wrong does not crash, it just
// degrades echo cancellation.
//
// # Concurrency
//
// A Processor is not safe for concurrent use. Serialize SetConfig,
// ProcessCaptureFrame and ProcessRenderFrame externally if more than one
// goroutine touches the same instance. GetStats is the exception: it may
// run from a monitoring goroutine while another processes frames.
//
// # Building against the native library
//
// The cgo layer links webrtc-audio-processing-2 (>= 2.0) via pkg-config.
// If the library is installed somewhere pkg-config cannot see, or you want
// to build the vendored source tree instead, run cmd/apmbuild and eval the
// environment exports it prints. See the nativebuild package for details.
package webrtcaudio
