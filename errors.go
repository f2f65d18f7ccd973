// SPDX-License-Identifier: MIT

package webrtcaudio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrameLength is returned when a buffer passed to
	// ProcessCaptureFrame or ProcessRenderFrame does not hold exactly
	// NumSamplesPerFrame() × channel-count samples.
	ErrInvalidFrameLength = errors.New("frame length does not match the configured stream shape")

	// ErrProcessorClosed is returned when a Processor is used after Close.
	ErrProcessorClosed = errors.New("processor is closed")
)

// EngineError reports a non-zero error code from the native engine. Op
// names the entry point that failed ("create", "process capture frame",
// "process render frame").
type EngineError struct {
	Op   string
	Code int
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("webrtc audio processing: %s failed with error code %d", e.Op, e.Code)
}
