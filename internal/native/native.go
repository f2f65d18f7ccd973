// SPDX-License-Identifier: MIT

package native

/*
#cgo pkg-config: webrtc-audio-processing-2
#cgo CXXFLAGS: -std=c++17 -Wno-unused-parameter

#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// Config is the flat mirror of webrtc_apm_config. The public package
// converts its structured configuration into this before crossing the
// boundary.
type Config struct {
	PreAmplifierEnabled    bool
	PreAmplifierGainFactor float32

	HighPassFilterEnabled bool

	EchoCancellerEnabled         bool
	EchoCancellerEnforceHighPass bool

	NoiseSuppressionEnabled bool
	NoiseSuppressionLevel   int

	GainControllerEnabled           bool
	GainControllerMode              int
	GainControllerTargetLevelDbfs   int
	GainControllerCompressionGainDb int
	GainControllerEnableLimiter     bool

	ReportVoiceDetection       bool
	ReportResidualEchoDetector bool
	ReportLevelEstimation      bool
}

// Aec3Config is the flat mirror of webrtc_apm_aec3_config.
type Aec3Config struct {
	DelayDefaultDelayBlocks        int
	DelayDownSamplingFactor        int
	DelayNumFilters                int
	FilterMainLengthBlocks         int
	FilterShadowLengthBlocks       int
	SuppressorNearendAverageBlocks int
}

// Stats is the flat mirror of webrtc_apm_stats. Has* flags carry the
// optional semantics of the C side.
type Stats struct {
	HasOutputRmsDbfs bool
	OutputRmsDbfs    int

	HasVoiceDetected bool
	VoiceDetected    bool

	HasEchoReturnLoss bool
	EchoReturnLoss    float64

	HasEchoReturnLossEnhancement bool
	EchoReturnLossEnhancement    float64

	HasDivergentFilterFraction bool
	DivergentFilterFraction    float64

	HasDelayMedianMs bool
	DelayMedianMs    int

	HasDelayStandardDeviationMs bool
	DelayStandardDeviationMs    int

	HasResidualEchoLikelihood bool
	ResidualEchoLikelihood    float64

	HasResidualEchoLikelihoodRecentMax bool
	ResidualEchoLikelihoodRecentMax    float64

	HasDelayMs bool
	DelayMs    int
}

// planarScratch is a C-allocated float** plus Go views over its channel
// buffers. It exists so that processing never hands a Go pointer to C and
// never allocates after construction.
type planarScratch struct {
	ptrs   **C.float
	planes [][]float32
}

func newPlanarScratch(channels, samplesPerFrame int) planarScratch {
	raw := C.malloc(C.size_t(channels) * C.size_t(unsafe.Sizeof((*C.float)(nil))))
	ptrs := (**C.float)(raw)
	slots := unsafe.Slice(ptrs, channels)

	planes := make([][]float32, channels)
	for c := range slots {
		buf := C.malloc(C.size_t(samplesPerFrame) * C.size_t(unsafe.Sizeof(C.float(0))))
		slots[c] = (*C.float)(buf)
		planes[c] = unsafe.Slice((*float32)(buf), samplesPerFrame)
	}

	return planarScratch{ptrs: ptrs, planes: planes}
}

func (s *planarScratch) copyIn(src [][]float32) {
	for c, plane := range src {
		copy(s.planes[c], plane)
	}
}

func (s *planarScratch) copyOut(dst [][]float32) {
	for c, plane := range s.planes {
		copy(dst[c], plane)
	}
}

func (s *planarScratch) free() {
	if s.ptrs == nil {
		return
	}
	for _, slot := range unsafe.Slice(s.ptrs, len(s.planes)) {
		C.free(unsafe.Pointer(slot))
	}
	C.free(unsafe.Pointer(s.ptrs))
	s.ptrs = nil
	s.planes = nil
}

// Engine owns one native webrtc::AudioProcessing instance together with
// the scratch memory used to shuttle frames across the boundary.
type Engine struct {
	ptr             *C.WebRtcApm
	samplesPerFrame int
	capture         planarScratch
	render          planarScratch
}

// New creates a native engine for the given stream shape. On failure the
// returned engine is nil and the second value is the engine error code.
func New(numCaptureChannels, numRenderChannels, sampleRateHz int, aec3 *Aec3Config) (*Engine, int) {
	var cAec3 *C.webrtc_apm_aec3_config
	if aec3 != nil {
		tmp := C.webrtc_apm_aec3_config{
			delay_default_delay_blocks:        C.int(aec3.DelayDefaultDelayBlocks),
			delay_down_sampling_factor:        C.int(aec3.DelayDownSamplingFactor),
			delay_num_filters:                 C.int(aec3.DelayNumFilters),
			filter_main_length_blocks:         C.int(aec3.FilterMainLengthBlocks),
			filter_shadow_length_blocks:       C.int(aec3.FilterShadowLengthBlocks),
			suppressor_nearend_average_blocks: C.int(aec3.SuppressorNearendAverageBlocks),
		}
		cAec3 = &tmp
	}

	var code C.int
	ptr := C.webrtc_apm_create(
		C.int(numCaptureChannels),
		C.int(numRenderChannels),
		C.int(sampleRateHz),
		cAec3,
		&code,
	)
	if ptr == nil {
		return nil, int(code)
	}

	samplesPerFrame := int(C.webrtc_apm_num_samples_per_frame(ptr))

	return &Engine{
		ptr:             ptr,
		samplesPerFrame: samplesPerFrame,
		capture:         newPlanarScratch(numCaptureChannels, samplesPerFrame),
		render:          newPlanarScratch(numRenderChannels, samplesPerFrame),
	}, 0
}

// NumSamplesPerFrame returns the per-channel 10 ms frame length.
func (e *Engine) NumSamplesPerFrame() int {
	return e.samplesPerFrame
}

// SetConfig applies runtime-tunable settings.
func (e *Engine) SetConfig(cfg Config) {
	cCfg := C.webrtc_apm_config{
		pre_amplifier_enabled:           C.bool(cfg.PreAmplifierEnabled),
		pre_amplifier_fixed_gain_factor: C.float(cfg.PreAmplifierGainFactor),

		high_pass_filter_enabled: C.bool(cfg.HighPassFilterEnabled),

		echo_canceller_enabled:                     C.bool(cfg.EchoCancellerEnabled),
		echo_canceller_enforce_high_pass_filtering: C.bool(cfg.EchoCancellerEnforceHighPass),

		noise_suppression_enabled: C.bool(cfg.NoiseSuppressionEnabled),
		noise_suppression_level:   C.int(cfg.NoiseSuppressionLevel),

		gain_controller_enabled:             C.bool(cfg.GainControllerEnabled),
		gain_controller_mode:                C.int(cfg.GainControllerMode),
		gain_controller_target_level_dbfs:   C.int(cfg.GainControllerTargetLevelDbfs),
		gain_controller_compression_gain_db: C.int(cfg.GainControllerCompressionGainDb),
		gain_controller_enable_limiter:      C.bool(cfg.GainControllerEnableLimiter),

		report_voice_detection:        C.bool(cfg.ReportVoiceDetection),
		report_residual_echo_detector: C.bool(cfg.ReportResidualEchoDetector),
		report_level_estimation:       C.bool(cfg.ReportLevelEstimation),
	}
	C.webrtc_apm_apply_config(e.ptr, &cCfg)
}

// ProcessCaptureFrame runs the capture pipeline over the planar frame in
// place and returns the engine error code.
func (e *Engine) ProcessCaptureFrame(channels [][]float32) int {
	e.capture.copyIn(channels)
	code := int(C.webrtc_apm_process_capture_frame(e.ptr, e.capture.ptrs))
	if code == 0 {
		e.capture.copyOut(channels)
	}
	return code
}

// ProcessRenderFrame runs the render pipeline over the planar frame in
// place and returns the engine error code.
func (e *Engine) ProcessRenderFrame(channels [][]float32) int {
	e.render.copyIn(channels)
	code := int(C.webrtc_apm_process_render_frame(e.ptr, e.render.ptrs))
	if code == 0 {
		e.render.copyOut(channels)
	}
	return code
}

// Stats snapshots the engine metrics.
func (e *Engine) Stats() Stats {
	s := C.webrtc_apm_get_stats(e.ptr)
	return Stats{
		HasOutputRmsDbfs: bool(s.output_rms_dbfs.has_value),
		OutputRmsDbfs:    int(s.output_rms_dbfs.value),

		HasVoiceDetected: bool(s.voice_detected.has_value),
		VoiceDetected:    bool(s.voice_detected.value),

		HasEchoReturnLoss: bool(s.echo_return_loss.has_value),
		EchoReturnLoss:    float64(s.echo_return_loss.value),

		HasEchoReturnLossEnhancement: bool(s.echo_return_loss_enhancement.has_value),
		EchoReturnLossEnhancement:    float64(s.echo_return_loss_enhancement.value),

		HasDivergentFilterFraction: bool(s.divergent_filter_fraction.has_value),
		DivergentFilterFraction:    float64(s.divergent_filter_fraction.value),

		HasDelayMedianMs: bool(s.delay_median_ms.has_value),
		DelayMedianMs:    int(s.delay_median_ms.value),

		HasDelayStandardDeviationMs: bool(s.delay_standard_deviation_ms.has_value),
		DelayStandardDeviationMs:    int(s.delay_standard_deviation_ms.value),

		HasResidualEchoLikelihood: bool(s.residual_echo_likelihood.has_value),
		ResidualEchoLikelihood:    float64(s.residual_echo_likelihood.value),

		HasResidualEchoLikelihoodRecentMax: bool(s.residual_echo_likelihood_recent_max.has_value),
		ResidualEchoLikelihoodRecentMax:    float64(s.residual_echo_likelihood_recent_max.value),

		HasDelayMs: bool(s.delay_ms.has_value),
		DelayMs:    int(s.delay_ms.value),
	}
}

// SetStreamDelayMs reports the measured render-to-capture delay.
func (e *Engine) SetStreamDelayMs(delayMs int) {
	C.webrtc_apm_set_stream_delay_ms(e.ptr, C.int(delayMs))
}

// SetOutputWillBeMuted hints that the capture output is discarded.
func (e *Engine) SetOutputWillBeMuted(muted bool) {
	C.webrtc_apm_set_output_will_be_muted(e.ptr, C.bool(muted))
}

// Destroy releases the native engine and the scratch memory. The engine
// must not be used afterwards.
func (e *Engine) Destroy() {
	if e.ptr == nil {
		return
	}
	C.webrtc_apm_destroy(e.ptr)
	e.ptr = nil
	e.capture.free()
	e.render.free()
}
