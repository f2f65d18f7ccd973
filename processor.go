// SPDX-License-Identifier: MIT

package webrtcaudio

import (
	"fmt"
	"runtime"

	"github.com/jacksongoode/webrtc-audio-processing/internal/native"
)

// engine is the subset of the native binding the facade drives. It is an
// interface so the facade logic can be exercised against a fake engine in
// tests, without linking the native library.
type engine interface {
	SetConfig(cfg native.Config)
	ProcessCaptureFrame(channels [][]float32) int
	ProcessRenderFrame(channels [][]float32) int
	Stats() native.Stats
	SetStreamDelayMs(delayMs int)
	SetOutputWillBeMuted(muted bool)
	Destroy()
}

// Processor owns one native audio processing engine. It validates every
// buffer before crossing the cgo boundary and converts native error codes
// into Go errors at that boundary.
//
// All working buffers are sized at construction; the processing calls do
// not allocate, so they are safe to run inside a real-time audio callback.
//
// A Processor is not safe for concurrent use. Callers must serialize
// SetConfig, ProcessCaptureFrame and ProcessRenderFrame. GetStats is
// the one exception; see its doc.
type Processor struct {
	eng    engine
	closed bool

	numCaptureChannels int
	numRenderChannels  int
	samplesPerFrame    int

	// Planar scratch buffers reused on every call. The engine consumes
	// one float slice per channel; the public API is interleaved.
	capturePlanar [][]float32
	renderPlanar  [][]float32
}

// New constructs a Processor with the default AEC3 tuning. It fails with
// an *EngineError if the native engine rejects the stream shape (for
// example an unsupported channel/sample-rate combination).
func New(cfg InitializationConfig) (*Processor, error) {
	return NewWithAec3Config(cfg, nil)
}

// NewWithAec3Config constructs a Processor with explicit AEC3 tuning.
// A nil aec3 behaves exactly like New.
func NewWithAec3Config(cfg InitializationConfig, aec3 *Aec3Config) (*Processor, error) {
	if cfg.NumCaptureChannels < 1 || cfg.NumRenderChannels < 1 {
		return nil, fmt.Errorf("webrtc audio processing: channel counts must be at least 1, got capture=%d render=%d",
			cfg.NumCaptureChannels, cfg.NumRenderChannels)
	}
	if cfg.SampleRateHz <= 0 || cfg.SampleRateHz%100 != 0 {
		return nil, fmt.Errorf("webrtc audio processing: sample rate %d Hz cannot form 10 ms frames", cfg.SampleRateHz)
	}

	eng, code := native.New(cfg.NumCaptureChannels, cfg.NumRenderChannels, cfg.SampleRateHz, nativeAec3Config(aec3))
	if eng == nil {
		return nil, &EngineError{Op: "create", Code: code}
	}

	p := newProcessor(eng, cfg)
	runtime.SetFinalizer(p, (*Processor).Close)
	return p, nil
}

// newProcessor wires a facade around an already-constructed engine.
// Split out of NewWithAec3Config so tests can inject a fake engine.
func newProcessor(eng engine, cfg InitializationConfig) *Processor {
	samplesPerFrame := cfg.SampleRateHz / 100 // one 10 ms frame per channel

	return &Processor{
		eng:                eng,
		numCaptureChannels: cfg.NumCaptureChannels,
		numRenderChannels:  cfg.NumRenderChannels,
		samplesPerFrame:    samplesPerFrame,
		capturePlanar:      newPlanar(cfg.NumCaptureChannels, samplesPerFrame),
		renderPlanar:       newPlanar(cfg.NumRenderChannels, samplesPerFrame),
	}
}

func newPlanar(channels, samplesPerFrame int) [][]float32 {
	// One backing array keeps the planes contiguous.
	backing := make([]float32, channels*samplesPerFrame)
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = backing[c*samplesPerFrame : (c+1)*samplesPerFrame]
	}
	return planes
}

// NumSamplesPerFrame returns the per-channel frame length the engine
// expects: 10 ms of audio, so 480 samples at 48 kHz.
func (p *Processor) NumSamplesPerFrame() int {
	return p.samplesPerFrame
}

// SetConfig replaces the runtime-tunable settings. The new configuration
// takes effect on the next processed frame. The native call cannot fail.
func (p *Processor) SetConfig(cfg Config) {
	if p.closed {
		return
	}
	p.eng.SetConfig(nativeConfig(cfg))
}

// ProcessCaptureFrame runs the capture pipeline (echo cancellation against
// the most recent render reference, noise suppression, gain control) over
// frame in place. frame must hold exactly
// NumSamplesPerFrame() × NumCaptureChannels interleaved samples.
func (p *Processor) ProcessCaptureFrame(frame []float32) error {
	if p.closed {
		return ErrProcessorClosed
	}
	if err := p.checkFrame(frame, p.numCaptureChannels); err != nil {
		return err
	}

	deinterleave(frame, p.capturePlanar)
	if code := p.eng.ProcessCaptureFrame(p.capturePlanar); code != 0 {
		return &EngineError{Op: "process capture frame", Code: code}
	}
	interleave(p.capturePlanar, frame)
	return nil
}

// ProcessRenderFrame runs the render pipeline over frame in place and
// feeds it to the echo canceller as the far-end reference. frame must hold
// exactly NumSamplesPerFrame() × NumRenderChannels interleaved samples.
//
// Within one audio period, process the capture frame before the render
// frame; the render frame informs the echo-reference state used by the
// next capture call.
func (p *Processor) ProcessRenderFrame(frame []float32) error {
	if p.closed {
		return ErrProcessorClosed
	}
	if err := p.checkFrame(frame, p.numRenderChannels); err != nil {
		return err
	}

	deinterleave(frame, p.renderPlanar)
	if code := p.eng.ProcessRenderFrame(p.renderPlanar); code != 0 {
		return &EngineError{Op: "process render frame", Code: code}
	}
	interleave(p.renderPlanar, frame)
	return nil
}

// GetStats snapshots the engine metrics. Fields for disabled modules are
// nil; see Config.ReportedStats.
//
// The native engine synchronizes its statistics internally, so GetStats
// may run concurrently with the processing calls. It must still not
// race with Close.
func (p *Processor) GetStats() Stats {
	if p.closed {
		return Stats{}
	}
	return statsFromNative(p.eng.Stats())
}

// SetStreamDelayMs reports the measured delay between the render and
// capture paths, in milliseconds. AEC3 estimates the delay itself, but a
// measured value speeds up convergence after delay changes.
func (p *Processor) SetStreamDelayMs(delayMs int) {
	if p.closed {
		return
	}
	p.eng.SetStreamDelayMs(delayMs)
}

// SetOutputWillBeMuted hints that the capture output is discarded, letting
// the engine skip work that only affects the muted signal.
func (p *Processor) SetOutputWillBeMuted(muted bool) {
	if p.closed {
		return
	}
	p.eng.SetOutputWillBeMuted(muted)
}

// Close releases the native engine. It is safe to call more than once;
// any later processing call fails with ErrProcessorClosed.
func (p *Processor) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	runtime.SetFinalizer(p, nil)
	p.eng.Destroy()
	return nil
}

func (p *Processor) checkFrame(frame []float32, channels int) error {
	if want := p.samplesPerFrame * channels; len(frame) != want {
		return fmt.Errorf("%w: got %d samples, want %d (%d channels × %d samples)",
			ErrInvalidFrameLength, len(frame), want, channels, p.samplesPerFrame)
	}
	return nil
}

// deinterleave splits interleaved samples into per-channel planes.
// len(src) must equal len(planes) × len(planes[0]).
func deinterleave(src []float32, planes [][]float32) {
	if len(planes) == 1 {
		copy(planes[0], src)
		return
	}
	channels := len(planes)
	for c, plane := range planes {
		for i := range plane {
			plane[i] = src[i*channels+c]
		}
	}
}

// interleave merges per-channel planes back into an interleaved buffer.
func interleave(planes [][]float32, dst []float32) {
	if len(planes) == 1 {
		copy(dst, planes[0])
		return
	}
	channels := len(planes)
	for c, plane := range planes {
		for i, v := range plane {
			dst[i*channels+c] = v
		}
	}
}

// nativeConfig flattens the public Config into the shim's mirror struct.
func nativeConfig(cfg Config) native.Config {
	return native.Config{
		PreAmplifierEnabled:             cfg.PreAmplifier.Enabled,
		PreAmplifierGainFactor:          cfg.PreAmplifier.FixedGainFactor,
		HighPassFilterEnabled:           cfg.HighPassFilter.Enabled,
		EchoCancellerEnabled:            cfg.EchoCanceller.Enabled,
		EchoCancellerEnforceHighPass:    cfg.EchoCanceller.EnforceHighPassFiltering,
		NoiseSuppressionEnabled:         cfg.NoiseSuppression.Enabled,
		NoiseSuppressionLevel:           int(cfg.NoiseSuppression.Level),
		GainControllerEnabled:           cfg.GainController.Enabled,
		GainControllerMode:              int(cfg.GainController.Mode),
		GainControllerTargetLevelDbfs:   cfg.GainController.TargetLevelDbfs,
		GainControllerCompressionGainDb: cfg.GainController.CompressionGainDb,
		GainControllerEnableLimiter:     cfg.GainController.EnableLimiter,
		ReportVoiceDetection:            cfg.ReportedStats.EnableVoiceDetection,
		ReportResidualEchoDetector:      cfg.ReportedStats.EnableResidualEchoDetector,
		ReportLevelEstimation:           cfg.ReportedStats.EnableLevelEstimation,
	}
}

// nativeAec3Config flattens the optional AEC3 tuning; nil stays nil so the
// shim falls back to the upstream defaults.
func nativeAec3Config(cfg *Aec3Config) *native.Aec3Config {
	if cfg == nil {
		return nil
	}
	return &native.Aec3Config{
		DelayDefaultDelayBlocks:        cfg.Delay.DefaultDelayBlocks,
		DelayDownSamplingFactor:        cfg.Delay.DownSamplingFactor,
		DelayNumFilters:                cfg.Delay.NumFilters,
		FilterMainLengthBlocks:         cfg.Filter.MainLengthBlocks,
		FilterShadowLengthBlocks:       cfg.Filter.ShadowLengthBlocks,
		SuppressorNearendAverageBlocks: cfg.Suppressor.NearendAverageBlocks,
	}
}

func statsFromNative(s native.Stats) Stats {
	var out Stats
	if s.HasOutputRmsDbfs {
		v := s.OutputRmsDbfs
		out.OutputRmsDbfs = &v
	}
	if s.HasVoiceDetected {
		v := s.VoiceDetected
		out.VoiceDetected = &v
	}
	if s.HasEchoReturnLoss {
		v := s.EchoReturnLoss
		out.EchoReturnLoss = &v
	}
	if s.HasEchoReturnLossEnhancement {
		v := s.EchoReturnLossEnhancement
		out.EchoReturnLossEnhancement = &v
	}
	if s.HasDivergentFilterFraction {
		v := s.DivergentFilterFraction
		out.DivergentFilterFraction = &v
	}
	if s.HasDelayMedianMs {
		v := s.DelayMedianMs
		out.DelayMedianMs = &v
	}
	if s.HasDelayStandardDeviationMs {
		v := s.DelayStandardDeviationMs
		out.DelayStandardDeviationMs = &v
	}
	if s.HasResidualEchoLikelihood {
		v := s.ResidualEchoLikelihood
		out.ResidualEchoLikelihood = &v
	}
	if s.HasResidualEchoLikelihoodRecentMax {
		v := s.ResidualEchoLikelihoodRecentMax
		out.ResidualEchoLikelihoodRecentMax = &v
	}
	if s.HasDelayMs {
		v := s.DelayMs
		out.DelayMs = &v
	}
	return out
}
