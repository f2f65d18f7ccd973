// SPDX-License-Identifier: MIT

package webrtcaudio

// InitializationConfig fixes the stream shape for the lifetime of a
// Processor. The engine derives its 10 ms frame size from SampleRateHz, so
// every buffer passed to the processing calls must match
// NumSamplesPerFrame() × the channel count of the relevant direction.
type InitializationConfig struct {
	// NumCaptureChannels is the channel count of the microphone path.
	NumCaptureChannels int `yaml:"num_capture_channels" json:"num_capture_channels"`
	// NumRenderChannels is the channel count of the playback path.
	NumRenderChannels int `yaml:"num_render_channels" json:"num_render_channels"`
	// SampleRateHz applies to both directions (e.g. 48000).
	SampleRateHz int `yaml:"sample_rate_hz" json:"sample_rate_hz"`
}

// NoiseSuppressionLevel selects how aggressively the suppressor attenuates
// background noise. Higher levels remove more noise at the cost of more
// speech distortion.
type NoiseSuppressionLevel int

const (
	NoiseSuppressionLow NoiseSuppressionLevel = iota
	NoiseSuppressionModerate
	NoiseSuppressionHigh
	NoiseSuppressionVeryHigh
)

// GainControllerMode selects the AGC operating mode.
type GainControllerMode int

const (
	// GainControllerAdaptiveDigital adjusts gain purely in the digital
	// domain. This is the right choice when the analog mic level is not
	// controllable from software.
	GainControllerAdaptiveDigital GainControllerMode = iota
	// GainControllerFixedDigital applies a fixed digital compression gain.
	GainControllerFixedDigital
)

// PreAmplifier applies a fixed gain before any other capture processing.
type PreAmplifier struct {
	Enabled         bool    `yaml:"enabled" json:"enabled"`
	FixedGainFactor float32 `yaml:"fixed_gain_factor" json:"fixed_gain_factor"`
}

// HighPassFilter removes DC offset and low-frequency rumble from the
// capture path.
type HighPassFilter struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// EchoCanceller tunes the AEC3 echo canceller.
type EchoCanceller struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	// EnforceHighPassFiltering keeps the high-pass filter engaged while
	// echo cancellation runs, regardless of the HighPassFilter setting.
	EnforceHighPassFiltering bool `yaml:"enforce_high_pass_filtering" json:"enforce_high_pass_filtering"`
}

// NoiseSuppression tunes the noise suppressor.
type NoiseSuppression struct {
	Enabled bool                  `yaml:"enabled" json:"enabled"`
	Level   NoiseSuppressionLevel `yaml:"level" json:"level"`
}

// GainController tunes automatic gain control on the capture path.
type GainController struct {
	Enabled bool               `yaml:"enabled" json:"enabled"`
	Mode    GainControllerMode `yaml:"mode" json:"mode"`
	// TargetLevelDbfs is the target peak level, expressed as dB below
	// full scale (0..31).
	TargetLevelDbfs int `yaml:"target_level_dbfs" json:"target_level_dbfs"`
	// CompressionGainDb is the maximum compression gain (0..90).
	CompressionGainDb int `yaml:"compression_gain_db" json:"compression_gain_db"`
	// EnableLimiter prevents clipping when compression is applied.
	EnableLimiter bool `yaml:"enable_limiter" json:"enable_limiter"`
}

// ReportedStats selects which optional statistics the engine computes.
// Disabled metrics come back unset from Processor.GetStats.
type ReportedStats struct {
	EnableVoiceDetection       bool `yaml:"enable_voice_detection" json:"enable_voice_detection"`
	EnableResidualEchoDetector bool `yaml:"enable_residual_echo_detector" json:"enable_residual_echo_detector"`
	EnableLevelEstimation      bool `yaml:"enable_level_estimation" json:"enable_level_estimation"`
}

// Config holds the runtime-tunable settings of the engine. It may be
// replaced at any time with Processor.SetConfig; the new settings take
// effect on the next processed frame.
type Config struct {
	PreAmplifier     PreAmplifier     `yaml:"pre_amplifier" json:"pre_amplifier"`
	HighPassFilter   HighPassFilter   `yaml:"high_pass_filter" json:"high_pass_filter"`
	EchoCanceller    EchoCanceller    `yaml:"echo_canceller" json:"echo_canceller"`
	NoiseSuppression NoiseSuppression `yaml:"noise_suppression" json:"noise_suppression"`
	GainController   GainController   `yaml:"gain_controller" json:"gain_controller"`
	ReportedStats    ReportedStats    `yaml:"reported_stats" json:"reported_stats"`
}

// DefaultConfig returns the settings a fresh engine starts with: echo
// cancellation, noise suppression and adaptive gain control enabled, which
// is the sensible baseline for a duplex voice path.
func DefaultConfig() Config {
	return Config{
		PreAmplifier:   PreAmplifier{Enabled: false, FixedGainFactor: 1.0},
		HighPassFilter: HighPassFilter{Enabled: true},
		EchoCanceller: EchoCanceller{
			Enabled:                  true,
			EnforceHighPassFiltering: true,
		},
		NoiseSuppression: NoiseSuppression{
			Enabled: true,
			Level:   NoiseSuppressionModerate,
		},
		GainController: GainController{
			Enabled:           true,
			Mode:              GainControllerAdaptiveDigital,
			TargetLevelDbfs:   3,
			CompressionGainDb: 9,
			EnableLimiter:     true,
		},
	}
}

// Aec3Delay tunes how AEC3 estimates the delay between the render and
// capture paths.
type Aec3Delay struct {
	// DefaultDelayBlocks is the initial delay estimate in 4 ms blocks.
	DefaultDelayBlocks int `yaml:"default_delay_blocks" json:"default_delay_blocks"`
	// DownSamplingFactor applies to the delay estimator input (2, 4 or 8).
	DownSamplingFactor int `yaml:"down_sampling_factor" json:"down_sampling_factor"`
	// NumFilters is the number of matched filters in the estimator.
	NumFilters int `yaml:"num_filters" json:"num_filters"`
}

// Aec3Filter sizes the adaptive filters of the echo remover.
type Aec3Filter struct {
	// MainLengthBlocks is the refined filter length in 4 ms blocks.
	MainLengthBlocks int `yaml:"main_length_blocks" json:"main_length_blocks"`
	// ShadowLengthBlocks is the coarse filter length in 4 ms blocks.
	ShadowLengthBlocks int `yaml:"shadow_length_blocks" json:"shadow_length_blocks"`
}

// Aec3Suppressor tunes the residual echo suppressor.
type Aec3Suppressor struct {
	// NearendAverageBlocks is the averaging window used to classify
	// near-end activity.
	NearendAverageBlocks int `yaml:"nearend_average_blocks" json:"nearend_average_blocks"`
}

// Aec3Config carries the AEC3-specific tuning passed at construction.
// Unlike Config it cannot be changed afterwards; replacing it requires a
// new Processor.
type Aec3Config struct {
	Delay      Aec3Delay      `yaml:"delay" json:"delay"`
	Filter     Aec3Filter     `yaml:"filter" json:"filter"`
	Suppressor Aec3Suppressor `yaml:"suppressor" json:"suppressor"`
}

// DefaultAec3Config mirrors the upstream EchoCanceller3Config defaults.
func DefaultAec3Config() Aec3Config {
	return Aec3Config{
		Delay: Aec3Delay{
			DefaultDelayBlocks: 5,
			DownSamplingFactor: 4,
			NumFilters:         5,
		},
		Filter: Aec3Filter{
			MainLengthBlocks:   13,
			ShadowLengthBlocks: 12,
		},
		Suppressor: Aec3Suppressor{
			NearendAverageBlocks: 4,
		},
	}
}
