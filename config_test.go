package webrtcaudio

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if !cfg.EchoCanceller.Enabled {
		t.Error("echo canceller disabled by default")
	}
	if !cfg.EchoCanceller.EnforceHighPassFiltering {
		t.Error("echo canceller does not enforce high-pass filtering by default")
	}
	if !cfg.HighPassFilter.Enabled {
		t.Error("high-pass filter disabled by default")
	}
	if !cfg.NoiseSuppression.Enabled || cfg.NoiseSuppression.Level != NoiseSuppressionModerate {
		t.Errorf("noise suppression = %+v, want enabled at the moderate level", cfg.NoiseSuppression)
	}
	if !cfg.GainController.Enabled || cfg.GainController.Mode != GainControllerAdaptiveDigital {
		t.Errorf("gain controller = %+v, want enabled in adaptive digital mode", cfg.GainController)
	}
	if !cfg.GainController.EnableLimiter {
		t.Error("gain controller limiter disabled by default")
	}
	if cfg.PreAmplifier.Enabled {
		t.Error("pre-amplifier enabled by default")
	}
	if cfg.PreAmplifier.FixedGainFactor != 1.0 {
		t.Errorf("pre-amplifier gain factor = %v, want 1.0", cfg.PreAmplifier.FixedGainFactor)
	}
	if cfg.ReportedStats != (ReportedStats{}) {
		t.Errorf("optional stats enabled by default: %+v", cfg.ReportedStats)
	}
}

func TestDefaultAec3Config(t *testing.T) {
	t.Parallel()

	cfg := DefaultAec3Config()

	if cfg.Delay.DefaultDelayBlocks != 5 || cfg.Delay.DownSamplingFactor != 4 || cfg.Delay.NumFilters != 5 {
		t.Errorf("delay tuning = %+v", cfg.Delay)
	}
	if cfg.Filter.MainLengthBlocks != 13 || cfg.Filter.ShadowLengthBlocks != 12 {
		t.Errorf("filter tuning = %+v", cfg.Filter)
	}
	if cfg.Suppressor.NearendAverageBlocks != 4 {
		t.Errorf("suppressor tuning = %+v", cfg.Suppressor)
	}
}

func TestNoiseSuppressionLevelOrdering(t *testing.T) {
	t.Parallel()

	// The numeric values cross the cgo boundary unchanged, so the order
	// is part of the contract.
	levels := []NoiseSuppressionLevel{
		NoiseSuppressionLow,
		NoiseSuppressionModerate,
		NoiseSuppressionHigh,
		NoiseSuppressionVeryHigh,
	}
	for i, level := range levels {
		if int(level) != i {
			t.Errorf("level %d has value %d", i, int(level))
		}
	}
}
