// SPDX-License-Identifier: MIT

package webrtcaudio

// Stats is a snapshot of the metrics the engine reports while processing.
// Fields are nil when the engine has not produced the metric, either
// because the relevant module is disabled (see Config.ReportedStats) or
// because not enough audio has been processed yet.
type Stats struct {
	// OutputRmsDbfs is the capture output level in [-127, 0] dBFS.
	OutputRmsDbfs *int
	// VoiceDetected reports whether the last capture frame contained voice.
	VoiceDetected *bool
	// EchoReturnLoss and EchoReturnLossEnhancement measure AEC performance
	// in dB.
	EchoReturnLoss            *float64
	EchoReturnLossEnhancement *float64
	// DivergentFilterFraction is the fraction of time the linear filter
	// was considered divergent, in [0, 1].
	DivergentFilterFraction *float64
	// DelayMedianMs and DelayStandardDeviationMs describe the measured
	// render-to-capture delay over the last second.
	DelayMedianMs            *int
	DelayStandardDeviationMs *int
	// ResidualEchoLikelihood estimates how likely residual echo is present
	// in the capture output, in [0, 1].
	ResidualEchoLikelihood          *float64
	ResidualEchoLikelihoodRecentMax *float64
	// DelayMs is the instantaneous render-to-capture delay estimate.
	DelayMs *int
}
