// SPDX-License-Identifier: MIT

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. The scale
// matches Int16ToFloat32, so a round trip stays within one quantization
// step. Values outside [-1, 1] are clamped.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to the normalized [-1, 1)
// range.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
