package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	// At x=0 the spline passes through y1, at x=1 through y2.
	if got := CubicInterpolate(0, 0.3, 0.7, 1, 0); got != 0.3 {
		t.Errorf("CubicInterpolate(x=0) = %v, want 0.3", got)
	}
	if got := CubicInterpolate(0, 0.3, 0.7, 1, 1); math.Abs(float64(got-0.7)) > 1e-6 {
		t.Errorf("CubicInterpolate(x=1) = %v, want 0.7", got)
	}
}

func TestCubicInterpolate_ConstantSignal(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := CubicInterpolate(0.5, 0.5, 0.5, 0.5, x); math.Abs(float64(got-0.5)) > 1e-6 {
			t.Errorf("CubicInterpolate(const, x=%v) = %v, want 0.5", x, got)
		}
	}
}

func TestCubicInterpolate_LinearRamp(t *testing.T) {
	t.Parallel()

	// Catmull-Rom reproduces straight lines exactly.
	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		want := 1 + x
		if got := CubicInterpolate(0, 1, 2, 3, x); math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("CubicInterpolate(ramp, x=%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCubicInterpolate_Midpoint(t *testing.T) {
	t.Parallel()

	// Midpoint of a symmetric peak lands between the two center values.
	got := CubicInterpolate(0, 1, 1, 0, 0.5)
	if got < 1 || got > 1.2 {
		t.Errorf("CubicInterpolate(peak, x=0.5) = %v, want slight overshoot above 1", got)
	}
}
