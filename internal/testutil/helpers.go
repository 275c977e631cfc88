// Package testutil provides reusable assertions for spectra and waveforms.
package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	SpectrumTolerance = 1e-9
	LooseTolerance    = 1e-6
)

// TB is the part of testing.TB the NaN check needs.
type TB interface {
	Errorf(format string, args ...any)
	Helper()
}

// AssertNoNaNOrInf verifies that no coefficient of a spectrum is NaN or Inf.
func AssertNoNaNOrInf(t TB, s []complex128, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if cmplx.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if cmplx.IsInf(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertBinsEqual verifies that bins [lo, hi] of s all equal want within
// tolerance.
func AssertBinsEqual(t *testing.T, s []complex128, lo, hi int, want complex128, tolerance float64) bool {
	t.Helper()
	for i := lo; i <= hi; i++ {
		if d := cmplx.Abs(s[i] - want); d > tolerance {
			return assert.Fail(t, "bin mismatch",
				"s[%d]=%v, want %v (|diff|=%e)", i, s[i], want, d)
		}
	}
	return true
}

// AssertAllBins verifies that every bin of s equals want within tolerance.
func AssertAllBins(t *testing.T, s []complex128, want complex128, tolerance float64) bool {
	t.Helper()
	return AssertBinsEqual(t, s, 0, len(s)-1, want, tolerance)
}

// AssertSpectraClose verifies that two spectra have the same length and
// agree bin by bin within tolerance.
func AssertSpectraClose(t *testing.T, expected, actual []complex128, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(expected[i] - actual[i]); d > tolerance {
			return assert.Fail(t, "spectra differ",
				"bin %d: expected %v, actual %v (|diff|=%e)", i, expected[i], actual[i], d)
		}
	}
	return true
}

// AssertWaveformsClose verifies two real sequences agree within tolerance.
func AssertWaveformsClose(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance, "sample %d", i) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
