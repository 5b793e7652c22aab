// Package testutil provides reusable test helper functions for interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/tphakala/go-interpolate/internal/simdops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	Float32Tolerance   = 1e-5
	Float64Tolerance   = 1e-9
	UnitNormTolerance  = 1e-5
	RotationTolerance  = 1e-4
	MagnitudeTolerance = 1e-2
)

// ToleranceFor returns the comparison tolerance appropriate for F.
func ToleranceFor[F simdops.Float]() float64 {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return Float32Tolerance
	}
	return Float64Tolerance
}

// AssertElemsInDelta verifies that two component slices match element-wise within tolerance.
func AssertElemsInDelta[F simdops.Float](t *testing.T, expected, actual []F, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !scalar.EqualWithinAbs(float64(expected[i]), float64(actual[i]), tolerance) {
			return assert.Fail(t, "component mismatch",
				"component %d: expected %v, got %v (tolerance %e); expected=%v actual=%v",
				i, expected[i], actual[i], tolerance, expected, actual)
		}
	}
	return true
}

// AssertUnitNorm verifies that the Euclidean norm of the components is 1 within tolerance.
func AssertUnitNorm[F simdops.Float](t *testing.T, elems []F, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	var sum float64
	for _, v := range elems {
		sum += float64(v) * float64(v)
	}
	norm := math.Sqrt(sum)
	if math.Abs(norm-1) >= tolerance {
		return assert.Fail(t, "not unit length",
			"norm of %v is %v, deviation %e exceeds %e", elems, norm, math.Abs(norm-1), tolerance)
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertHasNaNOrInf verifies that at least one element is NaN or Inf.
func AssertHasNaNOrInf[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for _, v := range s {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return true
		}
	}
	return assert.Fail(t, "expected NaN or Inf", "all of %v are finite", s)
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic[F simdops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%v < s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F simdops.Float](t *testing.T, s []F, minVal, maxVal F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%v is outside range [%v, %v]", i, v, minVal, maxVal)
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

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
