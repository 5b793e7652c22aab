package mathutil

import (
	"github.com/tphakala/go-interpolate/internal/simdops"
)

// HermiteBasis evaluates the four cubic Hermite basis polynomials at t.
//
//	h00 = 2t³ - 3t² + 1   weight of the start value
//	h10 = t³ - 2t² + t    weight of the start tangent
//	h01 = -2t³ + 3t²      weight of the end value
//	h11 = t³ - t²         weight of the end tangent
//
// At t = 0 the weights are exactly (1, 0, 0, 0) and at t = 1 exactly (0, 0, 1, 0).
func HermiteBasis[F simdops.Float](t F) (h00, h10, h01, h11 F) {
	t2 := t * t
	t3 := t2 * t

	h00 = hermiteH00Cubic*t3 + hermiteH00Quad*t2 + 1
	h10 = hermiteH10Cubic*t3 + hermiteH10Quad*t2 + t
	h01 = hermiteH01Cubic*t3 + hermiteH01Quad*t2
	h11 = hermiteH11Cubic*t3 + hermiteH11Quad*t2
	return h00, h10, h01, h11
}

// HermiteCoefficients returns the Hermite basis as four coefficient columns,
// one per power of t, laid out for simdops.Ops.CubicInterpDot. Row i of the
// columns belongs to basis function i in the order h00, h10, h01, h11.
func HermiteCoefficients[F simdops.Float]() (c0, c1, c2, c3 []F) {
	c0 = []F{1, 0, 0, 0}
	c1 = []F{0, 1, 0, 0}
	c2 = []F{hermiteH00Quad, hermiteH10Quad, hermiteH01Quad, hermiteH11Quad}
	c3 = []F{hermiteH00Cubic, hermiteH10Cubic, hermiteH01Cubic, hermiteH11Cubic}
	return c0, c1, c2, c3
}

// CosineEase maps t to (1 - cos(t·π)) / 2.
// The result rises monotonically from 0 to 1 over [0, 1] with zero slope at both ends.
func CosineEase[F simdops.Float](t F) F {
	ops := simdops.For[F]()
	return (1 - ops.Cos(t*ops.Pi)) / halfDivisor
}

// TangentScale returns the factor that maps a finite difference measured over
// [from, to] onto the segment [segStart, segEnd]:
//
//	(segEnd - segStart) / (to - from)
//
// A zero-length difference interval yields ±Inf or NaN.
func TangentScale[F simdops.Float](segStart, segEnd, from, to F) F {
	return (segEnd - segStart) / (to - from)
}

// HandleFraction is the fraction of a Hermite tangent at which the
// equivalent cubic Bezier handle sits (one third).
func HandleFraction[F simdops.Float]() F {
	return hermiteHandleFraction
}
