// Package engine implements the batch kernels behind component-wise interpolation.
package engine

import (
	"github.com/tphakala/go-interpolate/internal/mathutil"
	"github.com/tphakala/go-interpolate/internal/simdops"
)

// HermiteKernel evaluates cubic Hermite segments through the fused
// polynomial kernel simdops.Ops.CubicInterpDot.
//
// The four values of a segment (start, start tangent, end, end tangent) form
// the history window and the Hermite basis forms the coefficient columns, so
// one call yields
//
//	a·h00(t) + m0·h10(t) + b·h01(t) + m1·h11(t)
//
// A HermiteKernel is immutable after construction and safe for concurrent use.
//
// Type parameter F controls the precision of the evaluation.
type HermiteKernel[F simdops.Float] struct {
	ops            *simdops.Ops[F]
	c0, c1, c2, c3 []F
}

// NewHermiteKernel creates a kernel for precision F.
func NewHermiteKernel[F simdops.Float]() *HermiteKernel[F] {
	c0, c1, c2, c3 := mathutil.HermiteCoefficients[F]()
	return &HermiteKernel[F]{
		ops: simdops.For[F](),
		c0:  c0,
		c1:  c1,
		c2:  c2,
		c3:  c3,
	}
}

// Shared kernels, one per precision.
var (
	hermite32 = NewHermiteKernel[float32]()
	hermite64 = NewHermiteKernel[float64]()
)

// Hermite returns the shared kernel for precision F.
func Hermite[F simdops.Float]() *HermiteKernel[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		k, ok := any(hermite32).(*HermiteKernel[F])
		if !ok {
			panic("engine: type assertion failed for float32")
		}
		return k
	default:
		k, ok := any(hermite64).(*HermiteKernel[F])
		if !ok {
			panic("engine: type assertion failed for float64")
		}
		return k
	}
}

// Eval returns the Hermite segment value at t for one component.
func (k *HermiteKernel[F]) Eval(t, a, m0, b, m1 F) F {
	hist := [cubicInterpolationPoints]F{a, m0, b, m1}
	return k.ops.CubicInterpDot(hist[:], k.c0, k.c1, k.c2, k.c3, t)
}

// EvalInto evaluates the segment component by component and writes the
// result to dst. All slices must have the length of dst.
func (k *HermiteKernel[F]) EvalInto(dst, a, m0, b, m1 []F, t F) {
	var hist [cubicInterpolationPoints]F
	for i := range dst {
		hist[0], hist[1], hist[2], hist[3] = a[i], m0[i], b[i], m1[i]
		dst[i] = k.ops.CubicInterpDot(hist[:], k.c0, k.c1, k.c2, k.c3, t)
	}
}

// LerpInto writes a·(1-t) + b·t to dst. All slices must have the length of dst.
// The result equals a at t = 0 and b at t = 1 exactly.
func LerpInto[F simdops.Float](dst, a, b []F, t F) {
	simdops.For[F]().Scale(dst, a, 1-t)
	for i := range dst {
		dst[i] += b[i] * t
	}
}

// Ramp returns n evenly spaced values from 0 to 1 inclusive.
// n = 1 yields [0] and n <= 0 yields an empty slice.
func Ramp[F simdops.Float](n int) []F {
	if n <= 0 {
		return []F{}
	}
	out := make([]F, n)
	if n < minRampPoints {
		return out
	}
	for i := range out {
		out[i] = F(i)
	}
	simdops.For[F]().Scale(out, out, 1/F(n-1))
	// Pin the last point; i·(1/(n-1)) can round below 1
	out[n-1] = 1
	return out
}
