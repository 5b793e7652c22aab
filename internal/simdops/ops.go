// Package simdops provides generic scalar and SIMD operations for float32 and float64 types.
// This enables a single codebase to support both precision levels without duplication.
//
// Scalar functions (trigonometry, square roots) dispatch to math for float64 and
// to github.com/chewxy/math32 for float32, so float32 values never take a round
// trip through float64. Slice kernels delegate to github.com/tphakala/simd.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides scalar math and SIMD-accelerated slice operations for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
//
// With PGO, these indirect calls can be devirtualized in hot paths.
type Ops[F Float] struct {
	// Pi is π rounded to the precision of F.
	Pi F

	// Epsilon is the machine epsilon of F.
	Epsilon F

	Sin   func(x F) F
	Cos   func(x F) F
	Acos  func(x F) F
	Atan2 func(y, x F) F
	Sqrt  func(x F) F
	Abs   func(x F) F

	// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
	IsNaN func(x F) bool

	// IsInf reports whether x is an infinity, according to sign (see math.IsInf).
	IsInf func(x F, sign int) bool

	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// CubicInterpDot computes the fused cubic polynomial dot product:
	//   Σ hist[i] * (a[i] + x*(b[i] + x*(c[i] + x*d[i])))
	// Used to evaluate cubic basis expansions such as the Hermite basis.
	CubicInterpDot func(hist, a, b, c, d []F, x F) F
}

// Pre-instantiated operations for each float type.
// These are package-level variables to avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		Pi:               math32.Pi,
		Epsilon:          float32EpsilonValue,
		Sin:              math32.Sin,
		Cos:              math32.Cos,
		Acos:             math32.Acos,
		Atan2:            math32.Atan2,
		Sqrt:             math32.Sqrt,
		Abs:              math32.Abs,
		IsNaN:            math32.IsNaN,
		IsInf:            math32.IsInf,
		DotProductUnsafe: f32.DotProductUnsafe,
		Interleave2:      f32.Interleave2,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
		CubicInterpDot:   f32.CubicInterpDot,
	}
	ops64 = Ops[float64]{
		Pi:               math.Pi,
		Epsilon:          float64EpsilonValue,
		Sin:              math.Sin,
		Cos:              math.Cos,
		Acos:             math.Acos,
		Atan2:            math.Atan2,
		Sqrt:             math.Sqrt,
		Abs:              math.Abs,
		IsNaN:            math.IsNaN,
		IsInf:            math.IsInf,
		DotProductUnsafe: f64.DotProductUnsafe,
		Interleave2:      f64.Interleave2,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
		CubicInterpDot:   f64.CubicInterpDot,
	}
)

// Machine epsilon per precision.
const (
	float32EpsilonValue = 1.1920929e-07
	float64EpsilonValue = 2.220446049250313e-16
)

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Type aliases for common configurations (Go 1.24 feature).
type (
	Ops32 = Ops[float32]
	Ops64 = Ops[float64]
)

// Float32Ops returns the float32 operations.
// Convenience function for non-generic code.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 operations.
// Convenience function for non-generic code.
func Float64Ops() *Ops[float64] {
	return &ops64
}

// CPUInfo describes the SIMD instruction sets detected on this machine.
func CPUInfo() string {
	return cpu.Info()
}
