package interpolate

import (
	"github.com/tphakala/go-interpolate/internal/engine"
)

// Linspace returns n evenly spaced parameters from 0 to 1 inclusive.
// The first value is exactly 0 and, for n >= 2, the last is exactly 1.
func Linspace[S Float](n int) []S {
	return engine.Ramp[S](n)
}

// Sample evaluates fn at n evenly spaced parameters from 0 to 1.
func Sample[S Float, V any](n int, fn func(t S) V) []V {
	ts := engine.Ramp[S](n)
	out := make([]V, len(ts))
	for i, t := range ts {
		out[i] = fn(t)
	}
	return out
}

// UniformKeys places values at times 0, 1, 2, ...
func UniformKeys[S Float, V any](values ...V) []Key[S, V] {
	keys := make([]Key[S, V], len(values))
	for i, v := range values {
		keys[i] = Key[S, V]{T: S(i), Value: v}
	}
	return keys
}
