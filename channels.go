package interpolate

import (
	"slices"

	"github.com/tphakala/go-interpolate/internal/engine"
	"github.com/tphakala/go-interpolate/internal/mathutil"
)

// Channels interpolates dense component vectors of any dimension, such as
// per-channel control values or color components.
//
// All arguments of one call must have the same length; shorter arguments
// cause a panic. Each call allocates its result and never modifies or
// returns its arguments. The zero value is ready to use.
type Channels[S Float] struct{}

// Step returns a copy of a if t < threshold and a copy of b otherwise.
func (Channels[S]) Step(t, threshold S, a, b []S) []S {
	return slices.Clone(step(t, threshold, a, b))
}

// Lerp returns a·(1-t) + b·t component-wise.
func (Channels[S]) Lerp(t S, a, b []S) []S {
	dst := make([]S, len(a))
	engine.LerpInto(dst, a, b, t)
	return dst
}

// Cosine returns Lerp at the eased parameter (1 - cos(t·π)) / 2.
func (c Channels[S]) Cosine(t S, a, b []S) []S {
	return c.Lerp(mathutil.CosineEase(t), a, b)
}

// CubicHermite evaluates the Hermite segment component-wise with the same
// tangents as VectorSpace.CubicHermite. Keys with equal adjacent times
// produce NaN components.
func (Channels[S]) CubicHermite(t S, x, a, b, y Key[S, []S]) []S {
	n := len(a.Value)
	dst := make([]S, n)
	s0, s1, ok := tangentScales(x.T, a.T, b.T, y.T)
	if !ok {
		for i := range dst {
			dst[i] = nan[S]()
		}
		return dst
	}

	m0 := make([]S, n)
	m1 := make([]S, n)
	for i := range n {
		m0[i] = (b.Value[i] - x.Value[i]) * s0
		m1[i] = (y.Value[i] - a.Value[i]) * s1
	}
	engine.Hermite[S]().EvalInto(dst, a.Value, m0, b.Value, m1, t)
	return dst
}

// QuadraticBezier evaluates the curve a, u, b by De Casteljau reduction.
func (c Channels[S]) QuadraticBezier(t S, a, u, b []S) []S {
	p0 := c.Lerp(t, a, u)
	p1 := c.Lerp(t, u, b)
	engine.LerpInto(p0, p0, p1, t)
	return p0
}

// CubicBezier evaluates the curve a, u, v, b by De Casteljau reduction.
func (c Channels[S]) CubicBezier(t S, a, u, v, b []S) []S {
	p0 := c.Lerp(t, a, u)
	p1 := c.Lerp(t, u, v)
	p2 := c.Lerp(t, v, b)
	engine.LerpInto(p0, p0, p1, t)
	engine.LerpInto(p1, p1, p2, t)
	engine.LerpInto(p0, p0, p1, t)
	return p0
}

// CubicBezierMirrored evaluates the cubic curve a, u, b + (b - v), b.
func (c Channels[S]) CubicBezierMirrored(t S, a, u, v, b []S) []S {
	mirrored := make([]S, len(b))
	for i := range mirrored {
		mirrored[i] = b[i] + (b[i] - v[i])
	}
	return c.CubicBezier(t, a, u, mirrored, b)
}
