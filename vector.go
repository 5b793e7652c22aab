package interpolate

import (
	"github.com/tphakala/go-interpolate/internal/mathutil"
)

// VectorSpace interpolates values closed under addition, subtraction and
// scaling: points, directions, colors.
//
// Every operation reduces to affine combinations of its arguments and does
// not allocate beyond what V's own methods allocate. The zero value is ready
// to use.
type VectorSpace[S Float, V Vector[S, V]] struct{}

// Step returns a if t < threshold and b otherwise.
func (VectorSpace[S, V]) Step(t, threshold S, a, b V) V {
	return step(t, threshold, a, b)
}

// Lerp returns a·(1-t) + b·t. The result is exactly a at t = 0 and exactly b
// at t = 1; other values of t extrapolate along the line.
func (VectorSpace[S, V]) Lerp(t S, a, b V) V {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Cosine returns Lerp at the eased parameter (1 - cos(t·π)) / 2.
func (s VectorSpace[S, V]) Cosine(t S, a, b V) V {
	return s.Lerp(mathutil.CosineEase(t), a, b)
}

// CubicHermite evaluates the Hermite segment from a.Value to b.Value:
//
//	m0 = (b.Value - x.Value) · (b.T - a.T) / (b.T - x.T)
//	m1 = (y.Value - a.Value) · (b.T - a.T) / (y.T - a.T)
//	a.Value·h00(t) + m0·h10(t) + b.Value·h01(t) + m1·h11(t)
//
// Keys with equal adjacent times produce a value with NaN components.
func (VectorSpace[S, V]) CubicHermite(t S, x, a, b, y Key[S, V]) V {
	s0, s1, ok := tangentScales(x.T, a.T, b.T, y.T)
	if !ok {
		return a.Value.Scale(nan[S]())
	}
	m0 := b.Value.Sub(x.Value).Scale(s0)
	m1 := y.Value.Sub(a.Value).Scale(s1)

	h00, h10, h01, h11 := mathutil.HermiteBasis(t)
	return a.Value.Scale(h00).
		Add(m0.Scale(h10)).
		Add(b.Value.Scale(h01)).
		Add(m1.Scale(h11))
}

// QuadraticBezier evaluates the curve a, u, b by De Casteljau reduction.
func (s VectorSpace[S, V]) QuadraticBezier(t S, a, u, b V) V {
	return s.Lerp(t, s.Lerp(t, a, u), s.Lerp(t, u, b))
}

// CubicBezier evaluates the curve a, u, v, b by De Casteljau reduction.
func (s VectorSpace[S, V]) CubicBezier(t S, a, u, v, b V) V {
	p0 := s.Lerp(t, a, u)
	p1 := s.Lerp(t, u, v)
	p2 := s.Lerp(t, v, b)
	return s.Lerp(t, s.Lerp(t, p0, p1), s.Lerp(t, p1, p2))
}

// CubicBezierMirrored evaluates the cubic curve a, u, b + (b - v), b.
func (s VectorSpace[S, V]) CubicBezierMirrored(t S, a, u, v, b V) V {
	return s.CubicBezier(t, a, u, b.Add(b.Sub(v)), b)
}
