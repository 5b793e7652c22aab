package interpolate

import (
	"github.com/tphakala/go-interpolate/geom"
	"github.com/tphakala/go-interpolate/internal/mathutil"
)

// RotationGroup interpolates unit quaternions.
//
// Linear mixing does not preserve unit length, so every blend is a slerp
// along the shorter arc, including the reductions inside the Bezier and
// Hermite constructions. Inputs must be unit quaternions; this is not
// checked. Outputs are unit quaternions for t in [0, 1].
//
// The zero value is ready to use.
type RotationGroup[S Float] struct{}

// Step returns a if t < threshold and b otherwise.
func (RotationGroup[S]) Step(t, threshold S, a, b geom.Quat[S]) geom.Quat[S] {
	return step(t, threshold, a, b)
}

// Lerp returns the slerp from a to b. The result is exactly a at t = 0 and
// exactly b at t = 1.
func (RotationGroup[S]) Lerp(t S, a, b geom.Quat[S]) geom.Quat[S] {
	return a.Slerp(b, t)
}

// Cosine returns the slerp at the eased parameter (1 - cos(t·π)) / 2.
func (RotationGroup[S]) Cosine(t S, a, b geom.Quat[S]) geom.Quat[S] {
	return a.Slerp(b, mathutil.CosineEase(t))
}

// CubicHermite evaluates the rotation spline segment from a.Value to b.Value.
//
// The tangents are the relative rotations x⁻¹·b and a⁻¹·y, raised to the
// fractions (b.T - a.T) / (b.T - x.T) and (b.T - a.T) / (y.T - a.T) of
// themselves. As in the vector case the segment is the cubic Bezier whose
// handles lie one third of a tangent away from each end:
//
//	u = a · m0^(1/3)
//	v = b · (m1^(1/3))⁻¹
//
// evaluated with spherical De Casteljau reduction. The segment passes through
// a.Value at t = 0 and b.Value at t = 1, and consecutive segments sharing
// keys meet at the shared key. For evenly timed keys the tangent at a shared
// key is the same on both sides.
//
// Keys with equal adjacent times produce a quaternion with NaN components.
func (r RotationGroup[S]) CubicHermite(t S, x, a, b, y Key[S, geom.Quat[S]]) geom.Quat[S] {
	s0, s1, ok := tangentScales(x.T, a.T, b.T, y.T)
	if !ok {
		return geom.NaNQuat[S]()
	}
	third := mathutil.HandleFraction[S]()

	h0 := x.Value.Conjugate().Mul(b.Value).Pow(s0 * third)
	h1 := a.Value.Conjugate().Mul(y.Value).Pow(s1 * third)
	u := a.Value.Mul(h0)
	v := b.Value.Mul(h1.Conjugate())

	return r.CubicBezier(t, a.Value, u, v, b.Value)
}

// QuadraticBezier evaluates the spherical Bezier curve a, u, b by De
// Casteljau reduction with slerp.
func (RotationGroup[S]) QuadraticBezier(t S, a, u, b geom.Quat[S]) geom.Quat[S] {
	return a.Slerp(u, t).Slerp(u.Slerp(b, t), t)
}

// CubicBezier evaluates the spherical Bezier curve a, u, v, b by De
// Casteljau reduction with slerp.
func (RotationGroup[S]) CubicBezier(t S, a, u, v, b geom.Quat[S]) geom.Quat[S] {
	p0 := a.Slerp(u, t)
	p1 := u.Slerp(v, t)
	p2 := v.Slerp(b, t)
	return p0.Slerp(p1, t).Slerp(p1.Slerp(p2, t), t)
}

// CubicBezierMirrored evaluates the spherical cubic Bezier a, u, v', b where
// v' is v reflected through b.
//
// The reflection is taken on the four quaternion components, not by
// composing rotations: v is first moved to the hemisphere of b (v and -v are
// the same rotation), then v' = normalize(2b - v).
func (r RotationGroup[S]) CubicBezierMirrored(t S, a, u, v, b geom.Quat[S]) geom.Quat[S] {
	return r.CubicBezier(t, a, u, mirrorHandle(v, b), b)
}

func mirrorHandle[S Float](v, b geom.Quat[S]) geom.Quat[S] {
	if v.Dot(b) < 0 {
		v = v.Neg()
	}
	return geom.Quat[S]{
		X: reflectMul*b.X - v.X,
		Y: reflectMul*b.Y - v.Y,
		Z: reflectMul*b.Z - v.Z,
		W: reflectMul*b.W - v.W,
	}.Normalize()
}
