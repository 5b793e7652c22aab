package geom

import (
	"github.com/tphakala/go-interpolate/internal/simdops"
)

// Quat is a quaternion X·i + Y·j + Z·k + W. Rotations are unit quaternions;
// q and -q describe the same rotation.
type Quat[S Float] struct {
	X, Y, Z, W S
}

// Aliases for the common instantiations.
type (
	QuatF32 = Quat[float32]
	QuatF64 = Quat[float64]
)

// NewQuat returns the quaternion with the given components.
func NewQuat[S Float](x, y, z, w S) Quat[S] {
	return Quat[S]{X: x, Y: y, Z: z, W: w}
}

// IdentityQuat returns the identity rotation.
func IdentityQuat[S Float]() Quat[S] {
	return Quat[S]{W: 1}
}

// NaNQuat returns a quaternion whose components are all NaN.
func NaNQuat[S Float]() Quat[S] {
	var zero S
	nan := zero / zero
	return Quat[S]{X: nan, Y: nan, Z: nan, W: nan}
}

// QuatFromAxisAngle returns the rotation of angle radians about axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle[S Float](axis Vec3[S], angle S) Quat[S] {
	ops := simdops.For[S]()
	a := axis.Normalize()
	half := angle / halfDivisor
	s := ops.Sin(half)
	return Quat[S]{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: ops.Cos(half)}
}

// AxisAngle returns the rotation axis and angle in radians of the unit quaternion q.
// The identity rotation reports the X axis with a zero angle.
func (q Quat[S]) AxisAngle() (Vec3[S], S) {
	ops := simdops.For[S]()
	w := clampUnit(q.W)
	angle := rotationMul * ops.Acos(w)
	s := ops.Sqrt(1 - w*w)
	if s < axisAngleSinThreshold {
		return Vec3[S]{X: 1}, angle
	}
	return Vec3[S]{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, angle
}

// Mul returns the Hamilton product q·o, the rotation o followed by q.
func (q Quat[S]) Mul(o Quat[S]) Quat[S] {
	return Quat[S]{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conjugate returns the conjugate of q, which is its inverse when q is a unit quaternion.
func (q Quat[S]) Conjugate() Quat[S] {
	return Quat[S]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Neg returns -q, the same rotation on the opposite hemisphere.
func (q Quat[S]) Neg() Quat[S] {
	return Quat[S]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Dot returns the four-component dot product of q and o.
func (q Quat[S]) Dot(o Quat[S]) S {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSq returns the squared length of q.
func (q Quat[S]) LengthSq() S {
	return q.Dot(q)
}

// Length returns the length of q.
func (q Quat[S]) Length() S {
	return simdops.For[S]().Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length.
// The zero quaternion normalizes to the identity; NaN components stay NaN.
func (q Quat[S]) Normalize() Quat[S] {
	l := q.Length()
	if l == 0 {
		return IdentityQuat[S]()
	}
	l = 1 / l
	return Quat[S]{X: q.X * l, Y: q.Y * l, Z: q.Z * l, W: q.W * l}
}

// IsUnit reports whether the length of q is within tolerance of 1.
func (q Quat[S]) IsUnit(tolerance S) bool {
	return simdops.For[S]().Abs(q.Length()-1) < tolerance
}

// Slerp returns the spherical linear interpolation from q to other at t.
//
// The path follows the shorter arc, so other may come back negated. t = 0
// returns q and t = 1 returns other bit for bit. Nearly parallel inputs use a
// normalized linear blend, which keeps NaN and Inf values of t visible in the
// result. Both inputs are expected to be unit quaternions.
func (q Quat[S]) Slerp(other Quat[S], t S) Quat[S] {
	if t == 0 {
		return q
	}
	if t == 1 {
		return other
	}

	end := other
	cosHalfTheta := q.Dot(other)
	if cosHalfTheta < 0 {
		end = other.Neg()
		cosHalfTheta = -cosHalfTheta
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta < slerpLinearThreshold {
		s := 1 - t
		return Quat[S]{
			X: s*q.X + t*end.X,
			Y: s*q.Y + t*end.Y,
			Z: s*q.Z + t*end.Z,
			W: s*q.W + t*end.W,
		}.Normalize()
	}

	ops := simdops.For[S]()
	sinHalfTheta := ops.Sqrt(sqrSinHalfTheta)
	halfTheta := ops.Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := ops.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := ops.Sin(t*halfTheta) / sinHalfTheta

	return Quat[S]{
		X: q.X*ratioA + end.X*ratioB,
		Y: q.Y*ratioA + end.Y*ratioB,
		Z: q.Z*ratioA + end.Z*ratioB,
		W: q.W*ratioA + end.W*ratioB,
	}
}

// Pow returns the fraction s of the rotation q, measured from the identity
// along the shorter arc.
func (q Quat[S]) Pow(s S) Quat[S] {
	return IdentityQuat[S]().Slerp(q, s)
}

// Rotate applies the rotation q to v.
func (q Quat[S]) Rotate(v Vec3[S]) Vec3[S] {
	u := Vec3[S]{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(rotationMul)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// AngleTo returns the angle in radians of the rotation that takes q to o.
func (q Quat[S]) AngleTo(o Quat[S]) S {
	ops := simdops.For[S]()
	d := clampUnit(ops.Abs(q.Dot(o)))
	return rotationMul * ops.Acos(d)
}

// Elems returns the components as a slice in X, Y, Z, W order.
func (q Quat[S]) Elems() []S {
	return []S{q.X, q.Y, q.Z, q.W}
}

// QuatFromElems builds a Quat from the first four elements of e in X, Y, Z, W order.
func QuatFromElems[S Float](e []S) Quat[S] {
	return Quat[S]{X: e[0], Y: e[1], Z: e[2], W: e[3]}
}

func clampUnit[S Float](x S) S {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
