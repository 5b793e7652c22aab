package interpolate

import (
	"github.com/tphakala/go-interpolate/geom"
	"github.com/tphakala/go-interpolate/internal/mathutil"
	"github.com/tphakala/go-interpolate/internal/simdops"
)

// Float is the scalar precision used for interpolation parameters and
// value components.
type Float = simdops.Float

// Interpolator blends values of type V under parameter type S.
//
// All methods are pure: they never modify their arguments, keep no state and
// return the same output for the same inputs. Implementations are safe for
// concurrent use.
type Interpolator[S Float, V any] interface {
	// Step returns a if t < threshold and b otherwise.
	Step(t, threshold S, a, b V) V

	// Lerp is the canonical mix of a and b. Lerp(0, a, b) is a and
	// Lerp(1, a, b) is b.
	Lerp(t S, a, b V) V

	// Cosine eases t with (1 - cos(t·π)) / 2 and then calls Lerp.
	// The blend has zero velocity at both ends.
	Cosine(t S, a, b V) V

	// CubicHermite evaluates the spline segment from a to b. The tangents at
	// a and b are finite differences over the neighbouring keys x and y,
	// scaled to the time span of the segment. Key times must be strictly
	// increasing; equal adjacent times yield a NaN result.
	CubicHermite(t S, x, a, b, y Key[S, V]) V

	// QuadraticBezier evaluates the Bezier curve with control points a, u, b.
	QuadraticBezier(t S, a, u, b V) V

	// CubicBezier evaluates the Bezier curve with control points a, u, v, b.
	CubicBezier(t S, a, u, v, b V) V

	// CubicBezierMirrored evaluates the cubic Bezier whose trailing handle is
	// v reflected through b, continuing a preceding segment that ended at b
	// with handle v.
	CubicBezierMirrored(t S, a, u, v, b V) V
}

// Key is a value at a point in time.
type Key[S Float, V any] struct {
	T     S
	Value V
}

// NewKey returns the key holding value at time t.
func NewKey[S Float, V any](t S, value V) Key[S, V] {
	return Key[S, V]{T: t, Value: value}
}

// Vector is the algebra a value type needs for the vector space realization.
type Vector[S Float, V any] interface {
	Add(V) V
	Sub(V) V
	Scale(S) V
}

// Pre-instantiated interpolators for the geom value types.
var (
	Vec2F32 = VectorSpace[float32, geom.Vec2F32]{}
	Vec2F64 = VectorSpace[float64, geom.Vec2F64]{}
	Vec3F32 = VectorSpace[float32, geom.Vec3F32]{}
	Vec3F64 = VectorSpace[float64, geom.Vec3F64]{}
	Vec4F32 = VectorSpace[float32, geom.Vec4F32]{}
	Vec4F64 = VectorSpace[float64, geom.Vec4F64]{}

	QuatF32 = RotationGroup[float32]{}
	QuatF64 = RotationGroup[float64]{}

	ChannelsF32 = Channels[float32]{}
	ChannelsF64 = Channels[float64]{}
)

// Compile-time interface checks.
var (
	_ Interpolator[float32, geom.Vec2F32] = Vec2F32
	_ Interpolator[float64, geom.Vec2F64] = Vec2F64
	_ Interpolator[float32, geom.Vec3F32] = Vec3F32
	_ Interpolator[float64, geom.Vec3F64] = Vec3F64
	_ Interpolator[float32, geom.Vec4F32] = Vec4F32
	_ Interpolator[float64, geom.Vec4F64] = Vec4F64
	_ Interpolator[float32, geom.QuatF32] = QuatF32
	_ Interpolator[float64, geom.QuatF64] = QuatF64
	_ Interpolator[float32, []float32]    = ChannelsF32
	_ Interpolator[float64, []float64]    = ChannelsF64
)

// Vectors returns the interpolator for the vector type V.
func Vectors[S Float, V Vector[S, V]]() Interpolator[S, V] {
	return VectorSpace[S, V]{}
}

// Rotations returns the interpolator for unit quaternions of precision S.
func Rotations[S Float]() Interpolator[S, geom.Quat[S]] {
	return RotationGroup[S]{}
}

func step[S Float, V any](t, threshold S, a, b V) V {
	if t < threshold {
		return a
	}
	return b
}

// tangentScales returns the factors that map the finite differences b - x
// and y - a onto the segment [a, b]. ok is false when two adjacent key times
// are equal or a factor is not finite.
func tangentScales[S Float](x, a, b, y S) (s0, s1 S, ok bool) {
	if x == a || a == b || b == y {
		return nan[S](), nan[S](), false
	}
	ops := simdops.For[S]()
	s0 = mathutil.TangentScale(a, b, x, b)
	s1 = mathutil.TangentScale(a, b, a, y)
	return s0, s1, finite(ops, s0) && finite(ops, s1)
}

func finite[S Float](ops *simdops.Ops[S], v S) bool {
	return !ops.IsNaN(v) && !ops.IsInf(v, 0)
}

func nan[S Float]() S {
	var zero S
	return zero / zero
}
