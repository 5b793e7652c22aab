// Package interpolate provides one interpolation contract for vectors and
// unit rotations in pure Go.
//
// The same seven operations work on additive values (2D/3D/4D points,
// colors, dense channel vectors) and on unit quaternions. The caller picks a
// value type; the realization behind it follows from the type at compile
// time.
//
// # Features
//
//   - Step, linear, cosine-eased, cubic Hermite, quadratic Bezier, cubic
//     Bezier and mirrored cubic Bezier interpolation
//   - Generic over float32 and float64 precision
//   - Shortest-arc slerp for rotations, including spherical Bezier and
//     rotation Hermite splines that stay unit length
//   - Exact endpoints: every operation returns its first value at t = 0 and
//     its last value at t = 1
//   - Optional SIMD acceleration for dense channel vectors via
//     github.com/tphakala/simd
//   - Pure functions with no allocation for the geom value types
//
// # Quick Start
//
// Use one of the pre-instantiated interpolators:
//
//	a := geom.NewVec3(0.0, 0.0, 0.0)
//	b := geom.NewVec3(10.0, 0.0, 0.0)
//	mid := interpolate.Vec3F64.Lerp(0.5, a, b) // (5, 0, 0)
//
//	q0 := geom.IdentityQuat[float64]()
//	q1 := geom.QuatFromAxisAngle(geom.NewVec3(0.0, 0.0, 1.0), math.Pi/2)
//	half := interpolate.QuatF64.Lerp(0.5, q0, q1) // 45° about Z
//
// Any type with Add, Sub and Scale methods works through [Vectors]:
//
//	ip := interpolate.Vectors[float32, MyColor]()
//
// # Realizations
//
//   - [VectorSpace]: affine combinations. Lerp is a·(1-t) + b·t and the
//     Bezier variants use De Casteljau reduction over Lerp.
//   - [RotationGroup]: every mix is a slerp. The Hermite segment is the
//     spherical cubic Bezier whose handles sit one third of a tangent from
//     each end, which keeps the result on the unit sphere. The mirrored
//     Bezier reflects its handle on the raw quaternion components and
//     renormalizes.
//   - [Channels]: component-wise interpolation of []float32 or []float64
//     using batch kernels.
//
// # Cubic Hermite
//
// [Interpolator.CubicHermite] takes four timed keys x, a, b, y and evaluates
// the segment from a to b. Tangents are finite differences over the
// neighbours, scaled to the segment's time span, so chained segments meet
// at shared keys even with uneven key spacing. Key times must be strictly
// increasing; equal adjacent times give NaN components rather than a
// plausible-looking value.
//
// # Run-time Mode Selection
//
// [Mode] names each operation and [Evaluate] dispatches on it, checking the
// number of keys:
//
//	mode, err := interpolate.ParseMode("catmull-rom")
//	...
//	v, err := interpolate.Evaluate(interpolate.Vec2F64, mode, 0.25, 0, keys)
//
// # Thread Safety
//
// All interpolators are stateless values. Every operation is safe for
// concurrent use by multiple goroutines.
package interpolate
