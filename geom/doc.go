// Package geom provides the small vector and quaternion types consumed by the
// interpolation contract.
//
// All types are generic over the scalar precision ([Float]: float32 or
// float64) and are plain values: methods take value receivers and return new
// values, so they can be shared across goroutines freely.
//
//   - [Vec2], [Vec3], [Vec4]: additive vector types closed under Add, Sub and Scale.
//   - [Quat]: a rotation quaternion with Mul, Conjugate, Normalize and Slerp.
//
// [Quat] deliberately has no Add, Sub or Scale methods. Component-wise
// arithmetic does not preserve unit length, and leaving it off the method set
// keeps quaternions from satisfying the vector constraint used for linear
// blending.
//
// Aliases such as [Vec3F32] and [QuatF64] name the common instantiations.
// Float64 values convert to and from gonum's r2.Vec, r3.Vec and quat.Number.
package geom
