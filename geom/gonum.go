package geom

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR2 converts v to a gonum r2.Vec.
func ToR2(v Vec2F64) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// FromR2 converts a gonum r2.Vec to a Vec2.
func FromR2(v r2.Vec) Vec2F64 {
	return Vec2F64{X: v.X, Y: v.Y}
}

// ToR3 converts v to a gonum r3.Vec.
func ToR3(v Vec3F64) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts a gonum r3.Vec to a Vec3.
func FromR3(v r3.Vec) Vec3F64 {
	return Vec3F64{X: v.X, Y: v.Y, Z: v.Z}
}

// ToNumber converts q to a gonum quaternion. W maps to the real part.
func ToNumber(q QuatF64) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// FromNumber converts a gonum quaternion to a Quat.
func FromNumber(n quat.Number) QuatF64 {
	return QuatF64{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}
