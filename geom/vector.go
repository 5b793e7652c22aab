package geom

import (
	"github.com/tphakala/go-interpolate/internal/simdops"
)

// Float is the scalar constraint shared by all geom types.
type Float = simdops.Float

// Vec2 is a two-component vector.
type Vec2[S Float] struct {
	X, Y S
}

// Vec3 is a three-component vector.
type Vec3[S Float] struct {
	X, Y, Z S
}

// Vec4 is a four-component vector, also used for RGBA colors.
type Vec4[S Float] struct {
	X, Y, Z, W S
}

// Aliases for the common instantiations.
type (
	Vec2F32 = Vec2[float32]
	Vec3F32 = Vec3[float32]
	Vec4F32 = Vec4[float32]
	Vec2F64 = Vec2[float64]
	Vec3F64 = Vec3[float64]
	Vec4F64 = Vec4[float64]
)

// NewVec2 returns the vector (x, y).
func NewVec2[S Float](x, y S) Vec2[S] {
	return Vec2[S]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2[S]) Scale(s S) Vec2[S] {
	return Vec2[S]{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product v·o.
func (v Vec2[S]) Dot(o Vec2[S]) S {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2[S]) Length() S {
	return simdops.For[S]().Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2[S]) Normalize() Vec2[S] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Elems returns the components as a slice.
func (v Vec2[S]) Elems() []S {
	return []S{v.X, v.Y}
}

// Vec2FromElems builds a Vec2 from the first two elements of e.
func Vec2FromElems[S Float](e []S) Vec2[S] {
	return Vec2[S]{X: e[0], Y: e[1]}
}

// NewVec3 returns the vector (x, y, z).
func NewVec3[S Float](x, y, z S) Vec3[S] {
	return Vec3[S]{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product v·o.
func (v Vec3[S]) Dot(o Vec3[S]) S {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v×o.
func (v Vec3[S]) Cross(o Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3[S]) Length() S {
	return simdops.For[S]().Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3[S]) Normalize() Vec3[S] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Elems returns the components as a slice.
func (v Vec3[S]) Elems() []S {
	return []S{v.X, v.Y, v.Z}
}

// Vec3FromElems builds a Vec3 from the first three elements of e.
func Vec3FromElems[S Float](e []S) Vec3[S] {
	return Vec3[S]{X: e[0], Y: e[1], Z: e[2]}
}

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[S Float](x, y, z, w S) Vec4[S] {
	return Vec4[S]{X: x, Y: y, Z: z, W: w}
}

// Add returns v + o.
func (v Vec4[S]) Add(o Vec4[S]) Vec4[S] {
	return Vec4[S]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v - o.
func (v Vec4[S]) Sub(o Vec4[S]) Vec4[S] {
	return Vec4[S]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Scale returns v * s.
func (v Vec4[S]) Scale(s S) Vec4[S] {
	return Vec4[S]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Dot returns the dot product v·o.
func (v Vec4[S]) Dot(o Vec4[S]) S {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Length returns the Euclidean length of v.
func (v Vec4[S]) Length() S {
	return simdops.For[S]().Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec4[S]) Normalize() Vec4[S] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Elems returns the components as a slice.
func (v Vec4[S]) Elems() []S {
	return []S{v.X, v.Y, v.Z, v.W}
}

// Vec4FromElems builds a Vec4 from the first four elements of e.
func Vec4FromElems[S Float](e []S) Vec4[S] {
	return Vec4[S]{X: e[0], Y: e[1], Z: e[2], W: e[3]}
}
