package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-interpolate/internal/testutil"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(1.0, 2.0)
	b := NewVec2(3.0, -1.0)

	assert.Equal(t, Vec2F64{4, 1}, a.Add(b))
	assert.Equal(t, Vec2F64{-2, 3}, a.Sub(b))
	assert.Equal(t, Vec2F64{2, 4}, a.Scale(2))
	assert.InDelta(t, 1.0, a.Dot(b), testutil.DefaultTolerance)
	assert.Equal(t, []float64{1, 2}, a.Elems())
	assert.Equal(t, a, Vec2FromElems(a.Elems()))
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3[float32](1, 0, 0)
	b := NewVec3[float32](0, 1, 0)

	assert.Equal(t, Vec3F32{1, 1, 0}, a.Add(b))
	assert.Equal(t, Vec3F32{1, -1, 0}, a.Sub(b))
	assert.Equal(t, Vec3F32{0, 0, 1}, a.Cross(b))
	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, a, Vec3FromElems(a.Elems()))
}

func TestVec4_Arithmetic(t *testing.T) {
	a := NewVec4(1.0, 2.0, 3.0, 4.0)
	b := NewVec4(0.5, 0.5, 0.5, 0.5)

	assert.Equal(t, Vec4F64{1.5, 2.5, 3.5, 4.5}, a.Add(b))
	assert.Equal(t, Vec4F64{0.5, 1.5, 2.5, 3.5}, a.Sub(b))
	assert.Equal(t, Vec4F64{0.25, 0.25, 0.25, 0.25}, b.Scale(0.5))
	assert.InDelta(t, 5.0, a.Dot(b), testutil.DefaultTolerance)
	assert.Equal(t, a, Vec4FromElems(a.Elems()))
}

func TestVector_LengthAndNormalize(t *testing.T) {
	assert.InDelta(t, 5.0, NewVec2(3.0, 4.0).Length(), testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, NewVec3(1.0, 2.0, 2.0).Normalize().Length(), testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, float64(NewVec4[float32](1, 1, 1, 1).Normalize().Length()), testutil.Float32Tolerance)

	// Zero vectors stay zero
	assert.Equal(t, Vec3F64{}, Vec3F64{}.Normalize())
	assert.Equal(t, Vec2F32{}, Vec2F32{}.Normalize())
}
