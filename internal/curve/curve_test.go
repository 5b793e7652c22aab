package curve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/geom"
	"github.com/tphakala/go-interpolate/internal/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "curve.toml", `
kind = "vec2"
mode = "catmull-rom"
samples = 3

[[keys]]
t = 0.0
value = [0.0, 0.0]

[[keys]]
t = 1.0
value = [1.0, 2.0]

[[keys]]
t = 3.0
value = [3.0, 1.0]

[[keys]]
t = 4.0
value = [4.0, 0.0]
`)

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, KindVec2, spec.Kind)
	assert.Equal(t, "catmull-rom", spec.Mode)
	assert.Equal(t, 3, spec.Samples)
	assert.Equal(t, Precision64, spec.Precision, "default precision")
	assert.InDelta(t, DefaultThreshold, spec.Threshold, testutil.DefaultTolerance)
	require.Len(t, spec.Keys, 4)
	require.NotNil(t, spec.Keys[2].T)
	assert.Equal(t, 3.0, *spec.Keys[2].T)
	assert.Equal(t, []float64{3, 1}, spec.Keys[2].Value)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "curve.yaml", `
kind: quat
precision: 32
mode: linear
samples: 2
keys:
  - axis: [0, 0, 1]
    angle: 0
  - axis: [0, 0, 1]
    angle: 90
`)

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, KindQuat, spec.Kind)
	assert.Equal(t, Precision32, spec.Precision)
	require.Len(t, spec.Keys, 2)
	assert.Equal(t, []float64{0, 0, 1}, spec.Keys[1].Axis)
	assert.Equal(t, 90.0, spec.Keys[1].Angle)
	assert.Nil(t, spec.Keys[1].T)
	assert.Equal(t, 1.0, spec.Keys[1].Time(1))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/curve.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read curve file")

	_, err = Load(writeFile(t, "curve.json", "{}"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "bad.toml", "kind = ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	_, err = Load(writeFile(t, "bad.yml", "keys: {"))
	require.Error(t, err)
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("0,0,0; 10, 0, 0 ;", KindVec3)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, []float64{10, 0, 0}, keys[1].Value)

	keys, err = ParseKeys("0,0,1,45", KindQuat)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, []float64{0, 0, 1}, keys[0].Axis)
	assert.Equal(t, 45.0, keys[0].Angle)

	keys, err = ParseKeys("", KindVec2)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = ParseKeys("1,x", KindVec2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key 0")
}

func TestSpec_Validate(t *testing.T) {
	base := func() *Spec {
		s := Default()
		s.Kind = KindVec2
		s.Keys = []Key{{Value: []float64{0, 0}}, {Value: []float64{1, 1}}}
		return s
	}

	mode, err := base().Validate()
	require.NoError(t, err)
	assert.Equal(t, interpolate.ModeLinear, mode)

	tests := []struct {
		name   string
		mutate func(*Spec)
		target error
	}{
		{"unknown_mode", func(s *Spec) { s.Mode = "spline" }, interpolate.ErrUnknownMode},
		{"bad_precision", func(s *Spec) { s.Precision = 16 }, ErrInvalid},
		{"no_samples", func(s *Spec) { s.Samples = 0 }, ErrInvalid},
		{"key_count", func(s *Spec) { s.Mode = "cubic-bezier" }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			_, err := s.Validate()
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSpec_ApplyTimes(t *testing.T) {
	s := Default()
	s.Keys = []Key{{Value: []float64{0}}, {Value: []float64{1}}}

	require.ErrorIs(t, s.ApplyTimes([]float64{0}), ErrInvalid)
	require.NoError(t, s.ApplyTimes([]float64{0, 2}))
	assert.Equal(t, 2.0, s.Keys[1].Time(1))
}

func TestBuildKeys(t *testing.T) {
	s := Default()
	two := 2.5
	s.Keys = []Key{{Value: []float64{1, 2}}, {T: &two, Value: []float64{3, 4}}}

	keys, err := BuildKeys[float32](s, VectorValue(2, geom.Vec2FromElems[float32]))
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, float32(0), keys[0].T)
	assert.Equal(t, float32(2.5), keys[1].T)
	assert.Equal(t, geom.NewVec2[float32](3, 4), keys[1].Value)

	_, err = BuildKeys[float64](s, VectorValue(3, geom.Vec3FromElems[float64]))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "key 0")
}

func TestQuatValue(t *testing.T) {
	q, err := QuatValue[float64](Key{Axis: []float64{0, 0, 2}, Angle: 90})
	require.NoError(t, err)
	_, angle := q.AxisAngle()
	assert.InDelta(t, 1.5707963267948966, angle, testutil.Float64Tolerance)

	q, err = QuatValue[float64](Key{Value: []float64{0, 0, 0, 2}})
	require.NoError(t, err)
	assert.Equal(t, geom.IdentityQuat[float64](), q)

	_, err = QuatValue[float32](Key{Value: []float64{1, 2}})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestChannelValue(t *testing.T) {
	build := ChannelValue[float32](3)
	v, err := build(Key{Value: []float64{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, v)

	_, err = build(Key{Value: []float64{1}})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ChannelValue[float64](0)(Key{})
	require.ErrorIs(t, err, ErrInvalid)
}
