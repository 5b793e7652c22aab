// Package curve reads curve descriptions for the command-line tools.
//
// A curve is a value kind, a scalar precision, an interpolation mode, a
// number of samples and the control points. It comes from command-line
// flags or from a TOML or YAML file.
package curve

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/geom"
)

// Value kinds.
const (
	KindVec2     = "vec2"
	KindVec3     = "vec3"
	KindVec4     = "vec4"
	KindQuat     = "quat"
	KindChannels = "channels"
)

// Scalar precisions in bits.
const (
	Precision32 = 32
	Precision64 = 64
)

// Defaults for fields a curve file leaves out.
const (
	DefaultKind      = KindVec3
	DefaultPrecision = Precision64
	DefaultMode      = "linear"
	DefaultSamples   = 11
	DefaultThreshold = 0.5
)

var (
	// ErrUnsupportedFormat indicates a curve file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported curve file format")

	// ErrInvalid indicates a curve that cannot be evaluated.
	ErrInvalid = errors.New("invalid curve")
)

// Spec describes one evaluation over a uniform parameter grid.
type Spec struct {
	Kind      string  `toml:"kind" yaml:"kind"`
	Precision int     `toml:"precision" yaml:"precision"`
	Mode      string  `toml:"mode" yaml:"mode"`
	Samples   int     `toml:"samples" yaml:"samples"`
	Threshold float64 `toml:"threshold" yaml:"threshold"`
	Keys      []Key   `toml:"keys" yaml:"keys"`
}

// Key is one control point. Rotations are given either as four raw
// components (x, y, z, w) or as an axis and an angle in degrees.
type Key struct {
	T     *float64  `toml:"t,omitempty" yaml:"t,omitempty"`
	Value []float64 `toml:"value,omitempty" yaml:"value,omitempty"`
	Axis  []float64 `toml:"axis,omitempty" yaml:"axis,omitempty"`
	Angle float64   `toml:"angle,omitempty" yaml:"angle,omitempty"`
}

// Time returns the key time, defaulting to the key index.
func (k Key) Time(index int) float64 {
	if k.T != nil {
		return *k.T
	}
	return float64(index)
}

// Default returns a Spec holding the default settings and no keys.
func Default() *Spec {
	return &Spec{
		Kind:      DefaultKind,
		Precision: DefaultPrecision,
		Mode:      DefaultMode,
		Samples:   DefaultSamples,
		Threshold: DefaultThreshold,
	}
}

// Load reads a curve file; the format follows the file extension.
// Fields missing from the file keep their defaults.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve file: %w", err)
	}

	spec := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, spec)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, spec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return spec, nil
}

// ParseKeys parses control points written as comma-separated components,
// one key per semicolon-separated group: "0,0,0; 10,0,0". For rotations a
// group of four numbers is an axis and an angle in degrees: "0,0,1,90".
func ParseKeys(s, kind string) ([]Key, error) {
	var keys []Key
	for i, group := range strings.Split(s, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		values, err := ParseFloats(group)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		if kind == KindQuat && len(values) == axisDims+1 {
			keys = append(keys, Key{Axis: values[:axisDims], Angle: values[axisDims]})
			continue
		}
		keys = append(keys, Key{Value: values})
	}
	return keys, nil
}

// ParseFloats parses a comma-separated list of numbers.
func ParseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ApplyTimes assigns explicit key times in order.
func (s *Spec) ApplyTimes(times []float64) error {
	if len(times) != len(s.Keys) {
		return fmt.Errorf("%w: %d times for %d keys", ErrInvalid, len(times), len(s.Keys))
	}
	for i := range s.Keys {
		s.Keys[i].T = &times[i]
	}
	return nil
}

// Validate checks the fields that do not depend on the value kind and
// returns the parsed mode.
func (s *Spec) Validate() (interpolate.Mode, error) {
	mode, err := interpolate.ParseMode(s.Mode)
	if err != nil {
		return mode, err
	}
	if s.Precision != Precision32 && s.Precision != Precision64 {
		return mode, fmt.Errorf("%w: precision must be %d or %d, got %d", ErrInvalid, Precision32, Precision64, s.Precision)
	}
	if s.Samples < 1 {
		return mode, fmt.Errorf("%w: samples must be at least 1", ErrInvalid)
	}
	if len(s.Keys) != mode.ControlPoints() {
		return mode, fmt.Errorf("%w: %s needs %d keys, got %d", ErrInvalid, mode, mode.ControlPoints(), len(s.Keys))
	}
	return mode, nil
}

// BuildKeys converts the control points with build, keeping their times.
func BuildKeys[S interpolate.Float, V any](s *Spec, build func(Key) (V, error)) ([]interpolate.Key[S, V], error) {
	keys := make([]interpolate.Key[S, V], len(s.Keys))
	for i, k := range s.Keys {
		v, err := build(k)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		keys[i] = interpolate.NewKey(S(k.Time(i)), v)
	}
	return keys, nil
}

// VectorValue returns a builder for vectors with exactly dims components.
func VectorValue[S interpolate.Float, V any](dims int, fromElems func([]S) V) func(Key) (V, error) {
	return func(k Key) (V, error) {
		if len(k.Value) != dims {
			var zero V
			return zero, fmt.Errorf("%w: want %d components, got %d", ErrInvalid, dims, len(k.Value))
		}
		return fromElems(Convert[S](k.Value)), nil
	}
}

// QuatValue builds a unit quaternion from an axis and angle in degrees or
// from four raw components in x, y, z, w order.
func QuatValue[S interpolate.Float](k Key) (geom.Quat[S], error) {
	switch {
	case len(k.Axis) == axisDims:
		a := geom.NewVec3(S(k.Axis[0]), S(k.Axis[1]), S(k.Axis[2]))
		return geom.QuatFromAxisAngle(a, S(k.Angle*math.Pi/degreesPerHalfTurn)), nil
	case len(k.Value) == quatDims:
		return geom.QuatFromElems(Convert[S](k.Value)).Normalize(), nil
	default:
		return geom.Quat[S]{}, fmt.Errorf("%w: rotation needs an axis and angle or %d components", ErrInvalid, quatDims)
	}
}

// ChannelValue returns a builder for channel vectors with exactly dims components.
func ChannelValue[S interpolate.Float](dims int) func(Key) ([]S, error) {
	return func(k Key) ([]S, error) {
		if dims == 0 || len(k.Value) != dims {
			return nil, fmt.Errorf("%w: want %d channels, got %d", ErrInvalid, dims, len(k.Value))
		}
		return Convert[S](k.Value), nil
	}
}

// Convert converts values to precision S.
func Convert[S interpolate.Float](values []float64) []S {
	out := make([]S, len(values))
	for i, v := range values {
		out[i] = S(v)
	}
	return out
}
