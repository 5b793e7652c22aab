package interpolate

import (
	"fmt"
	"strings"
)

// Mode selects an interpolation operation at run time.
type Mode int

const (
	// ModeStep holds the first value until the threshold, then jumps to the second.
	ModeStep Mode = iota

	// ModeLinear blends two values with Lerp.
	ModeLinear

	// ModeCosine blends two values with an ease-in/ease-out curve.
	ModeCosine

	// ModeCatmullRom evaluates the cubic Hermite segment between the middle
	// two of four timed keys.
	ModeCatmullRom

	// ModeQuadraticBezier evaluates a Bezier curve over three control points.
	ModeQuadraticBezier

	// ModeCubicBezier evaluates a Bezier curve over four control points.
	ModeCubicBezier

	// ModeCubicBezierMirrored evaluates a cubic Bezier with the trailing
	// handle reflected through the end point.
	ModeCubicBezierMirrored
)

var modeNames = [...]string{
	ModeStep:                "step",
	ModeLinear:              "linear",
	ModeCosine:              "cosine",
	ModeCatmullRom:          "catmull-rom",
	ModeQuadraticBezier:     "quadratic-bezier",
	ModeCubicBezier:         "cubic-bezier",
	ModeCubicBezierMirrored: "cubic-bezier-mirrored",
}

// Alternative spellings accepted by ParseMode.
var modeAliases = map[string]Mode{
	"lerp":       ModeLinear,
	"hermite":    ModeCatmullRom,
	"catmullrom": ModeCatmullRom,
	"quadratic":  ModeQuadraticBezier,
	"cubic":      ModeCubicBezier,
	"mirrored":   ModeCubicBezierMirrored,
}

// Modes returns every defined mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, len(modeNames))
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ControlPoints returns the number of keys Evaluate expects for the mode,
// or 0 for an unknown mode.
func (m Mode) ControlPoints() int {
	switch m {
	case ModeStep, ModeLinear, ModeCosine:
		return twoPointKeys
	case ModeQuadraticBezier:
		return threePointKeys
	case ModeCatmullRom, ModeCubicBezier, ModeCubicBezierMirrored:
		return fourPointKeys
	default:
		return 0
	}
}

// ParseMode returns the mode with the given name. Names are case
// insensitive and underscores may stand in for hyphens.
func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Evaluate applies the operation selected by mode to keys at t.
//
// The number of keys must equal mode.ControlPoints(). Only ModeCatmullRom
// reads the key times; the other modes use the key values in order as
// control points. threshold is used by ModeStep only.
func Evaluate[S Float, V any](ip Interpolator[S, V], mode Mode, t, threshold S, keys []Key[S, V]) (V, error) {
	var zero V

	need := mode.ControlPoints()
	if need == 0 {
		return zero, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if len(keys) != need {
		return zero, fmt.Errorf("%w: %s needs %d keys, got %d", ErrControlPoints, mode, need, len(keys))
	}

	switch mode {
	case ModeStep:
		return ip.Step(t, threshold, keys[0].Value, keys[1].Value), nil
	case ModeLinear:
		return ip.Lerp(t, keys[0].Value, keys[1].Value), nil
	case ModeCosine:
		return ip.Cosine(t, keys[0].Value, keys[1].Value), nil
	case ModeCatmullRom:
		return ip.CubicHermite(t, keys[0], keys[1], keys[2], keys[3]), nil
	case ModeQuadraticBezier:
		return ip.QuadraticBezier(t, keys[0].Value, keys[1].Value, keys[2].Value), nil
	case ModeCubicBezier:
		return ip.CubicBezier(t, keys[0].Value, keys[1].Value, keys[2].Value, keys[3].Value), nil
	default:
		return ip.CubicBezierMirrored(t, keys[0].Value, keys[1].Value, keys[2].Value, keys[3].Value), nil
	}
}
