package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/geom"
	"github.com/tphakala/go-interpolate/internal/curve"
)

// render evaluates spec and writes one line per sample.
func render(w io.Writer, spec *curve.Spec) error {
	mode, err := spec.Validate()
	if err != nil {
		return err
	}
	if spec.Precision == curve.Precision32 {
		return renderAs[float32](w, spec, mode)
	}
	return renderAs[float64](w, spec, mode)
}

func renderAs[S interpolate.Float](w io.Writer, spec *curve.Spec, mode interpolate.Mode) error {
	switch spec.Kind {
	case curve.KindVec2:
		return renderCurve(w, spec, mode, interpolate.VectorSpace[S, geom.Vec2[S]]{},
			curve.VectorValue(2, geom.Vec2FromElems[S]), geom.Vec2[S].Elems)
	case curve.KindVec3:
		return renderCurve(w, spec, mode, interpolate.VectorSpace[S, geom.Vec3[S]]{},
			curve.VectorValue(3, geom.Vec3FromElems[S]), geom.Vec3[S].Elems)
	case curve.KindVec4:
		return renderCurve(w, spec, mode, interpolate.VectorSpace[S, geom.Vec4[S]]{},
			curve.VectorValue(4, geom.Vec4FromElems[S]), geom.Vec4[S].Elems)
	case curve.KindQuat:
		return renderCurve(w, spec, mode, interpolate.RotationGroup[S]{},
			curve.QuatValue[S], geom.Quat[S].Elems)
	case curve.KindChannels:
		dims := 0
		if len(spec.Keys) > 0 {
			dims = len(spec.Keys[0].Value)
		}
		return renderCurve[S, []S](w, spec, mode, interpolate.Channels[S]{},
			curve.ChannelValue[S](dims), func(v []S) []S { return v })
	default:
		return fmt.Errorf("%w: unknown kind %q", curve.ErrInvalid, spec.Kind)
	}
}

func renderCurve[S interpolate.Float, V any](
	w io.Writer,
	spec *curve.Spec,
	mode interpolate.Mode,
	ip interpolate.Interpolator[S, V],
	build func(curve.Key) (V, error),
	elems func(V) []S,
) error {
	keys, err := curve.BuildKeys[S](spec, build)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	threshold := S(spec.Threshold)
	for _, t := range interpolate.Linspace[S](spec.Samples) {
		v, err := interpolate.Evaluate(ip, mode, t, threshold, keys)
		if err != nil {
			return err
		}
		writeSample(bw, float64(t), elems(v))
	}
	return bw.Flush()
}

func writeSample[S interpolate.Float](bw *bufio.Writer, t float64, elems []S) {
	var buf [32]byte
	_, _ = bw.Write(strconv.AppendFloat(buf[:0], t, 'f', paramDecimals, floatBits))
	for _, e := range elems {
		_ = bw.WriteByte('\t')
		_, _ = bw.Write(strconv.AppendFloat(buf[:0], float64(e), 'f', componentDecimals, floatBits))
	}
	_ = bw.WriteByte('\n')
}
