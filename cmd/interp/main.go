// Command interp evaluates an interpolation mode over a uniform parameter grid.
//
// Usage:
//
//	interp -kind vec3 -mode linear -keys "0,0,0; 10,0,0"
//	interp -kind quat -mode cosine -samples 5 -keys "0,0,1,0; 0,0,1,90"
//	interp -kind vec2 -mode catmull-rom -times "0,1,3,4" -keys "0,0; 1,2; 3,1; 4,0"
//	interp -curve path.toml                   # or path.yaml
//	interp -modes                             # list modes
//
// Each output line holds the parameter t followed by the value components.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/internal/curve"
	"github.com/tphakala/go-interpolate/internal/log"
	"github.com/tphakala/go-interpolate/internal/simdops"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "interp:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("interp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	kind := fs.String("kind", curve.DefaultKind, "Value kind: vec2, vec3, vec4, quat, channels")
	precision := fs.Int("precision", curve.DefaultPrecision, "Scalar precision in bits: 32 or 64")
	mode := fs.String("mode", curve.DefaultMode, "Interpolation mode (see -modes)")
	samples := fs.Int("samples", curve.DefaultSamples, "Number of evenly spaced samples from t=0 to t=1")
	threshold := fs.Float64("threshold", curve.DefaultThreshold, "Switch point for the step mode")
	keys := fs.String("keys", "", "Control points: comma-separated components, keys separated by ';'")
	times := fs.String("times", "", "Key times for catmull-rom, comma-separated (default 0,1,2,...)")
	curvePath := fs.String("curve", "", "Read the curve from a TOML or YAML file instead of flags")
	listModes := fs.Bool("modes", false, "List interpolation modes and exit")
	verbose := fs.Bool("v", false, "Verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		log.Set(true)
	}
	defer log.Flush()
	logger := log.Get()

	if *listModes {
		for _, m := range interpolate.Modes() {
			fmt.Fprintf(stdout, "%-22s %d keys\n", m, m.ControlPoints())
		}
		return nil
	}

	var spec *curve.Spec
	if *curvePath != "" {
		s, err := curve.Load(*curvePath)
		if err != nil {
			return err
		}
		spec = s
		logger.Debug("loaded curve file", zap.String("path", *curvePath))
	} else {
		parsed, err := curve.ParseKeys(*keys, *kind)
		if err != nil {
			return err
		}
		spec = &curve.Spec{
			Kind:      *kind,
			Precision: *precision,
			Mode:      *mode,
			Samples:   *samples,
			Threshold: *threshold,
			Keys:      parsed,
		}
		if *times != "" {
			ts, err := curve.ParseFloats(*times)
			if err != nil {
				return fmt.Errorf("invalid -times: %w", err)
			}
			if err := spec.ApplyTimes(ts); err != nil {
				return err
			}
		}
	}

	logger.Debug("evaluating curve",
		zap.String("kind", spec.Kind),
		zap.Int("precision", spec.Precision),
		zap.String("mode", spec.Mode),
		zap.Int("samples", spec.Samples),
		zap.Int("keys", len(spec.Keys)),
		zap.String("simd", simdops.CPUInfo()),
	)

	return render(stdout, spec)
}
