// Command analyze-hermite measures how the rotation interpolators behave
// numerically over random key sets.
//
// For every mode it reports the largest angle between a segment endpoint and
// its key, the largest deviation from unit length over the sampled
// parameters, and for catmull-rom the largest mismatch of angular velocity
// where two segments share a key.
//
// Usage:
//
//	analyze-hermite
//	analyze-hermite -trials 10000 -seed 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/geom"
)

const (
	// Sweep defaults
	defaultTrials  = 1000
	defaultSamples = 33
	defaultSeed    = 1

	// Time step of the one-sided differences at a shared key
	velocityStep = 1e-4

	// Bounds on the random gap between consecutive key times
	minKeyGap = 0.25
	maxKeyGap = 4.0
)

var errInvalidSweep = errors.New("trials must be at least 1 and samples at least 2")

// report summarizes one mode at one precision.
type report struct {
	precision   string
	mode        interpolate.Mode
	trials      int
	endpointErr float64 // radians
	normDev     float64
	c1Mismatch  float64 // radians per unit time; catmull-rom only
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "analyze-hermite:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze-hermite", flag.ContinueOnError)
	fs.SetOutput(stderr)
	trials := fs.Int("trials", defaultTrials, "Random key sets per mode")
	samples := fs.Int("samples", defaultSamples, "Parameters sampled per segment")
	seed := fs.Uint64("seed", defaultSeed, "Random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *trials < 1 || *samples < 2 {
		return errInvalidSweep
	}

	fmt.Fprintln(stdout, "=== Rotation interpolation accuracy ===")
	fmt.Fprintf(stdout, "trials=%d samples=%d seed=%d\n\n", *trials, *samples, *seed)

	reports64, err := analyze[float64](rand.New(rand.NewPCG(*seed, *seed)), *trials, *samples)
	if err != nil {
		return err
	}
	reports32, err := analyze[float32](rand.New(rand.NewPCG(*seed, *seed)), *trials, *samples)
	if err != nil {
		return err
	}
	printReports(stdout, append(reports64, reports32...))
	return nil
}

func printReports(w io.Writer, reports []report) {
	fmt.Fprintf(w, "%-9s %-22s %14s %14s %14s\n", "precision", "mode", "endpoint", "norm", "c1")
	for _, r := range reports {
		c1 := "-"
		if r.mode == interpolate.ModeCatmullRom {
			c1 = fmt.Sprintf("%.3e", r.c1Mismatch)
		}
		fmt.Fprintf(w, "%-9s %-22s %14.3e %14.3e %14s\n", r.precision, r.mode, r.endpointErr, r.normDev, c1)
	}
}

// analyze runs trials random key sets through every mode at precision S.
func analyze[S interpolate.Float](rng *rand.Rand, trials, samples int) ([]report, error) {
	precision := "float64"
	var zero S
	if _, ok := any(zero).(float32); ok {
		precision = "float32"
	}

	ip := interpolate.Rotations[S]()
	ts := interpolate.Linspace[S](samples)
	modes := interpolate.Modes()
	reports := make([]report, len(modes))

	for i, mode := range modes {
		r := report{precision: precision, mode: mode, trials: trials}
		n := mode.ControlPoints()
		for range trials {
			keys := randomKeys[S](rng, n)
			first, last := keys[0].Value, keys[n-1].Value
			if mode == interpolate.ModeCatmullRom {
				first, last = keys[1].Value, keys[2].Value
			}

			for _, t := range ts {
				q, err := interpolate.Evaluate(ip, mode, t, 0.5, keys)
				if err != nil {
					return nil, err
				}
				r.normDev = math.Max(r.normDev, math.Abs(float64(q.Length())-1))
				switch t {
				case 0:
					r.endpointErr = math.Max(r.endpointErr, float64(q.AngleTo(first)))
				case 1:
					r.endpointErr = math.Max(r.endpointErr, float64(q.AngleTo(last)))
				}
			}

			if mode == interpolate.ModeCatmullRom {
				r.c1Mismatch = math.Max(r.c1Mismatch, velocityMismatch(ip, append(keys, nextKey(rng, keys[n-1]))))
			}
		}
		reports[i] = r
	}
	return reports, nil
}

// velocityMismatch compares the one-sided angular velocities at keys[2],
// where the segment over keys[0:4] ends and the segment over keys[1:5] begins.
func velocityMismatch[S interpolate.Float](ip interpolate.Interpolator[S, geom.Quat[S]], keys []interpolate.Key[S, geom.Quat[S]]) float64 {
	h := S(velocityStep)
	shared := keys[2]
	left := ip.CubicHermite(1-h/(keys[2].T-keys[1].T), keys[0], keys[1], keys[2], keys[3])
	right := ip.CubicHermite(h/(keys[3].T-keys[2].T), keys[1], keys[2], keys[3], keys[4])

	into := left.Conjugate().Mul(shared.Value)
	out := shared.Value.Conjugate().Mul(right)
	return float64(into.AngleTo(out)) / velocityStep
}

// randomKeys returns n unit-quaternion keys with strictly increasing random times.
func randomKeys[S interpolate.Float](rng *rand.Rand, n int) []interpolate.Key[S, geom.Quat[S]] {
	keys := make([]interpolate.Key[S, geom.Quat[S]], 0, n+1)
	keys = append(keys, interpolate.NewKey(S(0), randomRotation[S](rng)))
	for len(keys) < n {
		keys = append(keys, nextKey(rng, keys[len(keys)-1]))
	}
	return keys
}

func nextKey[S interpolate.Float](rng *rand.Rand, prev interpolate.Key[S, geom.Quat[S]]) interpolate.Key[S, geom.Quat[S]] {
	gap := S(minKeyGap + rng.Float64()*(maxKeyGap-minKeyGap))
	return interpolate.NewKey(prev.T+gap, randomRotation[S](rng))
}

// randomRotation draws a rotation uniformly from the unit 3-sphere.
func randomRotation[S interpolate.Float](rng *rand.Rand) geom.Quat[S] {
	for {
		q := geom.NewQuat(S(rng.NormFloat64()), S(rng.NormFloat64()), S(rng.NormFloat64()), S(rng.NormFloat64()))
		if q.Length() > 0 {
			return q.Normalize()
		}
	}
}
