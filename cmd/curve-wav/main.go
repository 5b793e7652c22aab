// Command curve-wav renders a keyed curve as a periodic waveform into a WAV file.
//
// Usage:
//
//	curve-wav -mode linear -keys "-1; 1" saw.wav
//	curve-wav -mode catmull-rom -keys "0; 1; -1; 0" -freq 220 -duration 2 tone.wav
//	curve-wav -mode cosine -keys "-1,1; 1,-1" stereo.wav     # two components give stereo
//	curve-wav -curve wave.toml -bits 24 tone.wav
//
// One period of the waveform spans the curve parameter from 0 to 1. Keys with
// one component produce a mono file and keys with two a stereo file. A curve
// file of kind channels may carry any number of channels.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"go.uber.org/zap"

	"github.com/tphakala/go-interpolate/internal/curve"
	"github.com/tphakala/go-interpolate/internal/log"
	"github.com/tphakala/go-interpolate/internal/simdops"
)

var errMissingOutput = errors.New("missing output file")

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "curve-wav:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("curve-wav", flag.ContinueOnError)
	fs.SetOutput(stderr)

	mode := fs.String("mode", curve.DefaultMode, "Interpolation mode")
	keys := fs.String("keys", "", "Control points: comma-separated channel values, keys separated by ';'")
	times := fs.String("times", "", "Key times for catmull-rom, comma-separated (default 0,1,2,...)")
	curvePath := fs.String("curve", "", "Read the curve from a TOML or YAML file instead of flags")
	precision := fs.Int("precision", curve.DefaultPrecision, "Scalar precision in bits: 32 or 64")
	freq := fs.Float64("freq", defaultFreqHz, "Waveform frequency in Hz")
	duration := fs.Float64("duration", defaultDurationSec, "Output length in seconds")
	rate := fs.Int("rate", defaultSampleRate, "Output sample rate in Hz")
	bits := fs.Int("bits", bitsPerSample16, "Output bit depth: 16, 24 or 32")
	gain := fs.Float64("gain", defaultGain, "Gain applied before quantization")
	verbose := fs.Bool("v", false, "Verbose output")
	cpuprofile := fs.String("cpuprofile", "", "Write CPU profile to file (for PGO)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Usage: curve-wav [options] output.wav\n\nOptions:\n")
		fs.PrintDefaults()
		return errMissingOutput
	}
	outputPath := fs.Arg(0)

	if *verbose {
		log.Set(true)
	}
	defer log.Flush()
	logger := log.Get()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	spec, err := loadSpec(*curvePath, *keys, *times, *mode, *precision)
	if err != nil {
		return err
	}

	cfg := renderConfig{
		freq:   *freq,
		rate:   *rate,
		bits:   *bits,
		gain:   *gain,
		frames: framesFor(*duration, *rate),
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger.Debug("rendering waveform",
		zap.String("output", outputPath),
		zap.String("kind", spec.Kind),
		zap.String("mode", spec.Mode),
		zap.Int("precision", spec.Precision),
		zap.Int("keys", len(spec.Keys)),
		zap.Float64("freq", cfg.freq),
		zap.Int("rate", cfg.rate),
		zap.Int("bits", cfg.bits),
		zap.Int("frames", cfg.frames),
		zap.String("simd", simdops.CPUInfo()),
	)

	stats, err := writeCurveWAV(outputPath, spec, cfg)
	if err != nil {
		return err
	}

	logger.Info("wrote waveform",
		zap.String("output", outputPath),
		zap.Int("channels", stats.channels),
		zap.Int("frames", stats.frames),
		zap.Duration("elapsed", stats.elapsed),
	)
	return nil
}

// loadSpec reads the curve file when one is given and otherwise builds the
// curve from flags. Flag keys with two components render in stereo.
func loadSpec(path, keys, times, mode string, precision int) (*curve.Spec, error) {
	if path != "" {
		return curve.Load(path)
	}

	parsed, err := curve.ParseKeys(keys, curve.KindChannels)
	if err != nil {
		return nil, err
	}
	spec := curve.Default()
	spec.Kind = curve.KindChannels
	spec.Mode = mode
	spec.Precision = precision
	spec.Keys = parsed
	if len(parsed) > 0 && len(parsed[0].Value) == stereoChannels {
		spec.Kind = curve.KindVec2
	}

	if times != "" {
		ts, err := curve.ParseFloats(times)
		if err != nil {
			return nil, fmt.Errorf("invalid -times: %w", err)
		}
		if err := spec.ApplyTimes(ts); err != nil {
			return nil, err
		}
	}
	return spec, nil
}
