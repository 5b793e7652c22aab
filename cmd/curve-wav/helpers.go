package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/geom"
	"github.com/tphakala/go-interpolate/internal/curve"
	"github.com/tphakala/go-interpolate/internal/log"
	"github.com/tphakala/go-interpolate/internal/simdops"
)

var errInvalidConfig = errors.New("invalid render settings")

// renderConfig holds the output settings.
type renderConfig struct {
	freq   float64
	rate   int
	bits   int
	gain   float64
	frames int
}

func (c renderConfig) validate() error {
	switch {
	case c.freq <= 0 || math.IsInf(c.freq, 0) || math.IsNaN(c.freq):
		return fmt.Errorf("%w: frequency must be positive, got %v", errInvalidConfig, c.freq)
	case c.rate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", errInvalidConfig, c.rate)
	case c.bits != bitsPerSample16 && c.bits != bitsPerSample24 && c.bits != bitsPerSample32:
		return fmt.Errorf("%w: bit depth must be 16, 24 or 32, got %d", errInvalidConfig, c.bits)
	case c.frames < 1:
		return fmt.Errorf("%w: duration is shorter than one frame", errInvalidConfig)
	case math.IsNaN(c.gain):
		return fmt.Errorf("%w: gain is NaN", errInvalidConfig)
	}
	return nil
}

// framesFor converts a duration in seconds to a frame count at rate.
func framesFor(seconds float64, rate int) int {
	return int(math.Round(seconds * float64(rate)))
}

// renderStats reports what writeCurveWAV produced.
type renderStats struct {
	channels int
	frames   int
	elapsed  time.Duration
}

// frameSource fills per-channel buffers with n frames starting at frame start.
type frameSource[S interpolate.Float] interface {
	fill(dst [][]S, start int64, n int) error
}

// waveSource evaluates one period of a keyed curve per output frame.
type waveSource[S interpolate.Float, V any] struct {
	ip             interpolate.Interpolator[S, V]
	mode           interpolate.Mode
	threshold      S
	keys           []interpolate.Key[S, V]
	cyclesPerFrame float64
	split          func(v V, dst [][]S, i int)
}

// phase returns the curve parameter of frame in [0, 1).
func (w *waveSource[S, V]) phase(frame int64) S {
	_, frac := math.Modf(float64(frame) * w.cyclesPerFrame)
	return S(frac)
}

func (w *waveSource[S, V]) fill(dst [][]S, start int64, n int) error {
	for i := range n {
		v, err := interpolate.Evaluate(w.ip, w.mode, w.phase(start+int64(i)), w.threshold, w.keys)
		if err != nil {
			return err
		}
		w.split(v, dst, i)
	}
	return nil
}

func splitStereo[S interpolate.Float](v geom.Vec2[S], dst [][]S, i int) {
	dst[0][i] = v.X
	dst[1][i] = v.Y
}

func splitChannels[S interpolate.Float](v []S, dst [][]S, i int) {
	for ch := range dst {
		dst[ch][i] = v[ch]
	}
}

// writeCurveWAV renders spec at the configured frequency and writes a PCM WAV file.
func writeCurveWAV(path string, spec *curve.Spec, cfg renderConfig) (*renderStats, error) {
	mode, err := spec.Validate()
	if err != nil {
		return nil, err
	}
	if spec.Precision == curve.Precision32 {
		return writeCurveWAVAs[float32](path, spec, mode, cfg)
	}
	return writeCurveWAVAs[float64](path, spec, mode, cfg)
}

func writeCurveWAVAs[S interpolate.Float](path string, spec *curve.Spec, mode interpolate.Mode, cfg renderConfig) (*renderStats, error) {
	cyclesPerFrame := cfg.freq / float64(cfg.rate)
	threshold := S(spec.Threshold)

	var (
		src      frameSource[S]
		channels int
	)
	switch spec.Kind {
	case curve.KindVec2:
		keys, err := curve.BuildKeys[S](spec, curve.VectorValue(stereoChannels, geom.Vec2FromElems[S]))
		if err != nil {
			return nil, err
		}
		src = &waveSource[S, geom.Vec2[S]]{
			ip:             interpolate.VectorSpace[S, geom.Vec2[S]]{},
			mode:           mode,
			threshold:      threshold,
			keys:           keys,
			cyclesPerFrame: cyclesPerFrame,
			split:          splitStereo[S],
		}
		channels = stereoChannels
	case curve.KindChannels:
		if len(spec.Keys) > 0 {
			channels = len(spec.Keys[0].Value)
		}
		keys, err := curve.BuildKeys[S](spec, curve.ChannelValue[S](channels))
		if err != nil {
			return nil, err
		}
		src = &waveSource[S, []S]{
			ip:             interpolate.Channels[S]{},
			mode:           mode,
			threshold:      threshold,
			keys:           keys,
			cyclesPerFrame: cyclesPerFrame,
			split:          splitChannels[S],
		}
	default:
		return nil, fmt.Errorf("%w: kind %q cannot be rendered as audio", curve.ErrInvalid, spec.Kind)
	}

	start := time.Now()
	if err := encodeWAV(path, cfg, channels, src); err != nil {
		return nil, err
	}
	return &renderStats{channels: channels, frames: cfg.frames, elapsed: time.Since(start)}, nil
}

// encodeWAV pulls cfg.frames frames from src block by block and writes them to path.
func encodeWAV[S interpolate.Float](path string, cfg renderConfig, channels int, src frameSource[S]) (err error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outputFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	encoder := wav.NewEncoder(outputFile, cfg.rate, cfg.bits, channels, wavFormatPCM)
	bufs := newRenderBuffers[S](channels, cfg)
	progress := newProgressTracker(int64(cfg.frames))

	for done := 0; done < cfg.frames; done += blockFrames {
		n := min(blockFrames, cfg.frames-done)
		if err := src.fill(bufs.channelBufs, int64(done), n); err != nil {
			return err
		}
		bufs.intBuffer.Data = bufs.outputIntBuf[:bufs.quantize(n)]
		if err := encoder.Write(bufs.intBuffer); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
		progress.reportIfNeeded(int64(done + n))
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// renderBuffers holds all preallocated buffers for one block.
type renderBuffers[S interpolate.Float] struct {
	ops          *simdops.Ops[S]
	intBuffer    *audio.IntBuffer
	channelBufs  [][]S
	blockViews   [][]S
	interleaved  []S
	outputIntBuf []int
	gain         S
	maxVal       float64
}

// newRenderBuffers creates and preallocates all processing buffers.
func newRenderBuffers[S interpolate.Float](channels int, cfg renderConfig) *renderBuffers[S] {
	frames := min(blockFrames, cfg.frames)

	channelBufs := make([][]S, channels)
	for ch := range channels {
		channelBufs[ch] = make([]S, frames)
	}

	var interleaved []S
	if channels == stereoChannels {
		interleaved = make([]S, frames*stereoChannels)
	}

	return &renderBuffers[S]{
		ops: simdops.For[S](),
		intBuffer: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: cfg.rate},
			SourceBitDepth: cfg.bits,
		},
		channelBufs:  channelBufs,
		blockViews:   make([][]S, channels),
		interleaved:  interleaved,
		outputIntBuf: make([]int, frames*channels),
		gain:         S(cfg.gain),
		maxVal:       getMaxValue(cfg.bits),
	}
}

// quantize applies the gain to the first n frames of every channel and
// converts them to interleaved integer samples. It returns the number of
// samples written to outputIntBuf.
func (b *renderBuffers[S]) quantize(n int) int {
	block := b.blockViews
	for ch, buf := range b.channelBufs {
		block[ch] = buf[:n]
		b.ops.Scale(block[ch], block[ch], b.gain)
	}

	if len(block) == stereoChannels {
		interleaved := b.interleaved[:n*stereoChannels]
		b.ops.Interleave2(interleaved, block[0], block[1])
		return quantizeInto(interleaved, b.outputIntBuf, b.maxVal)
	}
	return interleaveInto(block, b.outputIntBuf, b.maxVal)
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// toSample clamps x to [-1, 1] and scales it to an integer sample.
// NaN quantizes to silence.
func toSample(x, maxVal float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1.0:
		x = 1.0
	case x < -1.0:
		x = -1.0
	}
	return int(x * maxVal)
}

// quantizeInto converts already interleaved float samples into dst.
// Returns the number of elements written.
func quantizeInto[S interpolate.Float](src []S, dst []int, maxVal float64) int {
	if len(dst) < len(src) {
		return 0
	}
	for i, s := range src {
		dst[i] = toSample(float64(s), maxVal)
	}
	return len(src)
}

// interleaveInto converts per-channel float slices into a preallocated int buffer.
// Returns the number of elements written.
func interleaveInto[S interpolate.Float](channels [][]S, dst []int, maxVal float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	totalLen := samplesPerChannel * numChannels
	if len(dst) < totalLen {
		return 0
	}

	// Fast path for mono
	if numChannels == monoChannels {
		return quantizeInto(channels[0], dst, maxVal)
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			dst[base+ch] = toSample(float64(channels[ch][i]), maxVal)
		}
	}
	return totalLen
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int64
	lastProgress int
}

func newProgressTracker(totalFrames int64) *progressTracker {
	return &progressTracker{totalFrames: totalFrames}
}

// reportIfNeeded logs progress at debug level when a threshold is crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int64) {
	if p.totalFrames == 0 {
		return
	}

	progress := int(float64(currentFrames) / float64(p.totalFrames) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Get().Debug("progress", zap.Int("percent", progress))
		p.lastProgress = progress
	}
}
