package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interpolate "github.com/tphakala/go-interpolate"
	"github.com/tphakala/go-interpolate/geom"
)

func TestGetMaxValue(t *testing.T) {
	tests := []struct {
		bits int
		want float64
	}{
		{16, maxInt16},
		{24, maxInt24},
		{32, maxInt32},
		{8, maxInt16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getMaxValue(tt.bits), "bits=%d", tt.bits)
	}
}

func TestToSample(t *testing.T) {
	assert.Equal(t, 0, toSample(0, maxInt16))
	assert.Equal(t, 16383, toSample(0.5, maxInt16))
	assert.Equal(t, 32767, toSample(2, maxInt16), "clamps high")
	assert.Equal(t, -32767, toSample(-3, maxInt16), "clamps low")
	assert.Equal(t, 0, toSample(math.NaN(), maxInt16), "NaN is silence")
}

func TestInterleaveInto(t *testing.T) {
	t.Run("mono", func(t *testing.T) {
		dst := make([]int, 3)
		n := interleaveInto([][]float64{{-1, 0, 1}}, dst, maxInt16)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int{-32767, 0, 32767}, dst)
	})

	t.Run("three_channels", func(t *testing.T) {
		dst := make([]int, 6)
		n := interleaveInto([][]float32{{1, -1}, {0, 0}, {-1, 1}}, dst, maxInt16)
		assert.Equal(t, 6, n)
		assert.Equal(t, []int{32767, 0, -32767, -32767, 0, 32767}, dst)
	})

	t.Run("short_destination", func(t *testing.T) {
		assert.Equal(t, 0, interleaveInto([][]float64{{1, 1}, {1, 1}}, make([]int, 3), maxInt16))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, interleaveInto[float64](nil, nil, maxInt16))
	})
}

func TestQuantizeInto(t *testing.T) {
	dst := make([]int, 4)
	assert.Equal(t, 4, quantizeInto([]float64{0.25, -0.25, 1.5, -1.5}, dst, maxInt24))
	assert.Equal(t, []int{2097151, -2097151, 8388607, -8388607}, dst)
	assert.Equal(t, 0, quantizeInto([]float64{1, 1}, make([]int, 1), maxInt16))
}

func TestRenderBuffers_QuantizeStereo(t *testing.T) {
	cfg := renderConfig{freq: 1, rate: 8, bits: 16, gain: 0.5, frames: 2}
	bufs := newRenderBuffers[float64](stereoChannels, cfg)
	copy(bufs.channelBufs[0], []float64{1, -1})
	copy(bufs.channelBufs[1], []float64{0, 1})

	n := bufs.quantize(2)
	require.Equal(t, 4, n)
	assert.Equal(t, []int{16383, 0, -16383, 16383}, bufs.outputIntBuf[:n])
	assert.Equal(t, 2, bufs.intBuffer.Format.NumChannels)
	assert.Equal(t, 8, bufs.intBuffer.Format.SampleRate)
}

func TestRenderBuffers_QuantizeMonoPartialBlock(t *testing.T) {
	cfg := renderConfig{freq: 1, rate: 8, bits: 16, gain: 1, frames: 4}
	bufs := newRenderBuffers[float32](monoChannels, cfg)
	copy(bufs.channelBufs[0], []float32{1, -1, 1, -1})

	n := bufs.quantize(3)
	require.Equal(t, 3, n)
	assert.Equal(t, []int{32767, -32767, 32767}, bufs.outputIntBuf[:n])
}

func TestWaveSource_Phase(t *testing.T) {
	w := &waveSource[float64, geom.Vec2F64]{cyclesPerFrame: 0.125}
	assert.Equal(t, 0.0, w.phase(0))
	assert.Equal(t, 0.5, w.phase(4))
	assert.Equal(t, 0.0, w.phase(8))
	assert.Equal(t, 0.875, w.phase(15))
}

func TestWaveSource_FillStereo(t *testing.T) {
	keys := interpolate.UniformKeys[float64](geom.NewVec2(-1.0, 1.0), geom.NewVec2(1.0, -1.0))
	w := &waveSource[float64, geom.Vec2F64]{
		ip:             interpolate.Vec2F64,
		mode:           interpolate.ModeLinear,
		keys:           keys,
		cyclesPerFrame: 0.25,
		split:          splitStereo[float64],
	}

	dst := [][]float64{make([]float64, 4), make([]float64, 4)}
	require.NoError(t, w.fill(dst, 0, 4))
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5}, dst[0])
	assert.Equal(t, []float64{1, 0.5, 0, -0.5}, dst[1])
}

func TestWaveSource_FillErrors(t *testing.T) {
	w := &waveSource[float64, []float64]{
		ip:             interpolate.ChannelsF64,
		mode:           interpolate.ModeCubicBezier,
		keys:           interpolate.UniformKeys[float64]([]float64{0}, []float64{1}),
		cyclesPerFrame: 0.25,
		split:          splitChannels[float64],
	}
	require.ErrorIs(t, w.fill([][]float64{make([]float64, 1)}, 0, 1), interpolate.ErrControlPoints)
}

func TestRenderConfig_Validate(t *testing.T) {
	valid := renderConfig{freq: 440, rate: 48000, bits: 16, gain: 1, frames: 10}
	require.NoError(t, valid.validate())

	tests := []struct {
		name   string
		mutate func(*renderConfig)
	}{
		{"zero_freq", func(c *renderConfig) { c.freq = 0 }},
		{"nan_freq", func(c *renderConfig) { c.freq = math.NaN() }},
		{"zero_rate", func(c *renderConfig) { c.rate = 0 }},
		{"bits_8", func(c *renderConfig) { c.bits = 8 }},
		{"no_frames", func(c *renderConfig) { c.frames = 0 }},
		{"nan_gain", func(c *renderConfig) { c.gain = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			require.ErrorIs(t, c.validate(), errInvalidConfig)
		})
	}
}

func TestFramesFor(t *testing.T) {
	assert.Equal(t, 16, framesFor(0.002, 8000))
	assert.Equal(t, 48000, framesFor(1, 48000))
	assert.Equal(t, 0, framesFor(0, 48000))
}

func TestProgressTracker(t *testing.T) {
	p := newProgressTracker(100)
	p.reportIfNeeded(5)
	assert.Equal(t, 0, p.lastProgress)
	p.reportIfNeeded(25)
	assert.Equal(t, 25, p.lastProgress)

	zero := newProgressTracker(0)
	zero.reportIfNeeded(10)
	assert.Equal(t, 0, zero.lastProgress)
}
