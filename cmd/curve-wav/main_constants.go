package main

const (
	// Frames rendered and written per encoder call
	blockFrames = 65536

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	wavFormatPCM    = 1

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Report progress every N%
	percentScale     = 100

	// CLI defaults
	defaultFreqHz      = 440.0
	defaultDurationSec = 1.0
	defaultSampleRate  = 48000
	defaultGain        = 0.8
)
