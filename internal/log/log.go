// Package log holds the process-wide logger used by the commands.
// Library packages never log.
package log

import (
	"go.uber.org/zap"
)

var defaultLogger = zap.NewNop()

// Get returns the current logger. It discards everything until Set is called.
func Get() *zap.Logger {
	return defaultLogger
}

// Set installs a development console logger writing to stderr. debug selects
// the debug level instead of info.
func Set(debug bool) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	defaultLogger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// Flush flushes buffered log entries.
func Flush() {
	_ = defaultLogger.Sync()
}
