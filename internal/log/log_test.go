package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGet_DefaultIsNop(t *testing.T) {
	l := Get()
	assert.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestSet(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	Set(false)
	assert.True(t, Get().Core().Enabled(zap.InfoLevel))
	assert.False(t, Get().Core().Enabled(zap.DebugLevel))

	Set(true)
	assert.True(t, Get().Core().Enabled(zap.DebugLevel))
	Flush()
}
