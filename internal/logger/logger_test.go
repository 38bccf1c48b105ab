package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lggr, err := New("warn")
	require.NoError(t, err)
	assert.True(t, lggr.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, lggr.Desugar().Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud")
	require.Error(t, err)
}

func TestTestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.WarnLevel)
	lggr.Infow("ignored")
	lggr.Warnw("kept", "key", "12")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "12", entry.ContextMap()["key"])
}
