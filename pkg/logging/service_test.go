package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorfGoesThroughLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core).Sugar()
	t.Cleanup(func() { log = previous })

	Errorf("Input file not found: %s", "missing.csv")
	Warnf("archive skipped")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Input file not found: missing.csv", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestLoggerFallsBackWithoutInit(t *testing.T) {
	previous := log
	log = nil
	t.Cleanup(func() { log = previous })

	assert.NotPanics(t, func() { Infof("no init") })
	assert.NotNil(t, GetSugaredLogger())
}

func TestInit(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Init(false))
	require.NoError(t, Init(true))
}
