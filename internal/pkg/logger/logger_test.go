package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("production stage honours level", func(t *testing.T) {
		log, err := New("prod", "warn")
		require.NoError(t, err)

		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("development stage defaults to debug", func(t *testing.T) {
		log, err := New("dev", "")
		require.NoError(t, err)

		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		_, err := New("dev", "loud")
		assert.Error(t, err)
	})
}
