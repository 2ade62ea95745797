package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewLogger(tt.level)
			assert.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}

	_, err := NewLogger("loud")
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	const key = "HOUSEHOLD_TEST_DOCUMENT_ROOT"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), "household.env")
	assert.NoError(t, os.WriteFile(path, []byte(key+"=/srv/ledger\n"), 0o644))

	assert.NoError(t, LoadEnv(path))
	assert.Equal(t, "/srv/ledger", os.Getenv(key))

	assert.Error(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	// Without a name a missing .env is not an error.
	assert.NoError(t, LoadEnv(""))
}
