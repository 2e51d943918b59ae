package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithFile_NoFileNoStderrIsDisabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clipfetch.log")
	cfg := Config{Level: zerolog.DebugLevel, Format: "json", TimeFormat: time.RFC3339}

	logger, cleanup, err := NewWithFile(cfg, FileConfig{Path: path})
	require.NoError(t, err)
	logger.Info().Str("backend", "fake").Msg("hello")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"backend":"fake"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestLogRotator_RotatesAndKeepsBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipfetch.log")

	r, err := NewLogRotator(path, 1, 2)
	require.NoError(t, err)
	r.maxSize = 16

	tick := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte("0123456789\n"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "clipfetch.log.") {
			backups++
		}
	}
	assert.Equal(t, 2, backups)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0123456789\n", string(current))
}

func TestWithComponent(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)
	ctx := WithComponent(WithContext(context.Background(), logger), "watch")
	ctx = WithBackend(ctx, "tools")

	FromContext(ctx).Info().Msg("tick")

	assert.Contains(t, buf.String(), `"component":"watch"`)
	assert.Contains(t, buf.String(), `"backend":"tools"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CLIPFETCH_LOG_LEVEL", "debug")
	t.Setenv("CLIPFETCH_LOG_FORMAT", "json")

	assert.Equal(t, zerolog.DebugLevel, NewFromEnv().GetLevel())
}
