package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/segmenu/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("shown", "id", "p1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "id=p1")
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "segmenu.log")
	log, closer, err := logging.Open(path, "debug")
	require.NoError(t, err)

	log.Debug("forest loaded", "items", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "forest loaded")
	assert.Contains(t, string(data), "items=3")
}

func TestOpen_BadLevel(t *testing.T) {
	_, _, err := logging.Open(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}

func TestNewRotatingWriter(t *testing.T) {
	w := logging.NewRotatingWriter("/tmp/x.log")
	assert.Equal(t, 1, w.MaxSize)
	assert.Equal(t, 2, w.MaxBackups)
	assert.Equal(t, 30, w.MaxAge)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
}
