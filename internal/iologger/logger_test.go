package iologger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/ngireports/internal/iologger"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_File(t *testing.T) {
	logDir := t.TempDir()
	var console bytes.Buffer
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	h, file, err := iologger.NewHandler(logDir, cfg, &console, false)
	require.NoError(t, err)
	require.NotNil(t, file)
	defer file.Close()

	log := slog.New(h)
	log.Debug("hidden")
	log.Info("connected", "project_id", "P1")
	log.Warn("sample skipped", "sample_id", "S2")

	content, err := os.ReadFile(filepath.Join(logDir, iologger.LogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), `"project_id":"P1"`)
	assert.Contains(t, string(content), `"sample_id":"S2"`)

	assert.NotContains(t, console.String(), "connected")
	assert.Contains(t, console.String(), "sample skipped")
}

func TestNewHandler_BadDir(t *testing.T) {
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}
	logDir := filepath.Join(t.TempDir(), "missing", "dir")

	_, _, err := iologger.NewHandler(logDir, cfg, nil, false)
	assert.Error(t, err)
}

func TestNewHandler_Levels(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		info  bool
		warn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"unknown", false, true, true},
	}

	for _, v := range tests {
		cfg := config.LogConfig{Format: "tint", Level: v.level, Destination: "stderr"}
		h, file, err := iologger.NewHandler("", cfg, nil, false)
		require.NoError(t, err)
		assert.Nil(t, file)
		assert.Equal(t, v.debug, h.Enabled(t.Context(), slog.LevelDebug), v.level)
		assert.Equal(t, v.info, h.Enabled(t.Context(), slog.LevelInfo), v.level)
		assert.Equal(t, v.warn, h.Enabled(t.Context(), slog.LevelWarn), v.level)
	}
}

func TestInit_Append(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	logDir := t.TempDir()
	logPath := filepath.Join(logDir, iologger.LogFile)
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, iologger.Init(logDir, cfg, false))
	slog.Info("bootstrap record")

	// reconfiguration keeps records of the first logger
	require.NoError(t, iologger.Init(logDir, cfg, true))
	slog.Info("configured record")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "bootstrap record")
	assert.Contains(t, string(content), "configured record")

	// a fresh start truncates the file
	require.NoError(t, iologger.Init(logDir, cfg, false))
	slog.Info("new run")

	content, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "bootstrap record")
	assert.Contains(t, string(content), "new run")

	// release the file before the temp dir is removed
	stderr := config.LogConfig{Format: "text", Level: "info", Destination: "stderr"}
	require.NoError(t, iologger.Init(logDir, stderr, false))
}
