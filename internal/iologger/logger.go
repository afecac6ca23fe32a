// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/ngireports/pkg/config"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "ngireports.log"

// logFile is the log file opened by the last Init call.
var logFile *os.File

// Init initializes the global slog logger with the given configuration.
// Creates log file in logDir if destination is "file". If append is false
// the file is truncated, otherwise new records are added to it. With
// "file" destination warnings and errors are also shown on STDERR, so
// report problems are not hidden in the log. A log file opened by
// a previous call is closed.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	handler, file, err := NewHandler(logDir, cfg, os.Stderr, append)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	return nil
}

// NewHandler creates slog handler according to the configuration.
// The console writer receives warnings when logs go to a file.
// The returned file is nil unless destination is "file", the caller
// closes it.
func NewHandler(
	logDir string,
	cfg config.LogConfig,
	console io.Writer,
	append bool,
) (slog.Handler, *os.File, error) {
	var writer io.Writer
	var file *os.File

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		var err error
		if append {
			file, err = os.OpenFile(logPath,
				os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		} else {
			file, err = os.Create(logPath)
		}
		if err != nil {
			return nil, nil, CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	level := parseLevel(cfg.Level)
	handler := formatHandler(writer, cfg.Format, level)

	if cfg.Destination == "file" && console != nil {
		warn := tint.NewHandler(console, &tint.Options{
			Level: max(level, slog.LevelWarn),
		})
		handler = slogmulti.Fanout(handler, warn)
	}

	return handler, file, nil
}

func formatHandler(
	w io.Writer,
	format string,
	level slog.Level,
) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	switch format {
	case "text":
		return slog.NewTextHandler(w, handlerOpts)
	case "tint":
		return tint.NewHandler(w, &tint.Options{Level: level})
	default:
		return slog.NewJSONHandler(w, handlerOpts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
