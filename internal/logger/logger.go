// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
)

// Init initializes the logger package. Records are written as text to output;
// when color is set the tint handler renders them for a terminal instead.
func Init(cfg Config, output io.Writer, color bool) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		cfg.process()
		logLevel = new(slog.LevelVar)
		logLevel.Set(cfg.level)

		var base slog.Handler
		if color {
			base = tint.NewHandler(output, &tint.Options{
				Level:      logLevel,
				AddSource:  true,
				TimeFormat: time.TimeOnly,
			})
		} else {
			base = slog.NewTextHandler(output, &slog.HandlerOptions{
				Level:     logLevel,
				AddSource: true,
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == slog.SourceKey {
						if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
							source.File = filepath.Base(source.File)
						}
					}
					if a.Key == slog.TimeKey {
						a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
					}
					return a
				},
			})
		}
		defaultLogger = slog.New(newFilteringHandler(base, &cfg))
	})
}

// Open resolves cfg.LogFilePath and initializes the logger on it.
// "-" logs to stderr in color, an empty path discards output.
// The returned closer releases the log file, if one was opened.
func Open(cfg Config) (io.Closer, error) {
	switch cfg.LogFilePath {
	case "":
		Init(cfg, io.Discard, false)
		return io.NopCloser(nil), nil
	case "-":
		Init(cfg, os.Stderr, true)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory for '%s': %w", cfg.LogFilePath, err)
	}
	logFile, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
	}
	Init(cfg, logFile, false)
	return logFile, nil
}

// ensureInitialized provides a discarding logger if Init wasn't called.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	})
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	ensureInitialized()
	logLevel.Set(level)
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...any) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...any) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// DebugTagf logs a debug message carrying a filter tag.
func DebugTagf(tag string, format string, args ...any) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// WarnTagf logs a warning carrying a filter tag.
func WarnTagf(tag string, format string, args ...any) {
	logAtLevel(slog.LevelWarn, tag, format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
