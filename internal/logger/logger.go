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
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
)

// Init initializes the logger package with a level and an output writer.
func Init(level slog.Level, output io.Writer) {
	cfg := NewConfig()
	InitWithConfig(cfg, level, output)
}

// InitWithConfig initializes the logger with tag/package filtering from cfg,
// replacing the bootstrap logger (or a previous configuration).
func InitWithConfig(cfg Config, level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	opts := slog.HandlerOptions{
		Level:     levelVar,
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
	}
	cfg.process()
	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)
	l := slog.New(handler)

	mu.Lock()
	defaultLogger, logLevel = l, levelVar
	mu.Unlock()
	l.Debug("Logger initialized", slog.String("level", level.String()))
}

// OpenOutput resolves a log file path into a writer. Empty or "-" means stderr.
// The returned closer is a no-op for stderr.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return f, f.Close, nil
}

// current returns the active logger, installing a bootstrap logger that
// writes warnings and errors to stderr if Init was never called.
func current() (*slog.Logger, *slog.LevelVar) {
	mu.RLock()
	l, lv := defaultLogger, logLevel
	mu.RUnlock()
	if l != nil {
		return l, lv
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelWarn)
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	return defaultLogger, logLevel
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	_, lv := current()
	lv.Set(level)
}

// logAtLevel creates and logs a record, capturing the caller of the wrapper.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l, _ := current()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a filter tag.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	l, _ := current()
	return l
}
