// Package logger provides file-backed structured logging for the TUI.
// Nothing may write to stdout/stderr while Bubble Tea owns the
// terminal, so all diagnostics go to a log file via slog.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called.
const DefaultLogPath = "/tmp/parley-debug.log"

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	once       sync.Once
	initDone   bool
)

// SetDebug toggles between debug and info level output.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// SetQuiet raises the threshold to warnings only.
func SetQuiet() {
	levelVar.Set(slog.LevelWarn)
}

// Init opens the log file at path. If not called, the default path is
// opened lazily on first use.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	once.Do(func() {
		f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Can't log anywhere; stay silent rather than corrupt the TUI.
			return
		}
		logFile = f
		slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
		initDone = true
	})
}

func logf(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil || !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style debug message.
func Debug(format string, args ...interface{}) {
	logf(slog.LevelDebug, format, args...)
}

// Info writes a printf-style info message.
func Info(format string, args ...interface{}) {
	logf(slog.LevelInfo, format, args...)
}

// Warn writes a printf-style warning.
func Warn(format string, args ...interface{}) {
	logf(slog.LevelWarn, format, args...)
}

// Error writes a printf-style error message.
func Error(format string, args ...interface{}) {
	logf(slog.LevelError, format, args...)
}

// WithComponent returns a slog.Logger with the component attribute
// pre-attached, for structured logging at call sites that hold one.
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slogLogger.With(slog.String("component", component))
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}
