// Package logging provides file-based logging for lintgate.
// It outputs logs to a main log file (.lintgate/logs/lintgate.log)
// and per-tool log files (.lintgate/logs/tool-<name>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/lintgate/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog levels with file-based output support.
// Fields are ordered to minimize memory padding.
type Logger struct {
	mainFile  *os.File
	toolFiles map[string]*os.File
	gateDir   string
	mu        sync.Mutex
	level     slog.Level
}

// New creates a new Logger that writes under the gate state directory.
// If gateDir is empty, logging is disabled (returns a no-op logger).
func New(gateDir string, level slog.Level) *Logger {
	return &Logger{
		gateDir:   gateDir,
		level:     level,
		toolFiles: make(map[string]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
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

// ensureLogsDir creates the logs directory if it doesn't exist.
func (l *Logger) ensureLogsDir() error {
	return os.MkdirAll(filepath.Join(l.gateDir, "logs"), 0o750)
}

// ensureMainFile opens or returns the main log file.
func (l *Logger) ensureMainFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mainFile != nil {
		return l.mainFile, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.GlobalLogPath(l.gateDir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open main log file: %w", err)
	}
	l.mainFile = f
	return f, nil
}

// ensureToolFile opens or returns the per-tool log file.
func (l *Logger) ensureToolFile(tool string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.toolFiles[tool]; ok {
		return f, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.ToolLogPath(l.gateDir, tool)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open tool log file: %w", err)
	}
	l.toolFiles[tool] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.mainFile != nil {
		if err := l.mainFile.Close(); err != nil {
			lastErr = err
		}
		l.mainFile = nil
	}
	for tool, f := range l.toolFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.toolFiles, tool)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [gate] [category] message
func formatLog(t time.Time, level slog.Level, tool, category, msg string) string {
	scope := "gate"
	if tool != "" {
		scope = "tool-" + tool
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry to the appropriate files.
// With an empty tool it goes only to the main log; with a tool name it goes
// to both the main and the per-tool log.
func (l *Logger) log(level slog.Level, tool, category, msg string) {
	if l.gateDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return
	}

	entry := formatLog(time.Now(), level, tool, category, msg)

	if mf, err := l.ensureMainFile(); err == nil {
		_, _ = io.WriteString(mf, entry)
	}

	if tool != "" {
		if tf, err := l.ensureToolFile(tool); err == nil {
			_, _ = io.WriteString(tf, entry)
		}
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(tool, category, msg string) {
	l.log(slog.LevelDebug, tool, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(tool, category, msg string) {
	l.log(slog.LevelInfo, tool, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(tool, category, msg string) {
	l.log(slog.LevelWarn, tool, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(tool, category, msg string) {
	l.log(slog.LevelError, tool, category, msg)
}
