// =============================================================================
// Outreach Merger - Logging
// =============================================================================
//
// Leveled logging for the pipeline. The generator logs through the Logger
// interface so tests can substitute a silent implementation.
//
// =============================================================================

package generator

import (
	"fmt"
	"strings"
)

// Logger is the interface the pipeline logs through.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Log levels, in increasing severity.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// defaultLogger prints leveled lines to stdout.
type defaultLogger struct {
	level int
}

// NewLogger creates the standard logger for a level name ("debug", "info",
// "warn", "error"). Unknown names fall back to "info".
func NewLogger(level string) Logger {
	return &defaultLogger{level: parseLevel(level)}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if l.level <= levelDebug {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	if l.level <= levelInfo {
		fmt.Printf("[INFO] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	if l.level <= levelWarn {
		fmt.Printf("[WARN] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	if l.level <= levelError {
		fmt.Printf("[ERROR] "+msg+"\n", args...)
	}
}
