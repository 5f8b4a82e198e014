package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// SetLogger replaces the package logger used by every loda_ive_go package.
// Passing nil restores the no-op logger.
// The returned function restores the previous logger.
func SetLogger(logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		current.Store(prev)
	}
}

// Logger returns the package logger. It is never nil.
func Logger() *zap.Logger {
	return current.Load()
}

// Log emits a structured log line at the given level.
func Log(level LogLevel, msg string, fields map[string]interface{}) {
	logger := Logger()
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zfields...)
	case LogWarn:
		logger.Warn(msg, zfields...)
	case LogError:
		logger.Error(msg, zfields...)
	case LogDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}
