// Package logger adapts the l structured logger to the ports.Logger
// interface the cipher cores and the warmup manager log through.
package logger

import (
	"os"

	"github.com/baditaflorin/go_classical_crypto/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger wraps an l.Logger behind ports.Logger.
type StdLogger struct {
	logger l.Logger
}

// NewStdLogger creates an adapter around a default async stdout logger.
// It is the fallback the pkg facades use when no logger option is given.
func NewStdLogger() (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})

	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// NewCustomStdLogger creates an adapter around a logger built from the
// given l.Config.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// Debug logs a debug message.
func (l *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (l *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (l *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (l *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (l *StdLogger) Close() error {
	return l.logger.Close()
}

// FromExisting wraps a caller-owned l.Logger. Closing the adapter closes
// the wrapped logger too.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}
