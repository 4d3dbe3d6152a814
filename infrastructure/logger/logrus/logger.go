// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Provides structured logging with leveled output and field support

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger writing structured text to stdout
func NewLogrusLogger() *LogrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &LogrusLogger{log: log}
}

// NewLogrusLoggerWithLevel creates a logger with the given level name.
// Unrecognized names fall back to info.
func NewLogrusLoggerWithLevel(level string) *LogrusLogger {
	l := NewLogrusLogger()
	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.log.SetLevel(parsed)
	}
	return l
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *LogrusLogger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}
