package logrus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger(buf *bytes.Buffer) *LogrusLogger {
	l := NewLogrusLoggerWithLevel("debug")
	l.log.SetOutput(buf)
	l.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

func TestLogrusLogger_LevelsAndMessage(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *LogrusLogger)
		level string
	}{
		{"debug", func(l *LogrusLogger) { l.Debug("debug msg", nil) }, "debug"},
		{"info", func(l *LogrusLogger) { l.Info("info msg", nil) }, "info"},
		{"warn", func(l *LogrusLogger) { l.Warn("warn msg", nil) }, "warning"},
		{"error", func(l *LogrusLogger) { l.Error("error msg", nil) }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := testLogger(&buf)
			tt.log(l)

			out := buf.String()
			if !strings.Contains(out, "level="+tt.level) {
				t.Errorf("output %q missing level=%s", out, tt.level)
			}
			if !strings.Contains(out, tt.name+" msg") {
				t.Errorf("output %q missing message", out)
			}
		})
	}
}

func TestLogrusLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := testLogger(&buf)

	l.Info("fetching page", map[string]interface{}{
		"url":   "https://example.com",
		"count": 7,
	})

	out := buf.String()
	if !strings.Contains(out, "url=") || !strings.Contains(out, "count=7") {
		t.Errorf("output %q missing structured fields", out)
	}
}

func TestNewLogrusLoggerWithLevel_UnknownFallsBackToInfo(t *testing.T) {
	l := NewLogrusLoggerWithLevel("nonsense")
	if l.log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", l.log.GetLevel())
	}
}

func TestNewLogrusLoggerWithLevel_DebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogrusLoggerWithLevel("info")
	l.log.SetOutput(&buf)

	l.Debug("should not appear", nil)
	if buf.Len() != 0 {
		t.Errorf("debug output emitted at info level: %q", buf.String())
	}
}
