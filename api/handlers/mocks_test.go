// ABOUTME: Mock implementations for handler tests
// ABOUTME: Provides a func-field stream service and a recording logger

package handlers

import (
	"context"
	"sync"

	"zhihu-rss-api/core/stream"
	"zhihu-rss-api/core/zhihu"
)

type mockStreamService struct {
	userFeedFunc  func(ctx context.Context, userID string, opts stream.UserFeedOptions) (string, error)
	topicFeedFunc func(ctx context.Context, topicID string, sort zhihu.Sort, picProxy string) (string, error)
}

func (m *mockStreamService) UserFeed(ctx context.Context, userID string, opts stream.UserFeedOptions) (string, error) {
	if m.userFeedFunc != nil {
		return m.userFeedFunc(ctx, userID, opts)
	}
	return "<rss/>", nil
}

func (m *mockStreamService) TopicFeed(ctx context.Context, topicID string, sort zhihu.Sort, picProxy string) (string, error) {
	if m.topicFeedFunc != nil {
		return m.topicFeedFunc(ctx, topicID, sort, picProxy)
	}
	return "<rss/>", nil
}

type loggedEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type mockLogger struct {
	mu      sync.Mutex
	entries []loggedEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, loggedEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) byLevel(level string) []loggedEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []loggedEntry
	for _, e := range m.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
