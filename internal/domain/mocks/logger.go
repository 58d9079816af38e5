package mocks

import "sync"

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Msg     string
	Keyvals []any
}

// Logger is a mock implementation of ports.Logger that records every call.
type Logger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func (m *Logger) record(level, msg string, keyvals []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Msg: msg, Keyvals: keyvals})
}

// Debug records a debug entry.
func (m *Logger) Debug(msg string, keyvals ...any) { m.record("debug", msg, keyvals) }

// Info records an info entry.
func (m *Logger) Info(msg string, keyvals ...any) { m.record("info", msg, keyvals) }

// Warn records a warn entry.
func (m *Logger) Warn(msg string, keyvals ...any) { m.record("warn", msg, keyvals) }

// Error records an error entry.
func (m *Logger) Error(msg string, keyvals ...any) { m.record("error", msg, keyvals) }

// Messages returns the recorded messages for a level.
func (m *Logger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}
