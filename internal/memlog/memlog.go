// Package memlog keeps the JSON log entries written by zerolog in memory so
// the TUI can show them.
package memlog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries kept by a Log created with New(0).
const DefaultCapacity = 1000

// Entry is a single decoded log entry, as zerolog wrote it.
type Entry = map[string]any

// Log is an in-memory log reader and writer.
// Once full, the oldest entries are dropped.
type Log struct {
	mtx      sync.Mutex
	entries  []Entry
	capacity int
}

// New returns a log keeping at most capacity entries.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Write decodes one JSON log entry and appends it to the log.
func (l *Log) Write(p []byte) (int, error) {
	entry := Entry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry '%s' (%w)", string(p), err)
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()
	if len(l.entries) >= l.capacity {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.capacity+1:]...)
	}
	l.entries = append(l.entries, entry)
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
func (l *Log) Get() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Reader allows reading access to a log.
type Reader interface {
	Get() []Entry
}

// Field returns the string value of a field of the entry, or "".
func Field(e Entry, key string) string {
	v, ok := e[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
