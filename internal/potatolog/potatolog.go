// Package potatolog keeps log output in memory so it can be shown to the user
// after the fact.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects each write to be a single JSON-encoded entry, as written by
// zerolog.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.log
}

// WithLevel returns the entries logged with the given level (e.g. "warn").
func (w *MemoryLogReaderWriter) WithLevel(level string) []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := []LogEntry{}
	for _, entry := range w.log {
		if entry["level"] == level {
			result = append(result, entry)
		}
	}
	return result
}

// Clear drops all entries.
func (w *MemoryLogReaderWriter) Clear() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = []LogEntry{}
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
