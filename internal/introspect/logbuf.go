package introspect

import (
	"fmt"
	"sync"
)

// maxLogEntries bounds the process-wide log ring buffer.
const maxLogEntries = 500

// logRing is a bounded FIFO of diagnostic lines. Oldest entries are
// evicted first once the capacity is reached.
type logRing struct {
	mu      sync.Mutex
	entries []string
	max     int
}

func newLogRing(capacity int) *logRing {
	return &logRing{max: capacity}
}

// Push appends one line, evicting the oldest if at capacity.
func (r *logRing) Push(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) >= r.max {
		r.entries = r.entries[1:]
	}
	r.entries = append(r.entries, msg)
}

// Snapshot returns a copy of the current entries in insertion order.
func (r *logRing) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

var defaultRing = newLogRing(maxLogEntries)

// Log appends a diagnostic line to the process-wide buffer exposed via
// get_logs. Safe to call from any goroutine in the hosting process.
func Log(msg string) {
	defaultRing.Push(msg)
}

// Logf is Log with formatting.
func Logf(format string, a ...any) {
	defaultRing.Push(fmt.Sprintf(format, a...))
}
