package introspect

import (
	"sync"

	"github.com/uiprobe/uiprobe/internal/protocol"
)

// pending couples one request with its one-shot reply channel. The
// channel is buffered so the consumer's single send never blocks, even
// when the producing connection has already given up.
type pending struct {
	req   protocol.Request
	reply chan protocol.Response
}

// bridge is the unbounded multi-producer single-consumer queue carrying
// requests from connection goroutines to the UI-context consumer.
// Ordering is guaranteed per connection only: each connection waits for
// its reply before submitting again.
type bridge struct {
	mu    sync.Mutex
	queue []pending
}

func (b *bridge) submit(p pending) {
	b.mu.Lock()
	b.queue = append(b.queue, p)
	b.mu.Unlock()
}

// drain removes and returns everything queued at the time of the call.
func (b *bridge) drain() []pending {
	b.mu.Lock()
	q := b.queue
	b.queue = nil
	b.mu.Unlock()
	return q
}
