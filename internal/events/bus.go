package events

import (
	"sync"

	"github.com/duls-dev/duls/internal/scan"
)

// listenerBuffer bounds each listener channel; events beyond it are
// dropped for that listener.
const listenerBuffer = 256

// Bus fans events out to any number of listeners.
type Bus struct {
	mu        sync.Mutex
	listeners []chan Event
	closed    bool
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{}
}

// Listen registers a new listener. The channel is closed by Close.
func (b *Bus) Listen() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, listenerBuffer)
	b.listeners = append(b.listeners, ch)
	return ch
}

// Send publishes an event to every listener. It never blocks: a full
// listener drops the event, and sending on a closed bus is a no-op.
func (b *Bus) Send(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.listeners {
		select {
		case ch <- e:
		default:
		}
	}
}

// Close closes all listener channels. Further Sends are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.listeners {
		close(ch)
	}
	b.listeners = nil
}

// Sink returns a scan.Sink that republishes traversal notifications on
// the bus.
func (b *Bus) Sink() scan.Sink {
	return scan.SinkFunc(func(dir, entry string, status scan.Status) {
		b.Send(ProgressEvent(dir, entry, status))
	})
}
