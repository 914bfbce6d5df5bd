package events

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Listener receives every published event. Listeners are compared by identity
// on Unsubscribe, so implementations should be pointer types.
type Listener interface {
	Handle(event Event) error
}

// Bus fans events out synchronously, in subscription order, on the publishing
// goroutine. A failing listener is logged and skipped; delivery is never retried.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
	logger    logrus.FieldLogger
}

func NewBus(logger logrus.FieldLogger) *Bus {
	return &Bus{logger: logger}
}

func (b *Bus) Subscribe(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

// Unsubscribe removes the first registration of listener, if any.
func (b *Bus) Unsubscribe(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, l := range b.listeners {
		if l == listener {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Publish delivers event to a snapshot of the current subscribers and returns
// once all of them have run.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, listener := range listeners {
		if err := b.deliver(listener, event); err != nil {
			b.logger.WithError(err).WithFields(logrus.Fields{
				"event":    event.Kind(),
				"listener": fmt.Sprintf("%T", listener),
			}).Error("EventBus.Publish.listener failed")
		}
	}
}

func (b *Bus) deliver(listener Listener, event Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("listener panic: %v", rec)
		}
	}()
	return listener.Handle(event)
}
