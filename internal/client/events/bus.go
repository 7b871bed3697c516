// Package events implements the in-process publish/subscribe bus used to
// notify interested components about profile, session and cart changes.
package events

import (
	"log/slog"
	"sync"
)

// Topic is a named channel carrying payloads of type T
type Topic[T any] struct {
	Name string
}

type subscriber struct {
	handler func(any)
	id      uint64
}

// Bus delivers published payloads synchronously on the publishing goroutine
type Bus struct {
	logger *slog.Logger
	subs   map[string][]subscriber
	mu     sync.Mutex
	nextID uint64
}

// NewBus creates an empty bus
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[string][]subscriber),
	}
}

// Subscribe registers handler for topic and returns a function that
// removes it. Calling the returned function more than once is harmless.
func Subscribe[T any](b *Bus, topic Topic[T], handler func(T)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic.Name] = append(b.subs[topic.Name], subscriber{
		id: id,
		handler: func(payload any) {
			handler(payload.(T))
		},
	})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.unsubscribe(topic.Name, id)
		})
	}
}

// Publish delivers payload to every handler registered on topic when the
// call starts, in registration order. A panicking handler is logged and
// does not prevent delivery to the rest.
func Publish[T any](b *Bus, topic Topic[T], payload T) {
	b.mu.Lock()
	current := b.subs[topic.Name]
	snapshot := make([]subscriber, len(current))
	copy(snapshot, current)
	b.mu.Unlock()

	for _, s := range snapshot {
		b.deliver(topic.Name, s, payload)
	}
}

// Subscribers returns the number of handlers registered on name
func (b *Bus) Subscribers(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[name])
}

func (b *Bus) deliver(name string, s subscriber, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked", "topic", name, "panic", r)
		}
	}()
	s.handler(payload)
}

func (b *Bus) unsubscribe(name string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.subs[name]
	// Новый слайс, чтобы не трогать снапшоты активных Publish
	next := make([]subscriber, 0, len(current))
	for _, s := range current {
		if s.id != id {
			next = append(next, s)
		}
	}

	if len(next) == 0 {
		delete(b.subs, name)
		return
	}
	b.subs[name] = next
}
