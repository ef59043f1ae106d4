// Package events provides a typed publish/subscribe bus used to hand alert and
// scaling action notifications to consumers outside the control loop.
//
// Publishing never blocks: every subscriber owns a buffered channel and an event
// is dropped for a subscriber whose buffer is full.
package events

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
)

const defaultSubscriberBuffer = 64

type subscription struct {
	id    uint64
	types []Type
	ch    chan Event
}

func (s *subscription) wants(t Type) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// Bus fans events out to subscribers.
type Bus struct {
	mu      sync.RWMutex
	subs    map[uint64]*subscription
	nextID  atomic.Uint64
	dropped atomic.Uint64
	closed  bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[uint64]*subscription),
	}
}

// Subscribe registers a subscriber for the given event types (all types when none
// are given). The returned cancel func unsubscribes and closes the channel.
func (b *Bus) Subscribe(buffer int, types ...Type) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	sub := &subscription{
		id:    b.nextID.Add(1),
		types: types,
		ch:    make(chan Event, buffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(sub.ch)

		return sub.ch, func() {}
	}

	b.subs[sub.id] = sub

	var once sync.Once

	return sub.ch, func() {
		once.Do(func() { b.unsubscribe(sub.id) })
	}
}

func (b *Bus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[id]
	if !ok {
		return
	}

	delete(b.subs, id)
	close(sub.ch)
}

// Publish delivers e to every interested subscriber without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if !sub.wants(e.EventType()) {
			continue
		}

		select {
		case sub.ch <- e:
		default:
			b.dropped.Add(1)
			metrics.RecordEventDropped(string(e.EventType()))
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Close closes all subscriber channels; later subscriptions receive a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
