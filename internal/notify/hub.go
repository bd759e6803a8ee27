// Package notify carries the "tasks changed" signal from the task manager to
// whoever renders aggregates from it.
package notify

import (
	"context"
	"sync"
)

// Hub fans a change signal out to subscribers. Notify never blocks: every
// subscriber has a one-slot buffer and signals arriving while one is pending
// are merged into it.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan struct{})}
}

// Subscribe returns a channel that receives a value after one or more
// notifications, and a function that unsubscribes and closes it.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan struct{}, 1)
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Notify signals every subscriber.
func (h *Hub) Notify(_ context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
