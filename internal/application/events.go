package application

import (
	"context"
	"fmt"
	"sync"

	"hidenb/internal/logger"
)

// EventQueue runs event handlers one at a time in the order they were posted.
// A handler that posts another event does not nest: the new event runs after
// the current one returns. Panics are logged and swallowed.
type EventQueue struct {
	mu      sync.Mutex
	pending []queuedEvent
	running bool
}

type queuedEvent struct {
	ctx     context.Context
	name    string
	handler func(context.Context)
}

// Post queues handler and, unless another caller is already draining the
// queue, runs every pending handler before returning.
func (q *EventQueue) Post(ctx context.Context, name string, handler func(context.Context)) {
	q.mu.Lock()
	q.pending = append(q.pending, queuedEvent{ctx: ctx, name: name, handler: handler})
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true

	for len(q.pending) > 0 {
		ev := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()
		run(ev)
		q.mu.Lock()
	}

	q.running = false
	q.mu.Unlock()
}

func run(ev queuedEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Event handler panicked", fmt.Errorf("%v", r), map[string]interface{}{
				"event": ev.name,
			})
		}
	}()
	ev.handler(ev.ctx)
}
