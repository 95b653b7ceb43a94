package events

import (
	"context"
	"log/slog"
	"sync"
)

// InMemoryPublisher records events in memory. It backs local development
// (no Kafka configured) and tests that assert on emitted events.
type InMemoryPublisher struct {
	log *slog.Logger

	mu     sync.Mutex
	events []Event
}

func NewInMemoryPublisher(log *slog.Logger) *InMemoryPublisher {
	return &InMemoryPublisher{log: log}
}

func (p *InMemoryPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()

	p.log.InfoContext(ctx, "event published", "key", string(event.Key), "email", event.Payload.Email)
	return nil
}

// Events returns a copy of everything published so far.
func (p *InMemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
