package messaging

import (
	"context"
	"sync"

	"github.com/lookaway/lookaway/internal/domain"
)

// Publisher defines the interface for publishing allocation events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishAllocation publishes a committed allocation
	PublishAllocation(ctx context.Context, event *domain.AllocationEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}

// NopPublisher discards every event; used when no broker is configured
type NopPublisher struct {
	once   sync.Once
	closed chan struct{}
}

// NewNopPublisher creates a publisher that drops events
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{closed: make(chan struct{})}
}

func (p *NopPublisher) PublishAllocation(ctx context.Context, event *domain.AllocationEvent) error {
	return nil
}

func (p *NopPublisher) Close() {
	p.once.Do(func() { close(p.closed) })
}

func (p *NopPublisher) CloseChan() <-chan struct{} {
	return p.closed
}
