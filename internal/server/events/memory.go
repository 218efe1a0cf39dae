package events

import (
	"context"
	"sync"

	"github.com/innovatech/employee-portal/internal/server/models"
)

// Event is a recorded publication, used by tests and local development.
type Event struct {
	DetailType string
	EmployeeID string
	Email      string
}

// MemoryPublisher records events instead of sending them anywhere.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) EmployeeCreated(ctx context.Context, e *models.Employee) error {
	return p.record(DetailTypeCreated, e)
}

func (p *MemoryPublisher) EmployeeDeleted(ctx context.Context, e *models.Employee) error {
	return p.record(DetailTypeDeleted, e)
}

func (p *MemoryPublisher) record(detailType string, e *models.Employee) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Event{DetailType: detailType, EmployeeID: e.EmployeeID, Email: e.Email})
	return nil
}

// Events returns a copy of everything recorded so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
