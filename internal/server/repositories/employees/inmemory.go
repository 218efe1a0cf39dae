package employees

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/server/models"
)

// InMemoryRepository keeps employee records in a map with a separate slice
// preserving insertion order, so List is deterministic.
type InMemoryRepository struct {
	mu       sync.RWMutex
	items    map[string]models.Employee
	order    []string
	deleting map[string]time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:    make(map[string]models.Employee),
		order:    []string{},
		deleting: make(map[string]time.Time),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, e *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[e.EmployeeID]; ok {
		return fmt.Errorf("employee %s: %w", e.EmployeeID, common.ErrConflict)
	}
	r.items[e.EmployeeID] = *e
	r.order = append(r.order, e.EmployeeID)
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[employeeID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &e, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[e.EmployeeID]; !ok {
		return nil, common.ErrNotFound
	}
	r.items[e.EmployeeID] = *e
	updated := *e
	return &updated, nil
}

func (r *InMemoryRepository) SetStatus(ctx context.Context, employeeID string, status models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[employeeID]
	if !ok {
		return common.ErrNotFound
	}
	e.Status = status
	r.items[employeeID] = e

	if status == models.StatusDeleting {
		r.deleting[employeeID] = time.Now()
	} else {
		delete(r.deleting, employeeID)
	}
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remove(employeeID)
}

// remove must be called with the lock held.
func (r *InMemoryRepository) remove(employeeID string) error {
	if _, ok := r.items[employeeID]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, employeeID)
	delete(r.deleting, employeeID)
	for i, id := range r.order {
		if id == employeeID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// StartReaper periodically drops records that have been DELETING for longer
// than ttl, standing in for the external worker that tears down resources.
// It runs until ctx is cancelled. Development and demo use only.
func (r *InMemoryRepository) StartReaper(ctx context.Context, ttl, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.reap(ttl)
			}
		}
	}()
}

func (r *InMemoryRepository) reap(ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, since := range r.deleting {
		if now.Sub(since) > ttl {
			_ = r.remove(id)
		}
	}
}
