package credentials

import (
	"context"
	"strings"
	"sync"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/server/models"
)

// InMemoryRepository keys credentials by lowercased email.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Credential
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]models.Credential)}
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, c *models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.Email = strings.ToLower(c.Email)
	r.items[stored.Email] = stored
	return nil
}
