// Package credentials stores portal login credentials. Passwords are kept as
// bcrypt hashes only.
package credentials

import (
	"context"

	"github.com/innovatech/employee-portal/internal/server/models"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.Credential, error)
	Upsert(ctx context.Context, c *models.Credential) error
}
