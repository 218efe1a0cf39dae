// Package employees provides storage for employee directory records, with an
// in-memory implementation for development and tests and a DynamoDB
// implementation for production.
package employees

import (
	"context"

	"github.com/innovatech/employee-portal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Employee) error
	Get(ctx context.Context, employeeID string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, e *models.Employee) (*models.Employee, error)
	SetStatus(ctx context.Context, employeeID string, status models.Status) error
	Delete(ctx context.Context, employeeID string) error
}
