// Package events publishes provisioning events for the worker pipeline that
// creates and tears down employee cloud resources. The pipeline itself is
// external; the backend only emits the trigger events.
package events

import (
	"context"

	"github.com/innovatech/employee-portal/internal/server/models"
)

// Source identifies the backend in emitted events.
const Source = "eks.backend"

const (
	DetailTypeCreated = "employeeCreated"
	DetailTypeDeleted = "employeeDeleted"
)

type Publisher interface {
	EmployeeCreated(ctx context.Context, e *models.Employee) error
	EmployeeDeleted(ctx context.Context, e *models.Employee) error
}
