package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/logging"
	"github.com/innovatech/employee-portal/internal/server/events"
	"github.com/innovatech/employee-portal/internal/server/models"
	"github.com/innovatech/employee-portal/internal/server/repositories/employees"
)

// EmployeeService owns the employee lifecycle. Deletion is asynchronous: the
// record is marked DELETING and an event triggers the external teardown; the
// record stays visible until the worker removes it.
type EmployeeService struct {
	repo   employees.Repository
	events events.Publisher
	logger logging.Logger
}

func NewEmployeeService(repo employees.Repository, publisher events.Publisher, logger logging.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, events: publisher, logger: logger}
}

// Create stores a new record with status CREATED and publishes the
// provisioning event. The event failure fails the whole operation; without it
// no resources would ever be provisioned.
func (s *EmployeeService) Create(ctx context.Context, name, email, department string) (*models.Employee, error) {
	e := &models.Employee{
		EmployeeID: uuid.NewString(),
		Name:       name,
		Email:      email,
		Department: department,
		Status:     models.StatusCreated,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	if err := s.events.EmployeeCreated(ctx, e); err != nil {
		return nil, fmt.Errorf("publish created event: %w", err)
	}

	s.logger.Info(ctx, "employee created", "employeeId", e.EmployeeID)
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.repo.Get(ctx, employeeID)
}

// Update replaces the editable fields of a record. Records already in
// teardown cannot be changed.
func (s *EmployeeService) Update(ctx context.Context, employeeID, name, email, department string) (*models.Employee, error) {
	e, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.Status == models.StatusDeleting {
		return nil, fmt.Errorf("employee %s is being deleted: %w", employeeID, common.ErrConflict)
	}

	e.Name = name
	e.Email = email
	e.Department = department

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return updated, nil
}

// Delete marks the record DELETING and publishes the teardown event. The
// record is not removed here; the worker does that once cleanup finishes.
// Deleting a record that is already DELETING is a conflict.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) (*models.Employee, error) {
	e, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.Status == models.StatusDeleting {
		return nil, fmt.Errorf("employee %s is already being deleted: %w", employeeID, common.ErrConflict)
	}

	if err := s.repo.SetStatus(ctx, employeeID, models.StatusDeleting); err != nil {
		return nil, fmt.Errorf("mark deleting: %w", err)
	}
	e.Status = models.StatusDeleting

	if err := s.events.EmployeeDeleted(ctx, e); err != nil {
		// the record is already marked; surface the failure so the caller
		// knows teardown was not triggered
		s.logger.Error(ctx, "publish deleted event failed", "employeeId", employeeID, "error", err)
		return nil, fmt.Errorf("publish deleted event: %w", err)
	}

	s.logger.Info(ctx, "employee marked for deletion", "employeeId", employeeID)
	return e, nil
}
