// Package directory owns the in-memory employee collection, the current
// selection, and the orchestration of mutations against the backend.
//
// The collection is a pure projection of backend state: every successful
// mutation is followed by a full re-fetch and the list is replaced wholesale.
// Nothing is ever patched or merged locally, so the view cannot drift from
// what the backend reports.
package directory

import (
	"context"

	"github.com/innovatech/employee-portal/internal/client/api"
	"github.com/innovatech/employee-portal/internal/client/form"
	"github.com/innovatech/employee-portal/internal/client/models"
	"github.com/innovatech/employee-portal/internal/logging"
)

// API is the request surface the store needs.
type API interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, d models.EmployeeDraft) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, d models.EmployeeDraft) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (api.DeleteResult, error)
}

// sessionState gates fetching: the store may only talk to the backend while
// a session is active.
type sessionState interface {
	IsAuthenticated() bool
}

// Status is the uniform user-facing outcome of the last operation. Raw
// transport errors never reach the view.
type Status struct {
	OK      bool
	Message string
}

// User-facing operation messages.
const (
	msgListFailed    = "Could not load the employee list."
	msgCreated       = "Employee created. Provisioning of cloud resources has started."
	msgCreateFailed  = "Something went wrong while creating the employee."
	msgUpdated       = "Employee updated."
	msgUpdateFailed  = "Update failed."
	msgDeleteStarted = "Deletion started: resources are being cleaned up. This can take a few minutes."
	msgDeleted       = "Employee deleted."
	msgDeleteFailed  = "Deletion failed."
	msgInvalidDraft  = "Please fill in a name, a valid email address and a department."
	msgMidDeletion   = "This record is being cleaned up and cannot be changed right now."
)

// Store holds the collection, the selection, and the in-flight flags. It is
// designed for single-threaded, event-driven use: one mutation at a time,
// gated by Submitting. Concurrent callers are a usage error.
type Store struct {
	api     API
	session sessionState
	form    *form.Controller
	logger  logging.Logger

	employees  []models.Employee
	selectedID string
	loading    bool
	submitting bool
	status     *Status
}

func NewStore(a API, s sessionState, f *form.Controller, logger logging.Logger) *Store {
	return &Store{api: a, session: s, form: f, logger: logger.With("module", "directory")}
}

// Employees returns the collection in backend order.
func (s *Store) Employees() []models.Employee {
	return s.employees
}

// SelectedID returns the raw selection key, or "".
func (s *Store) SelectedID() string {
	return s.selectedID
}

// Selected resolves the selection against the current collection. A selected
// id that disappeared in a re-fetch resolves to no selection, never to a
// stale record.
func (s *Store) Selected() (models.Employee, bool) {
	if s.selectedID == "" {
		return models.Employee{}, false
	}
	for _, e := range s.employees {
		if e.EmployeeID == s.selectedID {
			return e, true
		}
	}
	return models.Employee{}, false
}

func (s *Store) Loading() bool    { return s.loading }
func (s *Store) Submitting() bool { return s.submitting }

// LastStatus returns the outcome of the most recent operation, if any.
func (s *Store) LastStatus() (Status, bool) {
	if s.status == nil {
		return Status{}, false
	}
	return *s.status, true
}

// CanMutateSelected reports whether update/delete are currently available:
// there is a selection and it is not mid-deletion.
func (s *Store) CanMutateSelected() bool {
	e, ok := s.Selected()
	return ok && !e.Deleting()
}

// Refresh re-fetches the full collection and replaces it wholesale. It is a
// no-op while unauthenticated. A failed fetch keeps the previous collection
// and reports a failure status instead of clearing anything.
func (s *Store) Refresh(ctx context.Context) {
	if !s.session.IsAuthenticated() {
		return
	}

	s.loading = true
	defer func() { s.loading = false }()

	list, err := s.api.ListEmployees(ctx)
	if err != nil {
		s.logger.Warn(ctx, "list fetch failed", "error", err.Error())
		s.status = &Status{OK: false, Message: msgListFailed}
		return
	}
	s.employees = list
}

// Create submits the current draft as a new record. The record is never
// inserted locally: its authoritative status is only known after the
// follow-up refresh.
func (s *Store) Create(ctx context.Context) {
	if err := s.form.Validate(); err != nil {
		s.status = &Status{OK: false, Message: msgInvalidDraft}
		return
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	if _, err := s.api.CreateEmployee(ctx, s.form.Draft()); err != nil {
		s.logger.Warn(ctx, "create failed", "error", err.Error())
		s.status = &Status{OK: false, Message: msgCreateFailed}
		return
	}

	s.status = &Status{OK: true, Message: msgCreated}
	s.selectedID = ""
	s.form.Reset()
	s.Refresh(ctx)
}

// Update overwrites the selected record with the draft. It is a no-op
// without a selection and is refused locally while the record is being
// torn down.
func (s *Store) Update(ctx context.Context) {
	if s.selectedID == "" {
		return
	}
	if e, ok := s.Selected(); ok && e.Deleting() {
		s.status = &Status{OK: false, Message: msgMidDeletion}
		return
	}
	if err := s.form.Validate(); err != nil {
		s.status = &Status{OK: false, Message: msgInvalidDraft}
		return
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	if _, err := s.api.UpdateEmployee(ctx, s.selectedID, s.form.Draft()); err != nil {
		s.logger.Warn(ctx, "update failed", "error", err.Error())
		s.status = &Status{OK: false, Message: msgUpdateFailed}
		return
	}

	s.status = &Status{OK: true, Message: msgUpdated}
	s.Refresh(ctx)
}

// Remove requests deletion of the selected record. The backend may remove
// it immediately or acknowledge that teardown has started; the two outcomes
// get distinct success messages. Deleting a record that is already mid-
// deletion is refused without a network call.
func (s *Store) Remove(ctx context.Context) {
	if s.selectedID == "" {
		return
	}
	if e, ok := s.Selected(); ok && e.Deleting() {
		s.status = &Status{OK: false, Message: msgMidDeletion}
		return
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	res, err := s.api.DeleteEmployee(ctx, s.selectedID)
	if err != nil {
		s.logger.Warn(ctx, "delete failed", "error", err.Error())
		s.status = &Status{OK: false, Message: msgDeleteFailed}
		return
	}

	msg := msgDeleted
	if res.Deleting {
		msg = msgDeleteStarted
	}
	s.status = &Status{OK: true, Message: msg}

	s.selectedID = ""
	s.form.Reset()
	// refresh either way: the displayed status must come from the backend,
	// not be inferred from the delete response
	s.Refresh(ctx)
}

// Select sets the selection and loads a copy of the record's editable
// fields into the form, discarding unsaved edits. Selecting an id that is
// not in the collection clears the selection instead.
func (s *Store) Select(id string) {
	for _, e := range s.employees {
		if e.EmployeeID == id {
			s.selectedID = id
			s.form.Load(e)
			s.status = nil
			return
		}
	}
	s.ClearSelection()
}

// ClearSelection returns to create mode with an empty draft.
func (s *Store) ClearSelection() {
	s.selectedID = ""
	s.form.Reset()
	s.status = nil
}

// Reset drops all state; used when the session ends.
func (s *Store) Reset() {
	s.employees = nil
	s.ClearSelection()
}
