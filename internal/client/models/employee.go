// Package models holds the client-side domain types: employee records as
// reported by the backend, the authenticated user, and the form draft.
package models

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/innovatech/employee-portal/internal/common"
)

// Status is the server-authoritative lifecycle marker of an employee record.
// The provisioning pipeline owns transitions; the client only ever reads it.
type Status string

const (
	// StatusCreated means the record exists and provisioning is underway.
	StatusCreated Status = "CREATED"
	// StatusActive means the provisioning worker finished.
	StatusActive Status = "ACTIVE"
	// StatusDeleting means an asynchronous teardown is in progress. Records
	// in this state are not editable and must not be deleted again.
	StatusDeleting Status = "DELETING"
	// StatusUnknown is the rendering of an absent or unrecognized status.
	StatusUnknown Status = "UNKNOWN"
)

// Employee mirrors one record of the backend collection. EmployeeID is
// server-assigned and immutable; it is the sole key used for selection.
type Employee struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Status     Status `json:"status,omitempty"`
}

// DisplayStatus maps absent or unrecognized status values to StatusUnknown
// so the view never has to deal with raw server vocabulary.
func (e Employee) DisplayStatus() Status {
	switch e.Status {
	case StatusCreated, StatusActive, StatusDeleting:
		return e.Status
	default:
		return StatusUnknown
	}
}

// Deleting reports whether the record is mid-teardown.
func (e Employee) Deleting() bool {
	return e.Status == StatusDeleting
}

// AuthUser is the authenticated identity established by login. Email is the
// identity key; a user without an email must not authenticate the session.
type AuthUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Valid reports whether the user may authenticate a session.
func (u AuthUser) Valid() bool {
	return strings.TrimSpace(u.Email) != ""
}

// DisplayName prefers the human name, falling back to the email.
func (u AuthUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// LoginCredentials are transient: held only by the login prompt and never
// persisted anywhere.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmployeeDraft is the form's working copy of the editable fields. It never
// carries a status or an id; both live elsewhere.
type EmployeeDraft struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// DraftFrom copies the editable fields of an employee into a fresh draft.
func DraftFrom(e Employee) EmployeeDraft {
	return EmployeeDraft{Name: e.Name, Email: e.Email, Department: e.Department}
}

// Validate gates submission: all three fields non-empty and the email in a
// minimally parseable shape. Errors wrap common.ErrInvalidInput.
func (d EmployeeDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return fmt.Errorf("%w: email is not valid", common.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Department) == "" {
		return fmt.Errorf("%w: department is required", common.ErrInvalidInput)
	}
	return nil
}
