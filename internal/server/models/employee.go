// Package models defines the server-side domain types for the onboarding
// portal: employee records and login credentials.
package models

import "time"

// Status is the lifecycle state of an employee record. The backend owns it;
// clients never set it directly.
type Status string

const (
	StatusCreated  Status = "CREATED"
	StatusActive   Status = "ACTIVE"
	StatusDeleting Status = "DELETING"
)

// Employee is a directory record. DELETING records stay visible until the
// provisioning worker finishes tearing their resources down.
type Employee struct {
	EmployeeID string    `json:"employeeId" dynamodbav:"employeeId"`
	Name       string    `json:"name" dynamodbav:"name"`
	Email      string    `json:"email" dynamodbav:"email"`
	Department string    `json:"department" dynamodbav:"department"`
	Status     Status    `json:"status" dynamodbav:"status"`
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"createdAt,unixtime"`
}
