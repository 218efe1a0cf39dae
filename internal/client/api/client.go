// Package api is the request layer of the portal client. It maps the domain
// operations onto the fixed REST contract and owns the single cross-request
// identity header.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/innovatech/employee-portal/internal/client/models"
	"github.com/innovatech/employee-portal/internal/common"
)

const maxResponseBytes = 1 << 20

// Client talks to the portal backend. Its only mutable state is the outbound
// identity, set exclusively by the session manager when the authenticated
// user changes.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu       sync.RWMutex
	identity string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SetIdentity sets the email sent in the identity header on subsequent
// requests. An empty value returns the client to anonymous mode.
func (c *Client) SetIdentity(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = email
}

// Identity returns the currently configured identity header value.
func (c *Client) Identity() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

// Login exchanges credentials for an identity. The response must contain a
// non-empty email; an HTTP-success response without one is still a failure.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthUser, error) {
	var user models.AuthUser
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &user, false); err != nil {
		return models.AuthUser{}, err
	}
	if !user.Valid() {
		return models.AuthUser{}, fmt.Errorf("login response without email: %w", common.ErrAuthFailed)
	}
	return user, nil
}

type listEnvelope struct {
	Data []models.Employee `json:"data"`
}

// ListEmployees fetches the full collection.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var env listEnvelope
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &env, true); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateEmployee submits a draft. The returned record's status may still be
// non-terminal; callers must re-fetch for authoritative state.
func (c *Client) CreateEmployee(ctx context.Context, d models.EmployeeDraft) (models.Employee, error) {
	var emp models.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", d, &emp, true); err != nil {
		return models.Employee{}, err
	}
	return emp, nil
}

// UpdateEmployee overwrites the editable fields of an existing record.
func (c *Client) UpdateEmployee(ctx context.Context, id string, d models.EmployeeDraft) (models.Employee, error) {
	var emp models.Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+id, d, &emp, true); err != nil {
		return models.Employee{}, err
	}
	return emp, nil
}

// DeleteResult distinguishes an immediate removal from an acknowledgment
// that an asynchronous teardown has started.
type DeleteResult struct {
	EmployeeID string
	Deleting   bool
}

type deleteResponse struct {
	Deleted    bool          `json:"deleted"`
	EmployeeID string        `json:"employeeId"`
	Status     models.Status `json:"status"`
}

// DeleteEmployee requests removal of a record. Deleting is true when the
// backend answered with status DELETING instead of an immediate removal.
func (c *Client) DeleteEmployee(ctx context.Context, id string) (DeleteResult, error) {
	var resp deleteResponse
	if err := c.do(ctx, http.MethodDelete, "/employees/"+id, nil, &resp, true); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{
		EmployeeID: resp.EmployeeID,
		Deleting:   resp.Status == models.StatusDeleting,
	}, nil
}

// do performs one JSON request. A non-2xx response is surfaced as *APIError,
// a transport failure wraps common.ErrUnavailable; nothing is swallowed.
func (c *Client) do(ctx context.Context, method, path string, body, out any, identified bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if identified {
		if id := c.Identity(); id != "" {
			req.Header.Set(common.IdentityHeaderName, id)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
