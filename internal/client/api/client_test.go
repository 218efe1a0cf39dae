package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatech/employee-portal/internal/client/models"
	"github.com/innovatech/employee-portal/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestLogin_ReturnsUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		// login must never carry the identity header
		require.Empty(t, r.Header.Get(common.IdentityHeaderName))
		require.NotEmpty(t, r.Header.Get(common.RequestIDHeaderName))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"anouar@innovatech.com","name":"Anouar"}`))
	})
	c.SetIdentity("stale@innovatech.com")

	user, err := c.Login(context.Background(), models.LoginCredentials{Email: "anouar@innovatech.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "anouar@innovatech.com", user.Email)
	assert.Equal(t, "Anouar", user.Name)
}

func TestLogin_ResponseWithoutEmailFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Anouar"}`))
	})

	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.nl", Password: "x"})
	require.ErrorIs(t, err, common.ErrAuthFailed)
}

func TestListEmployees_SendsIdentityAndDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "anouar@innovatech.com", r.Header.Get(common.IdentityHeaderName))
		w.Write([]byte(`{"data":[{"employeeId":"emp-1","name":"Alex","email":"alex@bedrijf.nl","department":"Security","status":"CREATED"}]}`))
	})
	c.SetIdentity("anouar@innovatech.com")

	got, err := c.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "emp-1", got[0].EmployeeID)
	assert.Equal(t, models.StatusCreated, got[0].Status)
}

func TestDeleteEmployee_DistinguishesDeletingFromRemoval(t *testing.T) {
	t.Run("deletion in progress", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/employees/emp-1", r.URL.Path)
			w.Write([]byte(`{"deleted":true,"employeeId":"emp-1","status":"DELETING"}`))
		})
		res, err := c.DeleteEmployee(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.True(t, res.Deleting)
	})

	t.Run("immediate removal", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"deleted":true,"employeeId":"emp-1"}`))
		})
		res, err := c.DeleteEmployee(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.False(t, res.Deleting)
	})
}

func TestDo_SurfacesNon2xx(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, common.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, common.ErrUnauthorized},
		{"not found", http.StatusNotFound, common.ErrNotFound},
		{"conflict", http.StatusConflict, common.ErrConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"nope"}`, tc.code)
			})
			_, err := c.ListEmployees(context.Background())
			require.Error(t, err)
			require.ErrorIs(t, err, tc.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.code, apiErr.StatusCode)
		})
	}
}

func TestDo_NetworkErrorWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, time.Second)
	_, err := c.ListEmployees(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUpdateEmployee_SendsDraftBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/employees/emp-2", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"employeeId":"emp-2","name":"Alex Janssen","email":"alex@bedrijf.nl","department":"Ops","status":"ACTIVE"}`))
	})
	c.SetIdentity("anouar@innovatech.com")

	emp, err := c.UpdateEmployee(context.Background(), "emp-2", models.EmployeeDraft{Name: "Alex Janssen", Email: "alex@bedrijf.nl", Department: "Ops"})
	require.NoError(t, err)
	assert.Equal(t, "Ops", emp.Department)
}
