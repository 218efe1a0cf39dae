package session

import (
	"context"
	"encoding/json"

	"github.com/innovatech/employee-portal/internal/client/models"
	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/logging"
)

// identityAPI is the slice of the API client the session manager drives:
// the login call and the outbound identity header.
type identityAPI interface {
	Login(ctx context.Context, creds models.LoginCredentials) (models.AuthUser, error)
	SetIdentity(email string)
}

// Manager owns the AuthUser value and keeps the API client's identity header
// in lockstep with it. Whenever the identity becomes present, changes, or
// becomes absent, the header is updated in the same call.
type Manager struct {
	api    identityAPI
	store  Store
	logger logging.Logger
	user   *models.AuthUser
}

func NewManager(api identityAPI, store Store, logger logging.Logger) *Manager {
	return &Manager{api: api, store: store, logger: logger.With("module", "session")}
}

// Restore recovers a previously persisted session. Missing, corrupt, or
// invalid data resolves to "no session"; it never propagates an error.
// A bad persisted value is cleared so it is not retried forever.
func (m *Manager) Restore() (models.AuthUser, bool) {
	data, err := m.store.Load()
	if err != nil {
		m.logger.Warn(context.Background(), "session load failed", "error", err.Error())
		return models.AuthUser{}, false
	}
	if len(data) == 0 {
		return models.AuthUser{}, false
	}

	var user models.AuthUser
	if err := json.Unmarshal(data, &user); err != nil || !user.Valid() {
		m.logger.Warn(context.Background(), "discarding unusable persisted session")
		_ = m.store.Clear()
		return models.AuthUser{}, false
	}

	m.user = &user
	m.api.SetIdentity(user.Email)
	return user, true
}

// Login authenticates against the backend. Any failure, whether transport,
// rejected credentials or a malformed response, comes back as the uniform
// common.ErrAuthFailed; the underlying cause is only logged.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthUser, error) {
	user, err := m.api.Login(ctx, creds)
	if err != nil {
		m.logger.Warn(ctx, "login failed", "error", err.Error())
		return models.AuthUser{}, common.ErrAuthFailed
	}
	if !user.Valid() {
		return models.AuthUser{}, common.ErrAuthFailed
	}

	if data, err := json.Marshal(user); err == nil {
		if err := m.store.Save(data); err != nil {
			// the session stays usable in memory; it just won't survive a restart
			m.logger.Warn(ctx, "session persist failed", "error", err.Error())
		}
	}

	m.user = &user
	m.api.SetIdentity(user.Email)
	m.logger.Info(ctx, "session established", "email", user.Email)
	return user, nil
}

// Logout clears the persisted and in-memory identity. Calling it with no
// active session is a no-op.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.user = nil
	m.api.SetIdentity("")
}

// Current returns the authenticated user, if any.
func (m *Manager) Current() (models.AuthUser, bool) {
	if m.user == nil {
		return models.AuthUser{}, false
	}
	return *m.user, true
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.user != nil
}
