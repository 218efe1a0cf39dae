// Package services holds the backend business logic: login verification and
// the employee lifecycle.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/logging"
	"github.com/innovatech/employee-portal/internal/server/models"
	"github.com/innovatech/employee-portal/internal/server/repositories/credentials"
)

// AuthService verifies portal logins. An optional allow list restricts which
// emails may log in at all, independent of their credentials.
type AuthService struct {
	creds   credentials.Repository
	allowed map[string]struct{}
	logger  logging.Logger
}

func NewAuthService(creds credentials.Repository, allowedEmails []string, logger logging.Logger) *AuthService {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &AuthService{creds: creds, allowed: allowed, logger: logger}
}

// VerifyLogin checks the allow list, looks the credential up and compares the
// password hash. Unknown email and wrong password both come back as
// ErrUnauthorized, so callers cannot tell them apart. Returns the display
// name, falling back to the local part of the email.
func (s *AuthService) VerifyLogin(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(s.allowed) > 0 {
		if _, ok := s.allowed[email]; !ok {
			return "", common.ErrForbidden
		}
	}

	c, err := s.creds.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		s.logger.Error(ctx, "credential lookup failed", "error", err)
		return "", common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrUnauthorized
	}

	name := c.DisplayName
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return name, nil
}

// Register stores a credential with a bcrypt hash. Used for seeding and
// administrative setup.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.creds.Upsert(ctx, &models.Credential{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	})
}
