package services

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/logging"
	"github.com/innovatech/employee-portal/internal/server/repositories/credentials"
)

func newAuthService(t *testing.T, allowed []string) *AuthService {
	t.Helper()
	repo := credentials.NewInMemoryRepository()
	s := NewAuthService(repo, allowed, logging.NewJSON(io.Discard))
	require.NoError(t, s.Register(context.Background(), "anouar@innovatech.com", "s3cret", "Anouar"))
	return s
}

func TestAuthService_VerifyLogin(t *testing.T) {
	s := newAuthService(t, nil)

	name, err := s.VerifyLogin(context.Background(), "anouar@innovatech.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Anouar", name)
}

func TestAuthService_VerifyLogin_CaseInsensitiveEmail(t *testing.T) {
	s := newAuthService(t, nil)

	_, err := s.VerifyLogin(context.Background(), "Anouar@Innovatech.com", "s3cret")
	assert.NoError(t, err)
}

func TestAuthService_VerifyLogin_UniformFailures(t *testing.T) {
	s := newAuthService(t, nil)

	// wrong password and unknown email fail identically
	_, err := s.VerifyLogin(context.Background(), "anouar@innovatech.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = s.VerifyLogin(context.Background(), "nobody@innovatech.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthService_VerifyLogin_AllowList(t *testing.T) {
	s := newAuthService(t, []string{"hr@innovatech.com"})

	// valid credentials, but not on the allow list
	_, err := s.VerifyLogin(context.Background(), "anouar@innovatech.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestAuthService_VerifyLogin_NameFallsBackToLocalPart(t *testing.T) {
	repo := credentials.NewInMemoryRepository()
	s := NewAuthService(repo, nil, logging.NewJSON(io.Discard))
	require.NoError(t, s.Register(context.Background(), "hr@innovatech.com", "pw", ""))

	name, err := s.VerifyLogin(context.Background(), "hr@innovatech.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "hr", name)
}
