package credentials

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/server/models"
)

func TestPostgresRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"email", "password_hash", "display_name"}).
		AddRow("anouar@innovatech.com", []byte("$2a$10$hash"), "Anouar")

	mock.ExpectQuery("SELECT email, password_hash, display_name FROM credentials").
		WithArgs("Anouar@innovatech.com").
		WillReturnRows(rows)

	r := NewPostgresRepository(db)
	c, err := r.GetByEmail(context.Background(), "Anouar@innovatech.com")
	require.NoError(t, err)
	assert.Equal(t, "anouar@innovatech.com", c.Email)
	assert.Equal(t, "Anouar", c.DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT email, password_hash, display_name FROM credentials").
		WithArgs("missing@innovatech.com").
		WillReturnRows(sqlmock.NewRows([]string{"email", "password_hash", "display_name"}))

	r := NewPostgresRepository(db)
	_, err = r.GetByEmail(context.Background(), "missing@innovatech.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs("hr@innovatech.com", []byte("$2a$10$hash"), "HR").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := NewPostgresRepository(db)
	err = r.Upsert(context.Background(), &models.Credential{
		Email:        "hr@innovatech.com",
		PasswordHash: []byte("$2a$10$hash"),
		DisplayName:  "HR",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
