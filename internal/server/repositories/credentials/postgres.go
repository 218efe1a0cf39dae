package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/dbx"
	"github.com/innovatech/employee-portal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query :=
		`SELECT email, password_hash, display_name FROM credentials
		 WHERE email = lower($1)
		 `

	c := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&c.Email, &c.PasswordHash, &c.DisplayName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, c *models.Credential) error {
	query :=
		`INSERT INTO credentials (email, password_hash, display_name)
		 VALUES (lower($1), $2, $3)
		 ON CONFLICT (email)
		 DO UPDATE SET password_hash = EXCLUDED.password_hash, display_name = EXCLUDED.display_name
		 `

	_, err := r.db.ExecContext(ctx, query, c.Email, c.PasswordHash, c.DisplayName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
