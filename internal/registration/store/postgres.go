package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"registrar/internal/registration/models"
	id "registrar/pkg/domain"
	"registrar/pkg/platform/sentinel"
)

// Schema creates the users table. Uniqueness is enforced on the lowercased
// email so the database stays authoritative even for non-canonical writes.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL,
	credential TEXT NOT NULL,
	first_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users ((lower(email)));
`

const pgUniqueViolation = "23505"

// Postgres persists users in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, credential, first_name, last_name, created_at
		FROM users
		WHERE lower(email) = lower($1)`,
		string(email),
	)

	var (
		rawID string
		user  models.User
		cred  string
		mail  string
	)
	err := row.Scan(&rawID, &mail, &cred, &user.FirstName, &user.LastName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse stored user id: %w", err)
	}
	user.ID = id.UserID(parsed)
	user.Email = models.Email(mail)
	user.Credential = models.HashedCredential(cred)
	return &user, nil
}

// CreateIfEmailAvailable inserts the user; the unique index resolves
// concurrent duplicates, surfacing the loser as sentinel.ErrAlreadyUsed.
func (s *Postgres) CreateIfEmailAvailable(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, credential, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID.String(),
		string(user.Email),
		string(user.Credential),
		user.FirstName,
		user.LastName,
		user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
