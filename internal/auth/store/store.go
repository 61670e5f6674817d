package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inflybi/warehouse/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the users table. The warehouse tables are owned by the
// pipeline's loader; only the users table belongs to the API.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS usuarios (
			id UUID PRIMARY KEY,
			nome TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			senha_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating usuarios table: %w", err)
	}

	return nil
}

func (s *Store) CreateUser(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO usuarios (id, nome, email, senha_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query, u.ID, u.Nome, u.Email, u.SenhaHash).
		Scan(&u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `
		SELECT id, nome, email, senha_hash, created_at
		FROM usuarios
		WHERE email = $1`

	var u auth.User

	err := s.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return &u, nil
}
