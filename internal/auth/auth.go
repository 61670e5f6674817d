package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by the repository when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for expired, malformed or forged tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// User is an API user able to obtain reporting tokens.
type User struct {
	ID        uuid.UUID
	Nome      string
	Email     string
	SenhaHash string
	CreatedAt time.Time
}
