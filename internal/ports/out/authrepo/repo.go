package authrepo

import (
	"context"

	"github.com/google/uuid"
)

// Credential is the persistence shape used at login and identity resolution.
// It is the only place the password hash is ever read; profile reads go
// through userrepo and never see it.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

// Repository is the narrow email→identity lookup the auth layer depends on.
// It is intentionally not the full user repository: login and identity
// resolution need nothing else.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (Credential, error)
}
