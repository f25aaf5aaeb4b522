package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("user not found")

// Repository provides access to persisted user profiles.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// UpdateName sets the profile name; nil clears it.
	UpdateName(ctx context.Context, id uuid.UUID, name *string) (domain.User, error)

	// UpdateAvatarURL points the profile at its (re)stored avatar asset.
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) (domain.User, error)
}
