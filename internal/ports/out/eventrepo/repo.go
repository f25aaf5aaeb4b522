package eventrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested event does not exist.
var ErrNotFound = errors.New("event not found")

// Update is a partial update; nil fields are left unchanged.
type Update struct {
	Name     *string
	Place    *string
	MMDD     *string
	ImageURL *string
}

// Repository provides access to persisted events.
// List returns events ordered by id ascending for deterministic output.
type Repository interface {
	List(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)

	// Create persists an event whose id the caller already generated
	// (the image file on disk is named after it).
	Create(ctx context.Context, e domain.Event) (domain.Event, error)

	Update(ctx context.Context, id uuid.UUID, u Update) (domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
