package placerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested place does not exist.
var ErrNotFound = errors.New("place not found")

// Update is a partial update; nil fields are left unchanged.
type Update struct {
	Name        *string
	Description *string
	Address     *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Instagram   *string
	Website     *string
	ImageURL    *string
}

// Repository provides access to persisted places.
// List returns places ordered by creation time descending.
type Repository interface {
	List(ctx context.Context) ([]domain.Place, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error)

	// Create persists a place whose id the caller already generated
	// (the image file on disk is named after it).
	Create(ctx context.Context, p domain.Place) (domain.Place, error)

	Update(ctx context.Context, id uuid.UUID, u Update) (domain.Place, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
