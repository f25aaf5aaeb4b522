package postrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested post does not exist.
var ErrNotFound = errors.New("post not found")

// Repository provides access to persisted posts.
// List methods return posts ordered by creation time descending.
type Repository interface {
	List(ctx context.Context) ([]domain.Post, error)
	ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Post, error)

	// Count returns the total number of posts, for pagination metadata.
	Count(ctx context.Context) (uint64, error)

	ListByTheme(ctx context.Context, themeID string) ([]domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error)

	// Create persists a post whose id the caller already generated
	// (the image file on disk is named after it).
	Create(ctx context.Context, p domain.Post) (domain.Post, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
