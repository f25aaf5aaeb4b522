package poserepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested pose does not exist.
var ErrNotFound = errors.New("pose not found")

// Repository provides access to persisted poses.
// List methods return poses ordered by creation time descending.
type Repository interface {
	List(ctx context.Context) ([]domain.Pose, error)

	// ListPaginated returns the given zero-based page of poses.
	ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Pose, error)

	GetByID(ctx context.Context, id uuid.UUID) (domain.Pose, error)

	// Create persists a pose whose id the caller already generated
	// (the image file on disk is named after it).
	Create(ctx context.Context, p domain.Pose) (domain.Pose, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
