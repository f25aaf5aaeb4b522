package favoriterepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// Repository provides access to a user's favorite poses.
//
// Add and Remove are idempotent: favoriting an already-favorited pose and
// unfavoriting an absent one both succeed. Concurrent add/remove for the same
// (user, pose) pair relies on this, not on client-side ordering.
type Repository interface {
	IsFavorite(ctx context.Context, userID, poseID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, poseID uuid.UUID) error
	Remove(ctx context.Context, userID, poseID uuid.UUID) error

	// RemoveMany unfavorites several poses at once (used when moving
	// favorites into a session).
	RemoveMany(ctx context.Context, userID uuid.UUID, poseIDs []uuid.UUID) error

	// FavoritePoses returns the user's favorited poses, newest first.
	FavoritePoses(ctx context.Context, userID uuid.UUID) ([]domain.Pose, error)
}
