package favorites

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/favoriterepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

// Service implements favorite-pose use cases for the authenticated user.
type Service struct {
	repo   favoriterepo.Repository
	poses  poserepo.Repository
	logger *slog.Logger
}

func NewService(repo favoriterepo.Repository, poses poserepo.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, poses: poses, logger: logger}
}

func (s *Service) FavoritePoses(ctx context.Context, userID uuid.UUID) ([]domain.Pose, error) {
	return s.repo.FavoritePoses(ctx, userID)
}

func (s *Service) IsFavorite(ctx context.Context, userID, poseID uuid.UUID) (bool, error) {
	return s.repo.IsFavorite(ctx, userID, poseID)
}

func (s *Service) Add(ctx context.Context, userID, poseID uuid.UUID) error {
	if _, err := s.poses.GetByID(ctx, poseID); err != nil {
		if errors.Is(err, poserepo.ErrNotFound) {
			return apperr.NotFound("pose not found")
		}
		return err
	}
	return s.repo.Add(ctx, userID, poseID)
}

func (s *Service) Remove(ctx context.Context, userID, poseID uuid.UUID) error {
	return s.repo.Remove(ctx, userID, poseID)
}
