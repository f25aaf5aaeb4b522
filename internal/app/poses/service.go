package poses

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/app/uploads"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
	"github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

// Service implements pose use cases. Pose images are stored on disk keyed by
// the pose id, which the service generates before writing either side.
type Service struct {
	repo     poserepo.Repository
	hashtags hashtagrepo.Repository
	assets   assetstore.Store
	logger   *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo poserepo.Repository, hashtags hashtagrepo.Repository, assets assetstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		hashtags: hashtags,
		assets:   assets,
		logger:   logger,
		newID:    uuid.New,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Pose, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Pose, error) {
	return s.repo.ListPaginated(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Pose, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, poserepo.ErrNotFound) {
			return domain.Pose{}, apperr.NotFound("pose not found")
		}
		return domain.Pose{}, err
	}
	return p, nil
}

// Create decodes and stores the image first, then inserts the row. On insert
// failure the just-written file is removed so no row ever references a
// missing file; a failed cleanup is logged and the insert error propagated.
// Optional hashtagIDs are attached after the insert.
func (s *Service) Create(ctx context.Context, imageBase64 string, hashtagIDs []uuid.UUID) (domain.Pose, error) {
	data, ext, err := uploads.Decode(imageBase64)
	if err != nil {
		return domain.Pose{}, err
	}

	id := s.newID()
	if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
		return domain.Pose{}, err
	}

	p, err := s.repo.Create(ctx, domain.Pose{
		ID:       id,
		ImageURL: fmt.Sprintf("/api/poses/%s/image", id),
	})
	if err != nil {
		if rmErr := s.assets.Remove(ctx, id.String()); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "pose_id", id, "error", rmErr)
		}
		return domain.Pose{}, err
	}

	for _, tagID := range hashtagIDs {
		if err := s.hashtags.AttachToPose(ctx, id, tagID); err != nil {
			return domain.Pose{}, err
		}
	}
	return p, nil
}

// Delete removes the pose, its hashtag links and, best effort, its image.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.hashtags.DetachAllFromPose(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, poserepo.ErrNotFound) {
			return apperr.NotFound("pose not found")
		}
		return err
	}
	if err := s.assets.Remove(ctx, id.String()); err != nil {
		s.logger.WarnContext(ctx, "asset delete failed", "pose_id", id, "error", err)
	}
	return nil
}

// ServeImage streams a pose image; it intentionally requires no auth.
func (s *Service) ServeImage(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, id.String())
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound(fmt.Sprintf("no image for pose %s", id))
		}
		return nil, "", err
	}
	return data, contentType, nil
}
