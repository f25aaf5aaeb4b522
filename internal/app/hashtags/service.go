package hashtags

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

// Service implements hashtag use cases, including the links between
// hashtags and poses or posts.
type Service struct {
	repo   hashtagrepo.Repository
	poses  poserepo.Repository
	logger *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo hashtagrepo.Repository, poses poserepo.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, poses: poses, logger: logger, newID: uuid.New}
}

func (s *Service) List(ctx context.Context) ([]domain.Hashtag, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Hashtag, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hashtagrepo.ErrNotFound) {
			return domain.Hashtag{}, apperr.NotFound("hashtag not found")
		}
		return domain.Hashtag{}, err
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, name string) (domain.Hashtag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Hashtag{}, apperr.Validation("name is required")
	}
	return s.repo.Create(ctx, domain.Hashtag{ID: s.newID(), Name: name})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, hashtagrepo.ErrNotFound) {
			return apperr.NotFound("hashtag not found")
		}
		return err
	}
	return nil
}

func (s *Service) HashtagsByPose(ctx context.Context, poseID uuid.UUID) ([]domain.Hashtag, error) {
	if _, err := s.poses.GetByID(ctx, poseID); err != nil {
		if errors.Is(err, poserepo.ErrNotFound) {
			return nil, apperr.NotFound("pose not found")
		}
		return nil, err
	}
	return s.repo.HashtagsByPose(ctx, poseID)
}

func (s *Service) AttachToPose(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	if err := s.requirePoseAndHashtag(ctx, poseID, hashtagID); err != nil {
		return err
	}
	return s.repo.AttachToPose(ctx, poseID, hashtagID)
}

// ReplacePoseHashtags makes the given set the pose's complete hashtag list.
func (s *Service) ReplacePoseHashtags(ctx context.Context, poseID uuid.UUID, hashtagIDs []uuid.UUID) ([]domain.Hashtag, error) {
	if _, err := s.poses.GetByID(ctx, poseID); err != nil {
		if errors.Is(err, poserepo.ErrNotFound) {
			return nil, apperr.NotFound("pose not found")
		}
		return nil, err
	}
	for _, tagID := range hashtagIDs {
		if _, err := s.repo.GetByID(ctx, tagID); err != nil {
			if errors.Is(err, hashtagrepo.ErrNotFound) {
				return nil, apperr.NotFound("hashtag not found")
			}
			return nil, err
		}
	}
	if err := s.repo.DetachAllFromPose(ctx, poseID); err != nil {
		return nil, err
	}
	for _, tagID := range hashtagIDs {
		if err := s.repo.AttachToPose(ctx, poseID, tagID); err != nil {
			return nil, err
		}
	}
	return s.repo.HashtagsByPose(ctx, poseID)
}

// AttachToPost links several hashtags to a post; already-linked pairs are
// no-ops.
func (s *Service) AttachToPost(ctx context.Context, postID uuid.UUID, hashtagIDs []uuid.UUID) error {
	for _, tagID := range hashtagIDs {
		if _, err := s.repo.GetByID(ctx, tagID); err != nil {
			if errors.Is(err, hashtagrepo.ErrNotFound) {
				return apperr.NotFound("hashtag not found")
			}
			return err
		}
	}
	return s.repo.AttachToPost(ctx, postID, hashtagIDs)
}

func (s *Service) DetachFromPose(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	if err := s.requirePoseAndHashtag(ctx, poseID, hashtagID); err != nil {
		return err
	}
	return s.repo.DetachFromPose(ctx, poseID, hashtagID)
}

func (s *Service) PosesByHashtag(ctx context.Context, hashtagID uuid.UUID) ([]domain.Pose, error) {
	if _, err := s.repo.GetByID(ctx, hashtagID); err != nil {
		if errors.Is(err, hashtagrepo.ErrNotFound) {
			return nil, apperr.NotFound("hashtag not found")
		}
		return nil, err
	}
	return s.repo.PosesByHashtag(ctx, hashtagID)
}

func (s *Service) PosesByHashtagPaginated(ctx context.Context, hashtagID uuid.UUID, page, limit uint32) ([]domain.Pose, error) {
	if _, err := s.repo.GetByID(ctx, hashtagID); err != nil {
		if errors.Is(err, hashtagrepo.ErrNotFound) {
			return nil, apperr.NotFound("hashtag not found")
		}
		return nil, err
	}
	return s.repo.PosesByHashtagPaginated(ctx, hashtagID, page, limit)
}

func (s *Service) requirePoseAndHashtag(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	if _, err := s.poses.GetByID(ctx, poseID); err != nil {
		if errors.Is(err, poserepo.ErrNotFound) {
			return apperr.NotFound("pose not found")
		}
		return err
	}
	if _, err := s.repo.GetByID(ctx, hashtagID); err != nil {
		if errors.Is(err, hashtagrepo.ErrNotFound) {
			return apperr.NotFound("hashtag not found")
		}
		return err
	}
	return nil
}
