package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/app/uploads"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
	"github.com/danphoto/portfolio-api/internal/ports/out/userrepo"
)

// AvatarURL is the fixed public path of the caller's own avatar. The file on
// disk is keyed by the resolved user id, so the URL never varies per user.
const AvatarURL = "/api/profile/avatar"

// Service implements profile use cases for the authenticated user.
type Service struct {
	repo   userrepo.Repository
	assets assetstore.Store
	logger *slog.Logger
}

func NewService(repo userrepo.Repository, assets assetstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, assets: assets, logger: logger}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, apperr.NotFound("user not found")
		}
		return domain.User{}, err
	}
	return u, nil
}

// UpdateName sets or clears the profile name; a nil name clears it.
func (s *Service) UpdateName(ctx context.Context, userID uuid.UUID, name *string) (domain.User, error) {
	u, err := s.repo.UpdateName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, apperr.NotFound("user not found")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) UpdateAvatar(ctx context.Context, userID uuid.UUID, imageBase64 string) (domain.User, error) {
	data, ext, err := uploads.Decode(imageBase64)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.assets.Save(ctx, userID.String(), data, ext); err != nil {
		return domain.User{}, err
	}
	u, err := s.repo.UpdateAvatarURL(ctx, userID, AvatarURL)
	if err != nil {
		if rmErr := s.assets.Remove(ctx, userID.String()); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "user_id", userID, "error", rmErr)
		}
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, apperr.NotFound("user not found")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) ServeAvatar(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, userID.String())
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound("no avatar for current user")
		}
		return nil, "", err
	}
	return data, contentType, nil
}
