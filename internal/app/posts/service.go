package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/app/uploads"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
	"github.com/danphoto/portfolio-api/internal/ports/out/authrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/postrepo"
)

type CreateInput struct {
	Description  *string
	ImageBase64  string
	ThemeOfDayID string
	// AuthorEmail is the verified token subject. A subject that no longer
	// resolves produces an authorless post rather than a failure.
	AuthorEmail string
}

// Service implements post use cases.
type Service struct {
	repo   postrepo.Repository
	auth   authrepo.Repository
	assets assetstore.Store
	logger *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo postrepo.Repository, auth authrepo.Repository, assets assetstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, auth: auth, assets: assets, logger: logger, newID: uuid.New}
}

func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Post, error) {
	return s.repo.ListPaginated(ctx, page, limit)
}

func (s *Service) Count(ctx context.Context) (uint64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) ListByTheme(ctx context.Context, themeID string) ([]domain.Post, error) {
	return s.repo.ListByTheme(ctx, themeID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postrepo.ErrNotFound) {
			return domain.Post{}, apperr.NotFound("post not found")
		}
		return domain.Post{}, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Post, error) {
	themeID := strings.TrimSpace(in.ThemeOfDayID)
	if themeID == "" {
		return domain.Post{}, apperr.Validation("theme_of_the_day_id is required")
	}
	data, ext, err := uploads.Decode(in.ImageBase64)
	if err != nil {
		return domain.Post{}, err
	}

	var authorID *uuid.UUID
	cred, err := s.auth.GetByEmail(ctx, in.AuthorEmail)
	switch {
	case err == nil:
		authorID = &cred.ID
	case errors.Is(err, authrepo.ErrNotFound):
		// keep the post authorless
	default:
		return domain.Post{}, err
	}

	id := s.newID()
	if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
		return domain.Post{}, err
	}

	url := fmt.Sprintf("/api/posts/%s/image", id)
	p, err := s.repo.Create(ctx, domain.Post{
		ID:           id,
		Description:  in.Description,
		ImageURL:     &url,
		UserID:       authorID,
		ThemeOfDayID: &themeID,
	})
	if err != nil {
		if rmErr := s.assets.Remove(ctx, id.String()); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "post_id", id, "error", rmErr)
		}
		return domain.Post{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, postrepo.ErrNotFound) {
			return apperr.NotFound("post not found")
		}
		return err
	}
	if err := s.assets.Remove(ctx, id.String()); err != nil {
		s.logger.WarnContext(ctx, "asset delete failed", "post_id", id, "error", err)
	}
	return nil
}

func (s *Service) ServeImage(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, id.String())
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound(fmt.Sprintf("no image for post %s", id))
		}
		return nil, "", err
	}
	return data, contentType, nil
}
