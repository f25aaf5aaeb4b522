package events

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
	"github.com/danphoto/portfolio-api/internal/ports/out/eventrepo"
)

type CreateInput struct {
	Name        string
	Place       string
	MMDD        string
	ImageBase64 string
}

// UpdateInput is a partial update; nil fields are left unchanged.
// A non-nil ImageBase64 replaces the stored image in place.
type UpdateInput struct {
	Name        *string
	Place       *string
	MMDD        *string
	ImageBase64 *string
}

// Service implements event use cases.
type Service struct {
	repo   eventrepo.Repository
	assets assetstore.Store
	logger *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo eventrepo.Repository, assets assetstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, assets: assets, logger: logger, newID: uuid.New}
}

func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return domain.Event{}, apperr.NotFound("event not found")
		}
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Event, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Event{}, apperr.Validation("name is required")
	}
	data, ext, err := uploads.Decode(in.ImageBase64)
	if err != nil {
		return domain.Event{}, err
	}

	id := s.newID()
	if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
		return domain.Event{}, err
	}

	e, err := s.repo.Create(ctx, domain.Event{
		ID:       id,
		Name:     in.Name,
		Place:    in.Place,
		MMDD:     in.MMDD,
		ImageURL: fmt.Sprintf("/api/events/%s/image", id),
	})
	if err != nil {
		if rmErr := s.assets.Remove(ctx, id.String()); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "event_id", id, "error", rmErr)
		}
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (domain.Event, error) {
	u := eventrepo.Update{Name: in.Name, Place: in.Place, MMDD: in.MMDD}

	if in.ImageBase64 != nil && strings.TrimSpace(*in.ImageBase64) != "" {
		data, ext, err := uploads.Decode(*in.ImageBase64)
		if err != nil {
			return domain.Event{}, err
		}
		if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
			return domain.Event{}, err
		}
		url := fmt.Sprintf("/api/events/%s/image", id)
		u.ImageURL = &url
	}

	e, err := s.repo.Update(ctx, id, u)
	if err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return domain.Event{}, apperr.NotFound("event not found")
		}
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventrepo.ErrNotFound) {
			return apperr.NotFound("event not found")
		}
		return err
	}
	if err := s.assets.Remove(ctx, id.String()); err != nil {
		s.logger.WarnContext(ctx, "asset delete failed", "event_id", id, "error", err)
	}
	return nil
}

func (s *Service) ServeImage(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, id.String())
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound(fmt.Sprintf("no image for event %s", id))
		}
		return nil, "", err
	}
	return data, contentType, nil
}
