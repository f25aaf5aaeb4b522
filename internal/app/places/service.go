package places

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
	"github.com/danphoto/portfolio-api/internal/ports/out/placerepo"
)

type CreateInput struct {
	Name        string
	Description string
	Address     string
	Location    string
	Latitude    float64
	Longitude   float64
	Instagram   *string
	Website     *string
	ImageBase64 string
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Address     *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Instagram   *string
	Website     *string
	ImageBase64 *string
}

// Service implements place use cases.
type Service struct {
	repo   placerepo.Repository
	assets assetstore.Store
	logger *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo placerepo.Repository, assets assetstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, assets: assets, logger: logger, newID: uuid.New}
}

func (s *Service) List(ctx context.Context) ([]domain.Place, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Place, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placerepo.ErrNotFound) {
			return domain.Place{}, apperr.NotFound("place not found")
		}
		return domain.Place{}, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Place, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Place{}, apperr.Validation("name is required")
	}
	data, ext, err := uploads.Decode(in.ImageBase64)
	if err != nil {
		return domain.Place{}, err
	}

	id := s.newID()
	if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
		return domain.Place{}, err
	}

	p, err := s.repo.Create(ctx, domain.Place{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Instagram:   in.Instagram,
		Website:     in.Website,
		ImageURL:    fmt.Sprintf("/api/places/%s/image", id),
	})
	if err != nil {
		if rmErr := s.assets.Remove(ctx, id.String()); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "place_id", id, "error", rmErr)
		}
		return domain.Place{}, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (domain.Place, error) {
	u := placerepo.Update{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Instagram:   in.Instagram,
		Website:     in.Website,
	}
	if in.ImageBase64 != nil {
		data, ext, err := uploads.Decode(*in.ImageBase64)
		if err != nil {
			return domain.Place{}, err
		}
		if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
			return domain.Place{}, err
		}
		url := fmt.Sprintf("/api/places/%s/image", id)
		u.ImageURL = &url
	}
	p, err := s.repo.Update(ctx, id, u)
	if err != nil {
		if errors.Is(err, placerepo.ErrNotFound) {
			return domain.Place{}, apperr.NotFound("place not found")
		}
		return domain.Place{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, placerepo.ErrNotFound) {
			return apperr.NotFound("place not found")
		}
		return err
	}
	if err := s.assets.Remove(ctx, id.String()); err != nil {
		s.logger.WarnContext(ctx, "asset delete failed", "place_id", id, "error", err)
	}
	return nil
}

func (s *Service) ServeImage(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, id.String())
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound(fmt.Sprintf("no image for place %s", id))
		}
		return nil, "", err
	}
	return data, contentType, nil
}
