package portfolio

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
	"github.com/danphoto/portfolio-api/internal/ports/out/portfoliorepo"
)

// Service implements portfolio use cases: categories and the images inside them.
type Service struct {
	repo   portfoliorepo.Repository
	assets assetstore.Store
	logger *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo portfoliorepo.Repository, assets assetstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, assets: assets, logger: logger, newID: uuid.New}
}

func (s *Service) Categories(ctx context.Context) ([]domain.PortfolioCategory, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (domain.PortfolioCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.PortfolioCategory{}, apperr.Validation("name is required")
	}
	return s.repo.CreateCategory(ctx, domain.PortfolioCategory{ID: s.newID(), Name: name})
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (domain.PortfolioCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.PortfolioCategory{}, apperr.Validation("name is required")
	}
	c, err := s.repo.UpdateCategory(ctx, id, name)
	if err != nil {
		if errors.Is(err, portfoliorepo.ErrCategoryNotFound) {
			return domain.PortfolioCategory{}, apperr.NotFound("portfolio category not found")
		}
		return domain.PortfolioCategory{}, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, portfoliorepo.ErrCategoryNotFound) {
			return apperr.NotFound("portfolio category not found")
		}
		return err
	}
	return nil
}

// ImagesByCategory returns one page of a category's images plus the total
// count, for the pagination envelope.
func (s *Service) ImagesByCategory(ctx context.Context, categoryID uuid.UUID, page, limit uint32) ([]domain.PortfolioImage, uint64, error) {
	items, err := s.repo.ImagesByCategory(ctx, categoryID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.CountImages(ctx, categoryID)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (s *Service) AddImage(ctx context.Context, categoryID uuid.UUID, imageBase64 string) (domain.PortfolioImage, error) {
	data, ext, err := uploads.Decode(imageBase64)
	if err != nil {
		return domain.PortfolioImage{}, err
	}

	id := s.newID()
	if err := s.assets.Save(ctx, id.String(), data, ext); err != nil {
		return domain.PortfolioImage{}, err
	}

	img, err := s.repo.AddImage(ctx, domain.PortfolioImage{
		ID:         id,
		CategoryID: categoryID,
		ImageURL:   fmt.Sprintf("/api/portfolio/images/%s/image", id),
	})
	if err != nil {
		if rmErr := s.assets.Remove(ctx, id.String()); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "image_id", id, "error", rmErr)
		}
		if errors.Is(err, portfoliorepo.ErrCategoryNotFound) {
			return domain.PortfolioImage{}, apperr.NotFound("portfolio category not found")
		}
		return domain.PortfolioImage{}, err
	}
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, portfoliorepo.ErrImageNotFound) {
			return apperr.NotFound("portfolio image not found")
		}
		return err
	}
	if err := s.assets.Remove(ctx, id.String()); err != nil {
		s.logger.WarnContext(ctx, "asset delete failed", "image_id", id, "error", err)
	}
	return nil
}

func (s *Service) ServeImage(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, id.String())
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound(fmt.Sprintf("no image for portfolio image %s", id))
		}
		return nil, "", err
	}
	return data, contentType, nil
}
