package themes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/app/uploads"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
	clockport "github.com/danphoto/portfolio-api/internal/ports/out/clock"
	"github.com/danphoto/portfolio-api/internal/ports/out/themerepo"
)

type CreateInput struct {
	ID          string
	Name        string
	ImageBase64 string
}

type UpdateInput struct {
	Name        *string
	ImageBase64 *string
}

// Service implements theme-of-the-day use cases. Theme ids are "MMDD"
// strings; Today looks up the theme for the current UTC day.
type Service struct {
	repo   themerepo.Repository
	assets assetstore.Store
	clk    clockport.Clock
	logger *slog.Logger
}

func NewService(repo themerepo.Repository, assets assetstore.Store, clk clockport.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, assets: assets, clk: clk, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]domain.ThemeOfDay, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.ThemeOfDay, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, themerepo.ErrNotFound) {
			return domain.ThemeOfDay{}, apperr.NotFound("theme of day not found")
		}
		return domain.ThemeOfDay{}, err
	}
	return t, nil
}

// Today returns the theme whose id equals the current UTC "MMDD".
func (s *Service) Today(ctx context.Context) (domain.ThemeOfDay, error) {
	mmdd := s.clk.Now().UTC().Format("0102")
	t, err := s.repo.GetByID(ctx, mmdd)
	if err != nil {
		if errors.Is(err, themerepo.ErrNotFound) {
			return domain.ThemeOfDay{}, apperr.NotFound(fmt.Sprintf("no theme of the day for today (%s)", mmdd))
		}
		return domain.ThemeOfDay{}, err
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.ThemeOfDay, error) {
	id := strings.TrimSpace(in.ID)
	if !validMMDD(id) {
		return domain.ThemeOfDay{}, apperr.Validation("id must be an MMDD string, e.g. 0714")
	}
	data, ext, err := uploads.Decode(in.ImageBase64)
	if err != nil {
		return domain.ThemeOfDay{}, err
	}
	if err := s.assets.Save(ctx, id, data, ext); err != nil {
		return domain.ThemeOfDay{}, err
	}

	t, err := s.repo.Create(ctx, domain.ThemeOfDay{
		ID:       id,
		Name:     in.Name,
		ImageURL: fmt.Sprintf("/api/theme-of-the-day/%s/image", id),
	})
	if err != nil {
		if rmErr := s.assets.Remove(ctx, id); rmErr != nil {
			s.logger.WarnContext(ctx, "compensating asset delete failed", "theme_id", id, "error", rmErr)
		}
		return domain.ThemeOfDay{}, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (domain.ThemeOfDay, error) {
	u := themerepo.Update{Name: in.Name}

	if in.ImageBase64 != nil && strings.TrimSpace(*in.ImageBase64) != "" {
		data, ext, err := uploads.Decode(*in.ImageBase64)
		if err != nil {
			return domain.ThemeOfDay{}, err
		}
		if err := s.assets.Save(ctx, id, data, ext); err != nil {
			return domain.ThemeOfDay{}, err
		}
		url := fmt.Sprintf("/api/theme-of-the-day/%s/image", id)
		u.ImageURL = &url
	}

	t, err := s.repo.Update(ctx, id, u)
	if err != nil {
		if errors.Is(err, themerepo.ErrNotFound) {
			return domain.ThemeOfDay{}, apperr.NotFound("theme of day not found")
		}
		return domain.ThemeOfDay{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, themerepo.ErrNotFound) {
			return apperr.NotFound("theme of day not found")
		}
		return err
	}
	if err := s.assets.Remove(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "asset delete failed", "theme_id", id, "error", err)
	}
	return nil
}

func (s *Service) ServeImage(ctx context.Context, id string) ([]byte, string, error) {
	data, contentType, err := s.assets.Serve(ctx, id)
	if err != nil {
		if errors.Is(err, assetstore.ErrNotFound) {
			return nil, "", apperr.NotFound(fmt.Sprintf("no image for theme %s", id))
		}
		return nil, "", err
	}
	return data, contentType, nil
}

func validMMDD(id string) bool {
	if len(id) != 4 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
