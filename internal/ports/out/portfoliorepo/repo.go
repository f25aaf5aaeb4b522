package portfoliorepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

var (
	// ErrCategoryNotFound indicates the requested portfolio category does not exist.
	ErrCategoryNotFound = errors.New("portfolio category not found")

	// ErrImageNotFound indicates the requested portfolio image does not exist.
	ErrImageNotFound = errors.New("portfolio image not found")
)

// Repository provides access to portfolio categories and their images.
type Repository interface {
	// Categories returns all categories ordered by name ascending.
	Categories(ctx context.Context) ([]domain.PortfolioCategory, error)
	CreateCategory(ctx context.Context, c domain.PortfolioCategory) (domain.PortfolioCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (domain.PortfolioCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ImagesByCategory returns the given zero-based page of a category's
	// images, newest first.
	ImagesByCategory(ctx context.Context, categoryID uuid.UUID, page, limit uint32) ([]domain.PortfolioImage, error)

	// CountImages returns the total images in a category, for pagination
	// metadata.
	CountImages(ctx context.Context, categoryID uuid.UUID) (uint64, error)

	// AddImage persists an image whose id the caller already generated
	// (the image file on disk is named after it).
	AddImage(ctx context.Context, img domain.PortfolioImage) (domain.PortfolioImage, error)

	DeleteImage(ctx context.Context, id uuid.UUID) error
}
