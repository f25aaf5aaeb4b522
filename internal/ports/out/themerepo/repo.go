package themerepo

import (
	"context"
	"errors"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates no theme exists for the given MMDD id.
var ErrNotFound = errors.New("theme of day not found")

// Update is a partial update; nil fields are left unchanged.
type Update struct {
	Name     *string
	ImageURL *string
}

// Repository provides access to persisted themes of the day, keyed by "MMDD".
type Repository interface {
	List(ctx context.Context) ([]domain.ThemeOfDay, error)
	GetByID(ctx context.Context, id string) (domain.ThemeOfDay, error)
	Create(ctx context.Context, t domain.ThemeOfDay) (domain.ThemeOfDay, error)
	Update(ctx context.Context, id string, u Update) (domain.ThemeOfDay, error)
	Delete(ctx context.Context, id string) error
}
