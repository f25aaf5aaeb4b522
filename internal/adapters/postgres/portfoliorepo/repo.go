package portfoliorepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/danphoto/portfolio-api/internal/adapters/postgres"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/portfoliorepo"
)

// Repo is a Postgres implementation of portfoliorepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Categories(ctx context.Context) ([]domain.PortfolioCategory, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, cover_url
		FROM portfolio_category
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PortfolioCategory, 0)
	for rows.Next() {
		var c domain.PortfolioCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CoverURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) CreateCategory(ctx context.Context, c domain.PortfolioCategory) (domain.PortfolioCategory, error) {
	if r.pool == nil {
		return domain.PortfolioCategory{}, errors.New("nil postgres pool")
	}
	var out domain.PortfolioCategory
	err := r.pool.QueryRow(ctx, `
		INSERT INTO portfolio_category (id, name, cover_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, cover_url
	`, c.ID, c.Name, c.CoverURL).Scan(&out.ID, &out.Name, &out.CoverURL)
	if err != nil {
		return domain.PortfolioCategory{}, err
	}
	return out, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (domain.PortfolioCategory, error) {
	if r.pool == nil {
		return domain.PortfolioCategory{}, errors.New("nil postgres pool")
	}
	var out domain.PortfolioCategory
	err := r.pool.QueryRow(ctx, `
		UPDATE portfolio_category
		SET name = $2
		WHERE id = $1
		RETURNING id, name, cover_url
	`, id, name).Scan(&out.ID, &out.Name, &out.CoverURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PortfolioCategory{}, portfoliorepo.ErrCategoryNotFound
		}
		return domain.PortfolioCategory{}, err
	}
	return out, nil
}

func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM portfolio_category WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return portfoliorepo.ErrCategoryNotFound
	}
	return nil
}

func (r *Repo) ImagesByCategory(ctx context.Context, categoryID uuid.UUID, page, limit uint32) ([]domain.PortfolioImage, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, category_id, image_url, created_at
		FROM portfolio_image
		WHERE category_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, categoryID, int64(limit), int64(page)*int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PortfolioImage, 0)
	for rows.Next() {
		var img domain.PortfolioImage
		if err := rows.Scan(&img.ID, &img.CategoryID, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *Repo) CountImages(ctx context.Context, categoryID uuid.UUID) (uint64, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n uint64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM portfolio_image WHERE category_id = $1
	`, categoryID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) AddImage(ctx context.Context, img domain.PortfolioImage) (domain.PortfolioImage, error) {
	if r.pool == nil {
		return domain.PortfolioImage{}, errors.New("nil postgres pool")
	}
	var out domain.PortfolioImage
	err := r.pool.QueryRow(ctx, `
		INSERT INTO portfolio_image (id, category_id, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, category_id, image_url, created_at
	`, img.ID, img.CategoryID, img.ImageURL).Scan(&out.ID, &out.CategoryID, &out.ImageURL, &out.CreatedAt)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.ForeignKeyViolationCode {
			return domain.PortfolioImage{}, portfoliorepo.ErrCategoryNotFound
		}
		return domain.PortfolioImage{}, err
	}
	return out, nil
}

func (r *Repo) DeleteImage(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM portfolio_image WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return portfoliorepo.ErrImageNotFound
	}
	return nil
}
