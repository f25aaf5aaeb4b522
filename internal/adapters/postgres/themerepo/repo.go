package themerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/themerepo"
)

// Repo is a Postgres implementation of themerepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.ThemeOfDay, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, image_url
		FROM theme_of_the_day
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ThemeOfDay, 0)
	for rows.Next() {
		var t domain.ThemeOfDay
		if err := rows.Scan(&t.ID, &t.Name, &t.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.ThemeOfDay, error) {
	if r.pool == nil {
		return domain.ThemeOfDay{}, errors.New("nil postgres pool")
	}
	return scanTheme(r.pool.QueryRow(ctx, `
		SELECT id, name, image_url
		FROM theme_of_the_day
		WHERE id = $1
	`, id))
}

func (r *Repo) Create(ctx context.Context, t domain.ThemeOfDay) (domain.ThemeOfDay, error) {
	if r.pool == nil {
		return domain.ThemeOfDay{}, errors.New("nil postgres pool")
	}
	return scanTheme(r.pool.QueryRow(ctx, `
		INSERT INTO theme_of_the_day (id, name, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, image_url
	`, t.ID, t.Name, t.ImageURL))
}

func (r *Repo) Update(ctx context.Context, id string, u themerepo.Update) (domain.ThemeOfDay, error) {
	if r.pool == nil {
		return domain.ThemeOfDay{}, errors.New("nil postgres pool")
	}
	return scanTheme(r.pool.QueryRow(ctx, `
		UPDATE theme_of_the_day
		SET name      = COALESCE($2, name),
		    image_url = COALESCE($3, image_url)
		WHERE id = $1
		RETURNING id, name, image_url
	`, id, u.Name, u.ImageURL))
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM theme_of_the_day WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return themerepo.ErrNotFound
	}
	return nil
}

func scanTheme(row pgx.Row) (domain.ThemeOfDay, error) {
	var t domain.ThemeOfDay
	if err := row.Scan(&t.ID, &t.Name, &t.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ThemeOfDay{}, themerepo.ErrNotFound
		}
		return domain.ThemeOfDay{}, err
	}
	return t, nil
}
