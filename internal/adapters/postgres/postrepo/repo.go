package postrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/postrepo"
)

// Repo is a Postgres implementation of postrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const postColumns = `id, description, image_url, user_id, theme_of_the_day_id, created_at`

func (r *Repo) List(ctx context.Context) ([]domain.Post, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *Repo) ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Post, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, int64(limit), int64(page)*int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *Repo) Count(ctx context.Context) (uint64, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n uint64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) ListByTheme(ctx context.Context, themeID string) ([]domain.Post, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE theme_of_the_day_id = $1
		ORDER BY created_at DESC
	`, themeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error) {
	if r.pool == nil {
		return domain.Post{}, errors.New("nil postgres pool")
	}
	return scanPost(r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id))
}

func (r *Repo) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	if r.pool == nil {
		return domain.Post{}, errors.New("nil postgres pool")
	}
	return scanPost(r.pool.QueryRow(ctx, `
		INSERT INTO posts (id, description, image_url, user_id, theme_of_the_day_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+postColumns+`
	`, p.ID, p.Description, p.ImageURL, p.UserID, p.ThemeOfDayID))
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return postrepo.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Description, &p.ImageURL, &p.UserID, &p.ThemeOfDayID, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Post{}, postrepo.ErrNotFound
		}
		return domain.Post{}, err
	}
	return p, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	out := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Description, &p.ImageURL, &p.UserID, &p.ThemeOfDayID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
