package poserepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

// Repo is a Postgres implementation of poserepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Pose, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, image_url, created_at
		FROM poses
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPoses(rows)
}

func (r *Repo) ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Pose, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, image_url, created_at
		FROM poses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, int64(limit), int64(page)*int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPoses(rows)
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Pose, error) {
	if r.pool == nil {
		return domain.Pose{}, errors.New("nil postgres pool")
	}
	var p domain.Pose
	err := r.pool.QueryRow(ctx, `
		SELECT id, image_url, created_at
		FROM poses
		WHERE id = $1
	`, id).Scan(&p.ID, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Pose{}, poserepo.ErrNotFound
		}
		return domain.Pose{}, err
	}
	return p, nil
}

func (r *Repo) Create(ctx context.Context, p domain.Pose) (domain.Pose, error) {
	if r.pool == nil {
		return domain.Pose{}, errors.New("nil postgres pool")
	}
	var out domain.Pose
	err := r.pool.QueryRow(ctx, `
		INSERT INTO poses (id, image_url)
		VALUES ($1, $2)
		RETURNING id, image_url, created_at
	`, p.ID, p.ImageURL).Scan(&out.ID, &out.ImageURL, &out.CreatedAt)
	if err != nil {
		return domain.Pose{}, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM poses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return poserepo.ErrNotFound
	}
	return nil
}

func collectPoses(rows pgx.Rows) ([]domain.Pose, error) {
	out := make([]domain.Pose, 0)
	for rows.Next() {
		var p domain.Pose
		if err := rows.Scan(&p.ID, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
