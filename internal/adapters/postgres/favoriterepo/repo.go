package favoriterepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// Repo is a Postgres implementation of favoriterepo.Repository. Inserts use
// ON CONFLICT DO NOTHING to honor the port's idempotency contract.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) IsFavorite(ctx context.Context, userID, poseID uuid.UUID) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = $1 AND pose_id = $2
		)
	`, userID, poseID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) Add(ctx context.Context, userID, poseID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO favorites (user_id, pose_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, poseID)
	return err
}

func (r *Repo) Remove(ctx context.Context, userID, poseID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND pose_id = $2
	`, userID, poseID)
	return err
}

func (r *Repo) RemoveMany(ctx context.Context, userID uuid.UUID, poseIDs []uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	if len(poseIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND pose_id = ANY($2)
	`, userID, poseIDs)
	return err
}

func (r *Repo) FavoritePoses(ctx context.Context, userID uuid.UUID) ([]domain.Pose, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.image_url, p.created_at
		FROM poses p
		JOIN favorites f ON f.pose_id = p.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
