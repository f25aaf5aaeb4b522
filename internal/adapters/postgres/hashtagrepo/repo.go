package hashtagrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
)

// Repo is a Postgres implementation of hashtagrepo.Repository. Link inserts
// use ON CONFLICT DO NOTHING to honor the port's idempotency contract.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Hashtag, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name
		FROM hashtags
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHashtags(rows)
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hashtag, error) {
	if r.pool == nil {
		return domain.Hashtag{}, errors.New("nil postgres pool")
	}
	var h domain.Hashtag
	err := r.pool.QueryRow(ctx, `
		SELECT id, name
		FROM hashtags
		WHERE id = $1
	`, id).Scan(&h.ID, &h.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hashtag{}, hashtagrepo.ErrNotFound
		}
		return domain.Hashtag{}, err
	}
	return h, nil
}

func (r *Repo) Create(ctx context.Context, h domain.Hashtag) (domain.Hashtag, error) {
	if r.pool == nil {
		return domain.Hashtag{}, errors.New("nil postgres pool")
	}
	var out domain.Hashtag
	err := r.pool.QueryRow(ctx, `
		INSERT INTO hashtags (id, name)
		VALUES ($1, $2)
		RETURNING id, name
	`, h.ID, h.Name).Scan(&out.ID, &out.Name)
	if err != nil {
		return domain.Hashtag{}, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM hashtags WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return hashtagrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) HashtagsByPose(ctx context.Context, poseID uuid.UUID) ([]domain.Hashtag, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT h.id, h.name
		FROM hashtags h
		JOIN hashtag_pose hp ON hp.hashtag_id = h.id
		WHERE hp.pose_id = $1
		ORDER BY h.name
	`, poseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHashtags(rows)
}

func (r *Repo) AttachToPose(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO hashtag_pose (hashtag_id, pose_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, hashtagID, poseID)
	return err
}

func (r *Repo) DetachFromPose(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM hashtag_pose
		WHERE hashtag_id = $1 AND pose_id = $2
	`, hashtagID, poseID)
	return err
}

func (r *Repo) DetachAllFromPose(ctx context.Context, poseID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM hashtag_pose WHERE pose_id = $1`, poseID)
	return err
}

func (r *Repo) AttachToPost(ctx context.Context, postID uuid.UUID, hashtagIDs []uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, tagID := range hashtagIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO hashtag_post (hashtag_id, post_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, tagID, postID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) PosesByHashtag(ctx context.Context, hashtagID uuid.UUID) ([]domain.Pose, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.image_url, p.created_at
		FROM poses p
		JOIN hashtag_pose hp ON hp.pose_id = p.id
		WHERE hp.hashtag_id = $1
		ORDER BY p.created_at DESC
	`, hashtagID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPoses(rows)
}

func (r *Repo) PosesByHashtagPaginated(ctx context.Context, hashtagID uuid.UUID, page, limit uint32) ([]domain.Pose, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.image_url, p.created_at
		FROM poses p
		JOIN hashtag_pose hp ON hp.pose_id = p.id
		WHERE hp.hashtag_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, hashtagID, int64(limit), int64(page)*int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPoses(rows)
}

func collectHashtags(rows pgx.Rows) ([]domain.Hashtag, error) {
	out := make([]domain.Hashtag, 0)
	for rows.Next() {
		var h domain.Hashtag
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
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
