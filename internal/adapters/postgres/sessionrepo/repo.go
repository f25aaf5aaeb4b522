package sessionrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
)

// Repo is a Postgres implementation of sessionrepo.Repository. Membership
// inserts use ON CONFLICT DO NOTHING to honor the port's idempotency contract.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Session, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, cover_url, created_at
		FROM sessions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Session, 0)
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.CoverURL, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if r.pool == nil {
		return domain.Session{}, errors.New("nil postgres pool")
	}
	return scanSession(r.pool.QueryRow(ctx, `
		SELECT id, name, cover_url, created_at
		FROM sessions
		WHERE id = $1
	`, id))
}

func (r *Repo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	if r.pool == nil {
		return domain.Session{}, errors.New("nil postgres pool")
	}
	return scanSession(r.pool.QueryRow(ctx, `
		INSERT INTO sessions (id, name, cover_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, cover_url, created_at
	`, s.ID, s.Name, s.CoverURL))
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return sessionrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) PosesBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Pose, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.image_url, p.created_at
		FROM poses p
		JOIN session_pose sp ON sp.pose_id = p.id
		WHERE sp.session_id = $1
		ORDER BY sp.created_at
	`, sessionID)
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

func (r *Repo) AddPoses(ctx context.Context, sessionID uuid.UUID, poseIDs []uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, poseID := range poseIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO session_pose (session_id, pose_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, sessionID, poseID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) RemovePose(ctx context.Context, sessionID, poseID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM session_pose
		WHERE session_id = $1 AND pose_id = $2
	`, sessionID, poseID)
	return err
}

func (r *Repo) UpdateCover(ctx context.Context, sessionID uuid.UUID, coverURL string) (domain.Session, error) {
	if r.pool == nil {
		return domain.Session{}, errors.New("nil postgres pool")
	}
	return scanSession(r.pool.QueryRow(ctx, `
		UPDATE sessions
		SET cover_url = $2
		WHERE id = $1
		RETURNING id, name, cover_url, created_at
	`, sessionID, coverURL))
}

func scanSession(row pgx.Row) (domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.Name, &s.CoverURL, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, sessionrepo.ErrNotFound
		}
		return domain.Session{}, err
	}
	return s, nil
}
