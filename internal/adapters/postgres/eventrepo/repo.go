package eventrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/eventrepo"
)

// Repo is a Postgres implementation of eventrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, name, place, mmdd, image_url, created_at`

func (r *Repo) List(ctx context.Context) ([]domain.Event, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Event, 0)
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Place, &e.MMDD, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if r.pool == nil {
		return domain.Event{}, errors.New("nil postgres pool")
	}
	return scanEvent(r.pool.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id))
}

func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	if r.pool == nil {
		return domain.Event{}, errors.New("nil postgres pool")
	}
	return scanEvent(r.pool.QueryRow(ctx, `
		INSERT INTO events (id, name, place, mmdd, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+eventColumns+`
	`, e.ID, e.Name, e.Place, e.MMDD, e.ImageURL))
}

func (r *Repo) Update(ctx context.Context, id uuid.UUID, u eventrepo.Update) (domain.Event, error) {
	if r.pool == nil {
		return domain.Event{}, errors.New("nil postgres pool")
	}
	return scanEvent(r.pool.QueryRow(ctx, `
		UPDATE events
		SET name      = COALESCE($2, name),
		    place     = COALESCE($3, place),
		    mmdd      = COALESCE($4, mmdd),
		    image_url = COALESCE($5, image_url)
		WHERE id = $1
		RETURNING `+eventColumns+`
	`, id, u.Name, u.Place, u.MMDD, u.ImageURL))
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return eventrepo.ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Name, &e.Place, &e.MMDD, &e.ImageURL, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, eventrepo.ErrNotFound
		}
		return domain.Event{}, err
	}
	return e, nil
}
