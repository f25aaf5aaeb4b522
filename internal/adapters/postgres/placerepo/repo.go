package placerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/placerepo"
)

// Repo is a Postgres implementation of placerepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const placeColumns = `id, name, description, address, location, latitude, longitude, instagram, website, image_url, created_at`

func (r *Repo) List(ctx context.Context) ([]domain.Place, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+placeColumns+`
		FROM places
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Place, 0)
	for rows.Next() {
		p, err := scanPlaceRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error) {
	if r.pool == nil {
		return domain.Place{}, errors.New("nil postgres pool")
	}
	return scanPlace(r.pool.QueryRow(ctx, `
		SELECT `+placeColumns+`
		FROM places
		WHERE id = $1
	`, id))
}

func (r *Repo) Create(ctx context.Context, p domain.Place) (domain.Place, error) {
	if r.pool == nil {
		return domain.Place{}, errors.New("nil postgres pool")
	}
	return scanPlace(r.pool.QueryRow(ctx, `
		INSERT INTO places (id, name, description, address, location, latitude, longitude, instagram, website, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+placeColumns+`
	`, p.ID, p.Name, p.Description, p.Address, p.Location, p.Latitude, p.Longitude, p.Instagram, p.Website, p.ImageURL))
}

func (r *Repo) Update(ctx context.Context, id uuid.UUID, u placerepo.Update) (domain.Place, error) {
	if r.pool == nil {
		return domain.Place{}, errors.New("nil postgres pool")
	}
	return scanPlace(r.pool.QueryRow(ctx, `
		UPDATE places
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    address     = COALESCE($4, address),
		    location    = COALESCE($5, location),
		    latitude    = COALESCE($6, latitude),
		    longitude   = COALESCE($7, longitude),
		    instagram   = COALESCE($8, instagram),
		    website     = COALESCE($9, website),
		    image_url   = COALESCE($10, image_url)
		WHERE id = $1
		RETURNING `+placeColumns+`
	`, id, u.Name, u.Description, u.Address, u.Location, u.Latitude, u.Longitude, u.Instagram, u.Website, u.ImageURL))
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return placerepo.ErrNotFound
	}
	return nil
}

func scanPlace(row pgx.Row) (domain.Place, error) {
	p, err := scanPlaceRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Place{}, placerepo.ErrNotFound
		}
		return domain.Place{}, err
	}
	return p, nil
}

func scanPlaceRow(row pgx.Row) (domain.Place, error) {
	var p domain.Place
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Address, &p.Location,
		&p.Latitude, &p.Longitude, &p.Instagram, &p.Website,
		&p.ImageURL, &p.CreatedAt,
	)
	return p, err
}
