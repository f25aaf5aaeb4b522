package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/authrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/userrepo"
)

// Repo is a Postgres implementation of userrepo.Repository and
// authrepo.Repository over the users table.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (authrepo.Credential, error) {
	if r.pool == nil {
		return authrepo.Credential{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM users
		WHERE email = $1
	`, email)

	var c authrepo.Credential
	if err := row.Scan(&c.ID, &c.Email, &c.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authrepo.Credential{}, authrepo.ErrNotFound
		}
		return authrepo.Credential{}, err
	}
	return c, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if r.pool == nil {
		return domain.User{}, errors.New("nil postgres pool")
	}
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT id, name, email, avatar_url, created_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name *string) (domain.User, error) {
	if r.pool == nil {
		return domain.User{}, errors.New("nil postgres pool")
	}
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2
		WHERE id = $1
		RETURNING id, name, email, avatar_url, created_at
	`, id, name))
}

func (r *Repo) UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) (domain.User, error) {
	if r.pool == nil {
		return domain.User{}, errors.New("nil postgres pool")
	}
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users
		SET avatar_url = $2
		WHERE id = $1
		RETURNING id, name, email, avatar_url, created_at
	`, id, url))
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, userrepo.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
