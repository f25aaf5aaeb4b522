package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/authrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/userrepo"
)

type record struct {
	id           uuid.UUID
	email        string
	passwordHash string
	name         *string
	avatarURL    *string
	createdAt    time.Time
}

// Repo is an in-memory implementation of both userrepo.Repository and
// authrepo.Repository. It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID    map[uuid.UUID]*record
	byEmail map[string]uuid.UUID
}

func NewRepo() *Repo {
	return &Repo{
		byID:    make(map[uuid.UUID]*record),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Seed registers a user with the given credential material and returns its id.
// Intended for tests and the in-memory backend of the dev server.
func (r *Repo) Seed(email, passwordHash string) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.byID[id] = &record{id: id, email: email, passwordHash: passwordHash, createdAt: time.Now().UTC()}
	r.byEmail[email] = id
	return id
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (authrepo.Credential, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return authrepo.Credential{}, authrepo.ErrNotFound
	}
	rec := r.byID[id]
	return authrepo.Credential{ID: rec.id, Email: rec.email, PasswordHash: rec.passwordHash}, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	return toUser(rec), nil
}

func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name *string) (domain.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	rec.name = cloneStringPtr(name)
	return toUser(rec), nil
}

func (r *Repo) UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) (domain.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	rec.avatarURL = &url
	return toUser(rec), nil
}

func toUser(rec *record) domain.User {
	email := rec.email
	created := rec.createdAt
	return domain.User{
		ID:        rec.id,
		Name:      cloneStringPtr(rec.name),
		Email:     &email,
		AvatarURL: cloneStringPtr(rec.avatarURL),
		CreatedAt: &created,
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
