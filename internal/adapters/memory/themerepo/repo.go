package themerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/themerepo"
)

// Repo is an in-memory implementation of themerepo.Repository, keyed by the
// theme's "MMDD" id. It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[string]domain.ThemeOfDay
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[string]domain.ThemeOfDay)}
}

func (r *Repo) List(ctx context.Context) ([]domain.ThemeOfDay, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ThemeOfDay, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.ThemeOfDay, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return domain.ThemeOfDay{}, themerepo.ErrNotFound
	}
	return t, nil
}

func (r *Repo) Create(ctx context.Context, t domain.ThemeOfDay) (domain.ThemeOfDay, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[t.ID] = t
	return t, nil
}

func (r *Repo) Update(ctx context.Context, id string, u themerepo.Update) (domain.ThemeOfDay, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return domain.ThemeOfDay{}, themerepo.ErrNotFound
	}
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.ImageURL != nil {
		t.ImageURL = *u.ImageURL
	}
	r.byID[id] = t
	return t, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return themerepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
