package eventrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/eventrepo"
)

// Repo is an in-memory implementation of eventrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[uuid.UUID]domain.Event
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[uuid.UUID]domain.Event)}
}

func (r *Repo) List(ctx context.Context) ([]domain.Event, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, cloneEvent(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return domain.Event{}, eventrepo.ErrNotFound
	}
	return cloneEvent(e), nil
}

func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.CreatedAt == nil {
		now := time.Now().UTC()
		e.CreatedAt = &now
	}
	r.byID[e.ID] = cloneEvent(e)
	return cloneEvent(e), nil
}

func (r *Repo) Update(ctx context.Context, id uuid.UUID, u eventrepo.Update) (domain.Event, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return domain.Event{}, eventrepo.ErrNotFound
	}
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Place != nil {
		e.Place = *u.Place
	}
	if u.MMDD != nil {
		e.MMDD = *u.MMDD
	}
	if u.ImageURL != nil {
		e.ImageURL = *u.ImageURL
	}
	r.byID[id] = cloneEvent(e)
	return cloneEvent(e), nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return eventrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneEvent(e domain.Event) domain.Event {
	out := e
	if e.CreatedAt != nil {
		t := *e.CreatedAt
		out.CreatedAt = &t
	}
	return out
}
