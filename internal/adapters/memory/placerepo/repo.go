package placerepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/placerepo"
)

type record struct {
	place domain.Place
	seq   uint64
}

// Repo is an in-memory implementation of placerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[uuid.UUID]record
	seq  uint64
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[uuid.UUID]record)}
}

func (r *Repo) List(ctx context.Context) ([]domain.Place, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]record, 0, len(r.byID))
	for _, rec := range r.byID {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	out := make([]domain.Place, len(recs))
	for i, rec := range recs {
		out[i] = clonePlace(rec.place)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.Place{}, placerepo.ErrNotFound
	}
	return clonePlace(rec.place), nil
}

func (r *Repo) Create(ctx context.Context, p domain.Place) (domain.Place, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CreatedAt == nil {
		now := time.Now().UTC()
		p.CreatedAt = &now
	}
	r.seq++
	r.byID[p.ID] = record{place: clonePlace(p), seq: r.seq}
	return clonePlace(p), nil
}

func (r *Repo) Update(ctx context.Context, id uuid.UUID, u placerepo.Update) (domain.Place, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.Place{}, placerepo.ErrNotFound
	}
	p := rec.place
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Latitude != nil {
		p.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		p.Longitude = *u.Longitude
	}
	if u.Instagram != nil {
		p.Instagram = cloneStringPtr(u.Instagram)
	}
	if u.Website != nil {
		p.Website = cloneStringPtr(u.Website)
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	rec.place = clonePlace(p)
	r.byID[id] = rec
	return clonePlace(p), nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return placerepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func clonePlace(p domain.Place) domain.Place {
	out := p
	out.Instagram = cloneStringPtr(p.Instagram)
	out.Website = cloneStringPtr(p.Website)
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		out.CreatedAt = &t
	}
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
