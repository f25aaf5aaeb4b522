package postrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/postrepo"
)

type record struct {
	post domain.Post
	seq  uint64
}

// Repo is an in-memory implementation of postrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[uuid.UUID]record
	seq  uint64
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[uuid.UUID]record)}
}

func (r *Repo) List(ctx context.Context) ([]domain.Post, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirstLocked(nil), nil
}

func (r *Repo) ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Post, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.newestFirstLocked(nil)
	start := int(page) * int(limit)
	if start >= len(all) {
		return []domain.Post{}, nil
	}
	end := start + int(limit)
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *Repo) Count(ctx context.Context) (uint64, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.byID)), nil
}

func (r *Repo) ListByTheme(ctx context.Context, themeID string) ([]domain.Post, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirstLocked(func(p domain.Post) bool {
		return p.ThemeOfDayID != nil && *p.ThemeOfDayID == themeID
	}), nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.Post{}, postrepo.ErrNotFound
	}
	return clonePost(rec.post), nil
}

func (r *Repo) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CreatedAt == nil {
		now := time.Now().UTC()
		p.CreatedAt = &now
	}
	r.seq++
	r.byID[p.ID] = record{post: clonePost(p), seq: r.seq}
	return clonePost(p), nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return postrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *Repo) newestFirstLocked(keep func(domain.Post) bool) []domain.Post {
	recs := make([]record, 0, len(r.byID))
	for _, rec := range r.byID {
		if keep != nil && !keep(rec.post) {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	out := make([]domain.Post, len(recs))
	for i, rec := range recs {
		out[i] = clonePost(rec.post)
	}
	return out
}

func clonePost(p domain.Post) domain.Post {
	out := p
	out.Description = cloneStringPtr(p.Description)
	out.ImageURL = cloneStringPtr(p.ImageURL)
	out.ThemeOfDayID = cloneStringPtr(p.ThemeOfDayID)
	if p.UserID != nil {
		id := *p.UserID
		out.UserID = &id
	}
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
