package poserepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

type record struct {
	pose domain.Pose
	seq  uint64
}

// Repo is an in-memory implementation of poserepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[uuid.UUID]record
	seq  uint64
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[uuid.UUID]record)}
}

func (r *Repo) List(ctx context.Context) ([]domain.Pose, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirstLocked(), nil
}

func (r *Repo) ListPaginated(ctx context.Context, page, limit uint32) ([]domain.Pose, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(r.newestFirstLocked(), page, limit), nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Pose, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.Pose{}, poserepo.ErrNotFound
	}
	return clonePose(rec.pose), nil
}

func (r *Repo) Create(ctx context.Context, p domain.Pose) (domain.Pose, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CreatedAt == nil {
		now := time.Now().UTC()
		p.CreatedAt = &now
	}
	r.seq++
	r.byID[p.ID] = record{pose: clonePose(p), seq: r.seq}
	return clonePose(p), nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return poserepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *Repo) newestFirstLocked() []domain.Pose {
	recs := make([]record, 0, len(r.byID))
	for _, rec := range r.byID {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	out := make([]domain.Pose, len(recs))
	for i, rec := range recs {
		out[i] = clonePose(rec.pose)
	}
	return out
}

func paginate(ps []domain.Pose, page, limit uint32) []domain.Pose {
	start := int(page) * int(limit)
	if start >= len(ps) {
		return []domain.Pose{}
	}
	end := start + int(limit)
	if end > len(ps) {
		end = len(ps)
	}
	return ps[start:end]
}

func clonePose(p domain.Pose) domain.Pose {
	out := p
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		out.CreatedAt = &t
	}
	return out
}
