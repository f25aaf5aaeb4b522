package portfoliorepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/portfoliorepo"
)

type imageRecord struct {
	img domain.PortfolioImage
	seq uint64
}

// Repo is an in-memory implementation of portfoliorepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	categories map[uuid.UUID]domain.PortfolioCategory
	images     map[uuid.UUID]imageRecord
	seq        uint64
}

func NewRepo() *Repo {
	return &Repo{
		categories: make(map[uuid.UUID]domain.PortfolioCategory),
		images:     make(map[uuid.UUID]imageRecord),
	}
}

func (r *Repo) Categories(ctx context.Context) ([]domain.PortfolioCategory, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PortfolioCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repo) CreateCategory(ctx context.Context, c domain.PortfolioCategory) (domain.PortfolioCategory, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[c.ID] = c
	return c, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (domain.PortfolioCategory, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return domain.PortfolioCategory{}, portfoliorepo.ErrCategoryNotFound
	}
	c.Name = name
	r.categories[id] = c
	return c, nil
}

func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return portfoliorepo.ErrCategoryNotFound
	}
	delete(r.categories, id)
	for imgID, rec := range r.images {
		if rec.img.CategoryID == id {
			delete(r.images, imgID)
		}
	}
	return nil
}

func (r *Repo) ImagesByCategory(ctx context.Context, categoryID uuid.UUID, page, limit uint32) ([]domain.PortfolioImage, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]imageRecord, 0)
	for _, rec := range r.images {
		if rec.img.CategoryID == categoryID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	start := int(page) * int(limit)
	if start >= len(recs) {
		return []domain.PortfolioImage{}, nil
	}
	end := start + int(limit)
	if end > len(recs) {
		end = len(recs)
	}

	out := make([]domain.PortfolioImage, 0, end-start)
	for _, rec := range recs[start:end] {
		out = append(out, cloneImage(rec.img))
	}
	return out, nil
}

func (r *Repo) CountImages(ctx context.Context, categoryID uuid.UUID) (uint64, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n uint64
	for _, rec := range r.images {
		if rec.img.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *Repo) AddImage(ctx context.Context, img domain.PortfolioImage) (domain.PortfolioImage, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[img.CategoryID]; !ok {
		return domain.PortfolioImage{}, portfoliorepo.ErrCategoryNotFound
	}
	if img.CreatedAt == nil {
		now := time.Now().UTC()
		img.CreatedAt = &now
	}
	r.seq++
	r.images[img.ID] = imageRecord{img: cloneImage(img), seq: r.seq}
	return cloneImage(img), nil
}

func (r *Repo) DeleteImage(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[id]; !ok {
		return portfoliorepo.ErrImageNotFound
	}
	delete(r.images, id)
	return nil
}

func cloneImage(img domain.PortfolioImage) domain.PortfolioImage {
	out := img
	if img.CreatedAt != nil {
		t := *img.CreatedAt
		out.CreatedAt = &t
	}
	return out
}
