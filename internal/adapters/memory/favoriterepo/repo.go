package favoriterepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

type link struct {
	poseID uuid.UUID
	seq    uint64
}

// Repo is an in-memory implementation of favoriterepo.Repository. Pose rows
// live in the pose repository; this repo only tracks (user, pose) pairs.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byUser map[uuid.UUID]map[uuid.UUID]uint64 // userID -> poseID -> seq
	seq    uint64

	poses poserepo.Repository
}

func NewRepo(poses poserepo.Repository) *Repo {
	return &Repo{byUser: make(map[uuid.UUID]map[uuid.UUID]uint64), poses: poses}
}

func (r *Repo) IsFavorite(ctx context.Context, userID, poseID uuid.UUID) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUser[userID][poseID]
	return ok, nil
}

func (r *Repo) Add(ctx context.Context, userID, poseID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[uuid.UUID]uint64)
	}
	if _, ok := r.byUser[userID][poseID]; ok {
		return nil // already favorited
	}
	r.seq++
	r.byUser[userID][poseID] = r.seq
	return nil
}

func (r *Repo) Remove(ctx context.Context, userID, poseID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser[userID], poseID)
	return nil
}

func (r *Repo) RemoveMany(ctx context.Context, userID uuid.UUID, poseIDs []uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range poseIDs {
		delete(r.byUser[userID], id)
	}
	return nil
}

func (r *Repo) FavoritePoses(ctx context.Context, userID uuid.UUID) ([]domain.Pose, error) {
	r.mu.RLock()
	links := make([]link, 0, len(r.byUser[userID]))
	for poseID, seq := range r.byUser[userID] {
		links = append(links, link{poseID: poseID, seq: seq})
	}
	r.mu.RUnlock()

	sort.Slice(links, func(i, j int) bool { return links[i].seq > links[j].seq })

	out := make([]domain.Pose, 0, len(links))
	for _, l := range links {
		p, err := r.poses.GetByID(ctx, l.poseID)
		if err != nil {
			if errors.Is(err, poserepo.ErrNotFound) {
				continue // pose deleted after favoriting
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
