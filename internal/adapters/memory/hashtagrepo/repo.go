package hashtagrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

type poseLink struct {
	poseID uuid.UUID
	seq    uint64
}

// Repo is an in-memory implementation of hashtagrepo.Repository. Pose rows
// live in the pose repository; this repo resolves link targets through it.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID    map[uuid.UUID]domain.Hashtag
	byPose  map[uuid.UUID]map[uuid.UUID]struct{} // poseID -> hashtagIDs
	byTag   map[uuid.UUID]map[uuid.UUID]uint64   // hashtagID -> poseID -> link seq
	byPost  map[uuid.UUID]map[uuid.UUID]struct{} // postID -> hashtagIDs
	linkSeq uint64

	poses poserepo.Repository
}

func NewRepo(poses poserepo.Repository) *Repo {
	return &Repo{
		byID:   make(map[uuid.UUID]domain.Hashtag),
		byPose: make(map[uuid.UUID]map[uuid.UUID]struct{}),
		byTag:  make(map[uuid.UUID]map[uuid.UUID]uint64),
		byPost: make(map[uuid.UUID]map[uuid.UUID]struct{}),
		poses:  poses,
	}
}

func (r *Repo) List(ctx context.Context) ([]domain.Hashtag, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Hashtag, 0, len(r.byID))
	for _, h := range r.byID {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hashtag, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return domain.Hashtag{}, hashtagrepo.ErrNotFound
	}
	return h, nil
}

func (r *Repo) Create(ctx context.Context, h domain.Hashtag) (domain.Hashtag, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[h.ID] = h
	return h, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return hashtagrepo.ErrNotFound
	}
	delete(r.byID, id)
	for poseID := range r.byTag[id] {
		delete(r.byPose[poseID], id)
	}
	delete(r.byTag, id)
	for _, tags := range r.byPost {
		delete(tags, id)
	}
	return nil
}

func (r *Repo) HashtagsByPose(ctx context.Context, poseID uuid.UUID) ([]domain.Hashtag, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Hashtag, 0, len(r.byPose[poseID]))
	for tagID := range r.byPose[poseID] {
		if h, ok := r.byID[tagID]; ok {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repo) AttachToPose(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[hashtagID]; !ok {
		return hashtagrepo.ErrNotFound
	}
	if r.byPose[poseID] == nil {
		r.byPose[poseID] = make(map[uuid.UUID]struct{})
	}
	if r.byTag[hashtagID] == nil {
		r.byTag[hashtagID] = make(map[uuid.UUID]uint64)
	}
	if _, ok := r.byPose[poseID][hashtagID]; ok {
		return nil // already attached
	}
	r.linkSeq++
	r.byPose[poseID][hashtagID] = struct{}{}
	r.byTag[hashtagID][poseID] = r.linkSeq
	return nil
}

func (r *Repo) DetachFromPose(ctx context.Context, poseID, hashtagID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byPose[poseID], hashtagID)
	delete(r.byTag[hashtagID], poseID)
	return nil
}

func (r *Repo) DetachAllFromPose(ctx context.Context, poseID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for tagID := range r.byPose[poseID] {
		delete(r.byTag[tagID], poseID)
	}
	delete(r.byPose, poseID)
	return nil
}

func (r *Repo) AttachToPost(ctx context.Context, postID uuid.UUID, hashtagIDs []uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byPost[postID] == nil {
		r.byPost[postID] = make(map[uuid.UUID]struct{})
	}
	for _, tagID := range hashtagIDs {
		if _, ok := r.byID[tagID]; !ok {
			return hashtagrepo.ErrNotFound
		}
		r.byPost[postID][tagID] = struct{}{}
	}
	return nil
}

func (r *Repo) PosesByHashtag(ctx context.Context, hashtagID uuid.UUID) ([]domain.Pose, error) {
	ids := r.posesOf(hashtagID)
	return r.resolvePoses(ctx, ids)
}

func (r *Repo) PosesByHashtagPaginated(ctx context.Context, hashtagID uuid.UUID, page, limit uint32) ([]domain.Pose, error) {
	ids := r.posesOf(hashtagID)
	start := int(page) * int(limit)
	if start >= len(ids) {
		return []domain.Pose{}, nil
	}
	end := start + int(limit)
	if end > len(ids) {
		end = len(ids)
	}
	return r.resolvePoses(ctx, ids[start:end])
}

// posesOf returns pose ids linked to the hashtag, most recently linked first.
func (r *Repo) posesOf(hashtagID uuid.UUID) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := make([]poseLink, 0, len(r.byTag[hashtagID]))
	for poseID, seq := range r.byTag[hashtagID] {
		links = append(links, poseLink{poseID: poseID, seq: seq})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].seq > links[j].seq })

	out := make([]uuid.UUID, len(links))
	for i, l := range links {
		out[i] = l.poseID
	}
	return out
}

func (r *Repo) resolvePoses(ctx context.Context, ids []uuid.UUID) ([]domain.Pose, error) {
	out := make([]domain.Pose, 0, len(ids))
	for _, id := range ids {
		p, err := r.poses.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, poserepo.ErrNotFound) {
				continue // pose deleted after linking
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
