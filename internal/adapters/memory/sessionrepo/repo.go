package sessionrepo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
)

type record struct {
	session domain.Session
	seq     uint64
}

// Repo is an in-memory implementation of sessionrepo.Repository. Pose rows
// live in the pose repository; this repo only tracks membership.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID  map[uuid.UUID]record
	poses map[uuid.UUID]map[uuid.UUID]uint64 // sessionID -> poseID -> seq
	seq   uint64

	poseRepo poserepo.Repository
}

func NewRepo(poses poserepo.Repository) *Repo {
	return &Repo{
		byID:     make(map[uuid.UUID]record),
		poses:    make(map[uuid.UUID]map[uuid.UUID]uint64),
		poseRepo: poses,
	}
}

func (r *Repo) List(ctx context.Context) ([]domain.Session, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]record, 0, len(r.byID))
	for _, rec := range r.byID {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	out := make([]domain.Session, len(recs))
	for i, rec := range recs {
		out[i] = cloneSession(rec.session)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return domain.Session{}, sessionrepo.ErrNotFound
	}
	return cloneSession(rec.session), nil
}

func (r *Repo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.CreatedAt == nil {
		now := time.Now().UTC()
		s.CreatedAt = &now
	}
	r.seq++
	r.byID[s.ID] = record{session: cloneSession(s), seq: r.seq}
	return cloneSession(s), nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return sessionrepo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.poses, id)
	return nil
}

func (r *Repo) PosesBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Pose, error) {
	type link struct {
		poseID uuid.UUID
		seq    uint64
	}

	r.mu.RLock()
	links := make([]link, 0, len(r.poses[sessionID]))
	for poseID, seq := range r.poses[sessionID] {
		links = append(links, link{poseID: poseID, seq: seq})
	}
	r.mu.RUnlock()

	sort.Slice(links, func(i, j int) bool { return links[i].seq < links[j].seq })

	out := make([]domain.Pose, 0, len(links))
	for _, l := range links {
		p, err := r.poseRepo.GetByID(ctx, l.poseID)
		if err != nil {
			if errors.Is(err, poserepo.ErrNotFound) {
				continue // pose deleted after being added
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) AddPoses(ctx context.Context, sessionID uuid.UUID, poseIDs []uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[sessionID]; !ok {
		return sessionrepo.ErrNotFound
	}
	if r.poses[sessionID] == nil {
		r.poses[sessionID] = make(map[uuid.UUID]uint64)
	}
	for _, id := range poseIDs {
		if _, ok := r.poses[sessionID][id]; ok {
			continue // already a member
		}
		r.seq++
		r.poses[sessionID][id] = r.seq
	}
	return nil
}

func (r *Repo) RemovePose(ctx context.Context, sessionID, poseID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.poses[sessionID], poseID)
	return nil
}

func (r *Repo) UpdateCover(ctx context.Context, sessionID uuid.UUID, coverURL string) (domain.Session, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[sessionID]
	if !ok {
		return domain.Session{}, sessionrepo.ErrNotFound
	}
	rec.session.CoverURL = coverURL
	r.byID[sessionID] = rec
	return cloneSession(rec.session), nil
}

func cloneSession(s domain.Session) domain.Session {
	out := s
	if s.CreatedAt != nil {
		t := *s.CreatedAt
		out.CreatedAt = &t
	}
	return out
}
