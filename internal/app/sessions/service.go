package sessions

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/favoriterepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
)

// Service implements session use cases, including the flows that move a
// user's favorites into a session.
type Service struct {
	repo      sessionrepo.Repository
	favorites favoriterepo.Repository
	logger    *slog.Logger

	newID func() uuid.UUID
}

func NewService(repo sessionrepo.Repository, favorites favoriterepo.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, favorites: favorites, logger: logger, newID: uuid.New}
}

func (s *Service) List(ctx context.Context) ([]domain.Session, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return domain.Session{}, apperr.NotFound("session not found")
		}
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *Service) Create(ctx context.Context, name string) (domain.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Session{}, apperr.Validation("name is required")
	}
	return s.repo.Create(ctx, domain.Session{ID: s.newID(), Name: name})
}

// CreateFromFavorites creates a session and moves all of the user's current
// favorites into it. The favorites are removed only after they have been added
// to the session, so a failure part-way leaves them favorited.
func (s *Service) CreateFromFavorites(ctx context.Context, userID uuid.UUID, name string) (domain.Session, error) {
	sess, err := s.Create(ctx, name)
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.moveFavorites(ctx, userID, sess.ID); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// AddFavorites moves the user's current favorites into an existing session.
func (s *Service) AddFavorites(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.moveFavorites(ctx, userID, sessionID)
}

func (s *Service) moveFavorites(ctx context.Context, userID, sessionID uuid.UUID) error {
	poses, err := s.favorites.FavoritePoses(ctx, userID)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(poses))
	for i, p := range poses {
		ids[i] = p.ID
	}
	if err := s.repo.AddPoses(ctx, sessionID, ids); err != nil {
		return err
	}
	return s.favorites.RemoveMany(ctx, userID, ids)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return apperr.NotFound("session not found")
		}
		return err
	}
	return nil
}

func (s *Service) Poses(ctx context.Context, sessionID uuid.UUID) ([]domain.Pose, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.PosesBySession(ctx, sessionID)
}

func (s *Service) AddPoses(ctx context.Context, sessionID uuid.UUID, poseIDs []uuid.UUID) error {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return err
	}
	if len(poseIDs) == 0 {
		return nil
	}
	return s.repo.AddPoses(ctx, sessionID, poseIDs)
}

func (s *Service) RemovePose(ctx context.Context, sessionID, poseID uuid.UUID) error {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.repo.RemovePose(ctx, sessionID, poseID)
}

func (s *Service) UpdateCover(ctx context.Context, sessionID uuid.UUID, coverURL string) (domain.Session, error) {
	if strings.TrimSpace(coverURL) == "" {
		return domain.Session{}, apperr.Validation("cover_url is required")
	}
	sess, err := s.repo.UpdateCover(ctx, sessionID, coverURL)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return domain.Session{}, apperr.NotFound("session not found")
		}
		return domain.Session{}, err
	}
	return sess, nil
}
