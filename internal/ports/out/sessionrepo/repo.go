package sessionrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested session does not exist.
var ErrNotFound = errors.New("session not found")

// Repository provides access to sessions and their pose membership.
// AddPoses is idempotent per (session, pose) pair.
type Repository interface {
	List(ctx context.Context) ([]domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Create(ctx context.Context, s domain.Session) (domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error

	PosesBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Pose, error)
	AddPoses(ctx context.Context, sessionID uuid.UUID, poseIDs []uuid.UUID) error
	RemovePose(ctx context.Context, sessionID, poseID uuid.UUID) error

	UpdateCover(ctx context.Context, sessionID uuid.UUID, coverURL string) (domain.Session, error)
}
