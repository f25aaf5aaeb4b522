package hashtagrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// ErrNotFound indicates the requested hashtag does not exist.
var ErrNotFound = errors.New("hashtag not found")

// Repository provides access to hashtags and their links to poses and posts.
//
// The link operations are idempotent: attaching an already-attached hashtag is
// a no-op, detaching an absent one succeeds.
type Repository interface {
	List(ctx context.Context) ([]domain.Hashtag, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hashtag, error)
	Create(ctx context.Context, h domain.Hashtag) (domain.Hashtag, error)
	Delete(ctx context.Context, id uuid.UUID) error

	HashtagsByPose(ctx context.Context, poseID uuid.UUID) ([]domain.Hashtag, error)

	AttachToPose(ctx context.Context, poseID, hashtagID uuid.UUID) error
	DetachFromPose(ctx context.Context, poseID, hashtagID uuid.UUID) error
	DetachAllFromPose(ctx context.Context, poseID uuid.UUID) error

	AttachToPost(ctx context.Context, postID uuid.UUID, hashtagIDs []uuid.UUID) error

	// PosesByHashtag returns poses tagged with the hashtag, newest first.
	PosesByHashtag(ctx context.Context, hashtagID uuid.UUID) ([]domain.Pose, error)
	PosesByHashtagPaginated(ctx context.Context, hashtagID uuid.UUID, page, limit uint32) ([]domain.Pose, error)
}
