package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pose is a reference photo of a posing idea. The image itself lives on disk
// keyed by the pose id; ImageURL is the public serving path.
type Pose struct {
	ID        uuid.UUID
	ImageURL  string
	CreatedAt *time.Time
}

// Hashtag tags poses and posts.
type Hashtag struct {
	ID   uuid.UUID
	Name string
}
