package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a curated collection of poses assembled for a photo shoot.
type Session struct {
	ID        uuid.UUID
	Name      string
	CoverURL  string
	CreatedAt *time.Time
}
