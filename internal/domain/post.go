package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a community upload for a theme of the day.
// UserID is nil when the author could not be resolved at creation time.
type Post struct {
	ID           uuid.UUID
	Description  *string
	ImageURL     *string
	UserID       *uuid.UUID
	ThemeOfDayID *string
	CreatedAt    *time.Time
}
