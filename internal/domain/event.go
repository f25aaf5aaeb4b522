package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a photography event (meetup, shooting, exhibition).
// MMDD is the month+day the event recurs on, e.g. "0714".
type Event struct {
	ID        uuid.UUID
	Name      string
	Place     string
	MMDD      string
	ImageURL  string
	CreatedAt *time.Time
}
