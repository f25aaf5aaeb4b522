package domain

import (
	"time"

	"github.com/google/uuid"
)

// Place is a shooting location.
type Place struct {
	ID          uuid.UUID
	Name        string
	Description string
	Address     string
	Location    string
	Latitude    float64
	Longitude   float64
	Instagram   *string
	Website     *string
	ImageURL    string
	CreatedAt   *time.Time
}
