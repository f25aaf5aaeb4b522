package domain

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioCategory groups portfolio images (e.g. "Portraits", "Street").
type PortfolioCategory struct {
	ID       uuid.UUID
	Name     string
	CoverURL string
}

// PortfolioImage is a single image inside a portfolio category.
type PortfolioImage struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	ImageURL   string
	CreatedAt  *time.Time
}
