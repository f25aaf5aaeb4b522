package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain representation of a user profile.
// Credential material (email + password hash used at login) lives in the auth
// repository port, not here; profile reads never expose the password hash.
type User struct {
	ID        uuid.UUID
	Name      *string
	Email     *string
	AvatarURL *string
	CreatedAt *time.Time
}
