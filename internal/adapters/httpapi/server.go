package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/auth"
	"github.com/danphoto/portfolio-api/internal/app/events"
	"github.com/danphoto/portfolio-api/internal/app/favorites"
	"github.com/danphoto/portfolio-api/internal/app/hashtags"
	"github.com/danphoto/portfolio-api/internal/app/places"
	"github.com/danphoto/portfolio-api/internal/app/portfolio"
	"github.com/danphoto/portfolio-api/internal/app/poses"
	"github.com/danphoto/portfolio-api/internal/app/posts"
	"github.com/danphoto/portfolio-api/internal/app/profile"
	"github.com/danphoto/portfolio-api/internal/app/sessions"
	"github.com/danphoto/portfolio-api/internal/app/themes"
	"github.com/danphoto/portfolio-api/internal/platform/ratelimit"
)

// Server is the HTTP adapter: it decodes requests, delegates to the app
// services, and encodes responses.
type Server struct {
	Auth      *auth.Service
	Events    *events.Service
	Themes    *themes.Service
	Poses     *poses.Service
	Posts     *posts.Service
	Hashtags  *hashtags.Service
	Places    *places.Service
	Portfolio *portfolio.Service
	Favorites *favorites.Service
	Sessions  *sessions.Service
	Profile   *profile.Service

	// LoginLimiter throttles POST /api/auth/login per client IP; nil disables.
	LoginLimiter *ratelimit.Limiter

	Logger *slog.Logger
}

// subjectUserID resolves the authenticated caller's durable user id from the
// subject email placed in context by the auth middleware.
func (s *Server) subjectUserID(r *http.Request) (uuid.UUID, error) {
	email, ok := SubjectFromContext(r.Context())
	if !ok {
		// The middleware always sets the subject; reaching here means a
		// route was wired outside the auth group by mistake.
		return uuid.Nil, errMissingSubject
	}
	return s.Auth.ResolveUserID(r.Context(), email)
}
