package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/danphoto/portfolio-api/internal/platform/token"
)

// NewRouter wires the REST surface. Everything under /api requires a bearer
// token except login, health, and the public image endpoints.
func NewRouter(s *Server, codec *token.Codec, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(allowedOrigins))

	requireAuth := NewAuthMiddleware(codec, s.Logger)

	r.Route("/api", func(r chi.Router) {
		// Public surface.
		r.Post("/auth/login", s.handleLogin)
		r.Get("/health", handleHealth)
		r.Get("/events/{id}/image", s.handleEventImage)
		r.Get("/theme-of-the-day/{id}/image", s.handleThemeImage)
		r.Get("/poses/{id}/image", s.handlePoseImage)
		r.Get("/posts/{id}/image", s.handlePostImage)
		r.Get("/places/{id}/image", s.handlePlaceImage)
		r.Get("/portfolio/images/{id}/image", s.handlePortfolioImage)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/events", s.handleListEvents)
			r.Post("/events", s.handleCreateEvent)
			r.Get("/events/{id}", s.handleGetEvent)
			r.Put("/events/{id}", s.handleUpdateEvent)
			r.Delete("/events/{id}", s.handleDeleteEvent)

			r.Get("/theme-of-the-day", s.handleListThemes)
			r.Post("/theme-of-the-day", s.handleCreateTheme)
			r.Get("/theme-of-the-day/today", s.handleTodayTheme)
			r.Get("/theme-of-the-day/{id}", s.handleGetTheme)
			r.Put("/theme-of-the-day/{id}", s.handleUpdateTheme)
			r.Delete("/theme-of-the-day/{id}", s.handleDeleteTheme)

			r.Get("/hashtags", s.handleListHashtags)
			r.Post("/hashtags", s.handleCreateHashtag)
			r.Get("/hashtags/{id}", s.handleGetHashtag)
			r.Delete("/hashtags/{id}", s.handleDeleteHashtag)
			r.Get("/hashtags/{id}/poses", s.handlePosesByHashtag)
			r.Get("/hashtags/{id}/poses/paginated", s.handlePosesByHashtagPaginated)

			r.Get("/poses", s.handleListPoses)
			r.Post("/poses", s.handleCreatePose)
			r.Get("/poses/paginated", s.handleListPosesPaginated)
			r.Get("/poses/{id}", s.handleGetPose)
			r.Delete("/poses/{id}", s.handleDeletePose)
			r.Get("/poses/{id}/hashtags", s.handlePoseHashtags)
			r.Put("/poses/{id}/hashtags", s.handleReplacePoseHashtags)

			r.Get("/posts", s.handleListPosts)
			r.Post("/posts", s.handleCreatePost)
			r.Get("/posts/paginated", s.handleListPostsPaginated)
			r.Get("/posts/theme-of-the-day/{themeId}", s.handlePostsByTheme)
			r.Get("/posts/{id}", s.handleGetPost)
			r.Delete("/posts/{id}", s.handleDeletePost)
			r.Post("/posts/{id}/hashtags", s.handleAttachPostHashtags)

			r.Get("/portfolio/categories", s.handleListCategories)
			r.Post("/portfolio/categories", s.handleCreateCategory)
			r.Put("/portfolio/categories/{id}", s.handleUpdateCategory)
			r.Delete("/portfolio/categories/{id}", s.handleDeleteCategory)
			r.Get("/portfolio/categories/{id}/images", s.handleCategoryImages)
			r.Post("/portfolio/categories/{id}/images", s.handleAddCategoryImage)
			r.Delete("/portfolio/images/{id}", s.handleDeletePortfolioImage)

			r.Get("/favorites/poses", s.handleListFavorites)
			r.Get("/favorites/poses/{poseId}", s.handleIsFavorite)
			r.Post("/favorites/poses/{poseId}", s.handleAddFavorite)
			r.Delete("/favorites/poses/{poseId}", s.handleRemoveFavorite)

			r.Get("/places", s.handleListPlaces)
			r.Post("/places", s.handleCreatePlace)
			r.Get("/places/{id}", s.handleGetPlace)
			r.Put("/places/{id}", s.handleUpdatePlace)
			r.Delete("/places/{id}", s.handleDeletePlace)

			r.Get("/sessions", s.handleListSessions)
			r.Post("/sessions", s.handleCreateSession)
			r.Post("/sessions/from-favorites", s.handleCreateSessionFromFavorites)
			r.Get("/sessions/{id}", s.handleGetSession)
			r.Delete("/sessions/{id}", s.handleDeleteSession)
			r.Get("/sessions/{id}/poses", s.handleSessionPoses)
			r.Post("/sessions/{id}/poses", s.handleAddSessionPoses)
			r.Post("/sessions/{id}/add-favorites", s.handleAddFavoritesToSession)
			r.Delete("/sessions/{id}/poses/{poseId}", s.handleRemoveSessionPose)
			r.Put("/sessions/{id}/cover", s.handleUpdateSessionCover)

			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)
			r.Put("/profile/avatar", s.handleUpdateAvatar)
			r.Get("/profile/avatar", s.handleProfileAvatar)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// corsMiddleware allows any origin when no list is configured, matching the
// development default of the frontend.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})
}
