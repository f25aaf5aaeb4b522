package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danphoto/portfolio-api/internal/app/posts"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	items, err := s.Posts.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponses(items))
}

func (s *Server) handleListPostsPaginated(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	items, err := s.Posts.ListPaginated(r.Context(), page, limit)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	count, err := s.Posts.Count(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, postsPage{
		Items:      toPostResponses(items),
		Count:      count,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(count, limit),
	})
}

func (s *Server) handlePostsByTheme(w http.ResponseWriter, r *http.Request) {
	items, err := s.Posts.ListByTheme(r.Context(), chi.URLParam(r, "themeId"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponses(items))
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := s.Posts.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(p))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	email, ok := SubjectFromContext(r.Context())
	if !ok {
		writeAppError(w, r, errMissingSubject)
		return
	}
	var body createPostRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := s.Posts.Create(r.Context(), posts.CreateInput{
		Description:  body.Description,
		ImageBase64:  body.ImageBase64,
		ThemeOfDayID: body.ThemeOfDayID,
		AuthorEmail:  email,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(p))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Posts.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePostImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	data, ct, err := s.Posts.ServeImage(r.Context(), id)
	serveAsset(w, r, data, ct, err)
}
