package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danphoto/portfolio-api/internal/app/themes"
)

func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	items, err := s.Themes.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]themeResponse, len(items))
	for i, t := range items {
		out[i] = toThemeResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTodayTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.Themes.Today(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toThemeResponse(t))
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.Themes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toThemeResponse(t))
}

func (s *Server) handleCreateTheme(w http.ResponseWriter, r *http.Request) {
	var body createThemeRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	t, err := s.Themes.Create(r.Context(), themes.CreateInput{
		ID:          body.ID,
		Name:        body.Name,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toThemeResponse(t))
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var body updateThemeRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	t, err := s.Themes.Update(r.Context(), chi.URLParam(r, "id"), themes.UpdateInput{
		Name:        body.Name,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toThemeResponse(t))
}

func (s *Server) handleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	if err := s.Themes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleThemeImage(w http.ResponseWriter, r *http.Request) {
	data, ct, err := s.Themes.ServeImage(r.Context(), chi.URLParam(r, "id"))
	serveAsset(w, r, data, ct, err)
}
