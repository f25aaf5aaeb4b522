package httpapi

import "net/http"

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := s.Portfolio.Categories(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]categoryResponse, len(items))
	for i, c := range items {
		out[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryNameRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	c, err := s.Portfolio.CreateCategory(r.Context(), body.Name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body categoryNameRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	c, err := s.Portfolio.UpdateCategory(r.Context(), id, body.Name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Portfolio.DeleteCategory(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategoryImages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	page, limit := pagination(r)
	items, count, err := s.Portfolio.ImagesByCategory(r.Context(), id, page, limit)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]portfolioImageResponse, len(items))
	for i, img := range items {
		out[i] = toPortfolioImageResponse(img)
	}
	writeJSON(w, http.StatusOK, portfolioImagesPage{
		Items:      out,
		Count:      count,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(count, limit),
	})
}

func (s *Server) handleAddCategoryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body addPortfolioImageRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	img, err := s.Portfolio.AddImage(r.Context(), id, body.ImageBase64)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPortfolioImageResponse(img))
}

func (s *Server) handleDeletePortfolioImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Portfolio.DeleteImage(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePortfolioImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	data, ct, err := s.Portfolio.ServeImage(r.Context(), id)
	serveAsset(w, r, data, ct, err)
}
