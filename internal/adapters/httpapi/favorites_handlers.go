package httpapi

import "net/http"

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	items, err := s.Favorites.FavoritePoses(r.Context(), userID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponses(items))
}

func (s *Server) handleIsFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	poseID, ok := pathUUID(w, r, "poseId")
	if !ok {
		return
	}
	fav, err := s.Favorites.IsFavorite(r.Context(), userID, poseID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{Favorite: fav})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	poseID, ok := pathUUID(w, r, "poseId")
	if !ok {
		return
	}
	if err := s.Favorites.Add(r.Context(), userID, poseID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	poseID, ok := pathUUID(w, r, "poseId")
	if !ok {
		return
	}
	if err := s.Favorites.Remove(r.Context(), userID, poseID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
