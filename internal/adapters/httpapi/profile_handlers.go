package httpapi

import "net/http"

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	u, err := s.Profile.Get(r.Context(), userID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// handleUpdateProfile distinguishes three name states: absent leaves the name
// untouched, an explicit null clears it, and a string sets it.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	var body updateProfileRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if !body.Name.IsSpecified() {
		u, err := s.Profile.Get(r.Context(), userID)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
		return
	}
	var name *string
	if !body.Name.IsNull() {
		v := body.Name.MustGet()
		name = &v
	}
	u, err := s.Profile.UpdateName(r.Context(), userID, name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	var body updateAvatarRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	u, err := s.Profile.UpdateAvatar(r.Context(), userID, body.ImageBase64)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleProfileAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	data, ct, err := s.Profile.ServeAvatar(r.Context(), userID)
	serveAsset(w, r, data, ct, err)
}
