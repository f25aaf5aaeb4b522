package httpapi

import "net/http"

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	items, err := s.Sessions.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]sessionResponse, len(items))
	for i, sess := range items {
		out[i] = toSessionResponse(sess)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	sess, err := s.Sessions.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	sess, err := s.Sessions.Create(r.Context(), body.Name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// handleCreateSessionFromFavorites creates a session seeded with the caller's
// favorite poses; the favorites are cleared once copied in.
func (s *Server) handleCreateSessionFromFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	var body createSessionRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	sess, err := s.Sessions.CreateFromFavorites(r.Context(), userID, body.Name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleAddFavoritesToSession(w http.ResponseWriter, r *http.Request) {
	userID, err := s.subjectUserID(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Sessions.AddFavorites(r.Context(), userID, id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionPoses(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	items, err := s.Sessions.Poses(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponses(items))
}

func (s *Server) handleAddSessionPoses(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body addPosesRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := s.Sessions.AddPoses(r.Context(), id, body.PoseIDs); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveSessionPose(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	poseID, ok := pathUUID(w, r, "poseId")
	if !ok {
		return
	}
	if err := s.Sessions.RemovePose(r.Context(), id, poseID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateSessionCover(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body updateCoverRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	sess, err := s.Sessions.UpdateCover(r.Context(), id, body.CoverURL)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}
