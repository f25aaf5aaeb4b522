package httpapi

import "net/http"

func (s *Server) handleListHashtags(w http.ResponseWriter, r *http.Request) {
	items, err := s.Hashtags.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHashtagResponses(items))
}

func (s *Server) handleGetHashtag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h, err := s.Hashtags.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHashtagResponse(h))
}

func (s *Server) handleCreateHashtag(w http.ResponseWriter, r *http.Request) {
	var body createHashtagRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	h, err := s.Hashtags.Create(r.Context(), body.Name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHashtagResponse(h))
}

func (s *Server) handleDeleteHashtag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Hashtags.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePoseHashtags(w http.ResponseWriter, r *http.Request) {
	poseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	items, err := s.Hashtags.HashtagsByPose(r.Context(), poseID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHashtagResponses(items))
}

// handleReplacePoseHashtags swaps the full hashtag set of a pose and returns
// the resulting set.
func (s *Server) handleReplacePoseHashtags(w http.ResponseWriter, r *http.Request) {
	poseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body hashtagIDsRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	items, err := s.Hashtags.ReplacePoseHashtags(r.Context(), poseID, body.HashtagIDs)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHashtagResponses(items))
}

func (s *Server) handleAttachPostHashtags(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body hashtagIDsRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := s.Hashtags.AttachToPost(r.Context(), postID, body.HashtagIDs); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePosesByHashtag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	items, err := s.Hashtags.PosesByHashtag(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponses(items))
}

func (s *Server) handlePosesByHashtagPaginated(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	page, limit := pagination(r)
	items, err := s.Hashtags.PosesByHashtagPaginated(r.Context(), id, page, limit)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponses(items))
}
