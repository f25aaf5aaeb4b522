package httpapi

import "net/http"

func (s *Server) handleListPoses(w http.ResponseWriter, r *http.Request) {
	items, err := s.Poses.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponses(items))
}

func (s *Server) handleListPosesPaginated(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	items, err := s.Poses.ListPaginated(r.Context(), page, limit)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponses(items))
}

func (s *Server) handleGetPose(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := s.Poses.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponse(p))
}

func (s *Server) handleCreatePose(w http.ResponseWriter, r *http.Request) {
	var body createPoseRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := s.Poses.Create(r.Context(), body.ImageBase64, body.HashtagIDs)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPoseResponse(p))
}

func (s *Server) handleDeletePose(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Poses.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePoseImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	data, ct, err := s.Poses.ServeImage(r.Context(), id)
	serveAsset(w, r, data, ct, err)
}
