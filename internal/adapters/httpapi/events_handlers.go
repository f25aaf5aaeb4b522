package httpapi

import (
	"net/http"

	"github.com/danphoto/portfolio-api/internal/app/events"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	items, err := s.Events.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]eventResponse, len(items))
	for i, e := range items {
		out[i] = toEventResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	e, err := s.Events.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var body createEventRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	e, err := s.Events.Create(r.Context(), events.CreateInput{
		Name:        body.Name,
		Place:       body.Place,
		MMDD:        body.MMDD,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body updateEventRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	e, err := s.Events.Update(r.Context(), id, events.UpdateInput{
		Name:        body.Name,
		Place:       body.Place,
		MMDD:        body.MMDD,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Events.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEventImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	data, ct, err := s.Events.ServeImage(r.Context(), id)
	serveAsset(w, r, data, ct, err)
}
