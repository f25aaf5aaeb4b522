package httpapi

import (
	"net/http"

	"github.com/danphoto/portfolio-api/internal/app/places"
)

func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	items, err := s.Places.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]placeResponse, len(items))
	for i, p := range items {
		out[i] = toPlaceResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := s.Places.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlaceResponse(p))
}

func (s *Server) handleCreatePlace(w http.ResponseWriter, r *http.Request) {
	var body createPlaceRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := s.Places.Create(r.Context(), places.CreateInput{
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		Location:    body.Location,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
		Instagram:   body.Instagram,
		Website:     body.Website,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlaceResponse(p))
}

func (s *Server) handleUpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body updatePlaceRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := s.Places.Update(r.Context(), id, places.UpdateInput{
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		Location:    body.Location,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
		Instagram:   body.Instagram,
		Website:     body.Website,
		ImageBase64: body.ImageBase64,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlaceResponse(p))
}

func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Places.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlaceImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	data, ct, err := s.Places.ServeImage(r.Context(), id)
	serveAsset(w, r, data, ct, err)
}
