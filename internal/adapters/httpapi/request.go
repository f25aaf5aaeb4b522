package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errMissingSubject = errors.New("no authenticated subject in request context")

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// decodeJSON reads the request body into v; a failure is a validation error
// rendered by the caller via writeAppError.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return false
	}
	return true
}

// pathUUID parses the named chi URL parameter as a uuid.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads ?page and ?limit: page defaults to 0, limit to 20 and is
// capped at 100. Unparseable values fall back to the defaults.
func pagination(r *http.Request) (page, limit uint32) {
	page = queryUint32(r, "page", 0)
	limit = queryUint32(r, "limit", defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func queryUint32(r *http.Request, name string, def uint32) uint32 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return def
	}
	return uint32(n)
}
