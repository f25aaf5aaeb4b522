package httpapi

import (
	"net"
	"net/http"
	"strconv"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	allowed, retryAfter, err := s.LoginLimiter.Allow(r.Context(), clientIP(r))
	if err != nil {
		// A broken limiter store must not lock everyone out; log and let
		// the attempt through.
		s.Logger.WarnContext(r.Context(), "login rate limit check failed", "error", err)
	} else if !allowed {
		if retryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))
		}
		writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts", nil)
		return
	}

	var body loginRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	tok, err := s.Auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: tok, TokenType: "Bearer"})
}

// clientIP trusts the RemoteAddr rewritten by the RealIP middleware.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// serveAsset writes a stored image with its probed content type.
func serveAsset(w http.ResponseWriter, r *http.Request, data []byte, contentType string, err error) {
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
