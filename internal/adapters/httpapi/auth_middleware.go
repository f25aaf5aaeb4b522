package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danphoto/portfolio-api/internal/platform/token"
)

// NewAuthMiddleware enforces Authorization: Bearer <token> on everything it
// wraps. On success the verified subject email is stored in request context.
//
// Every rejection carries the same body: the distinction between a missing
// header, a malformed one, a bad signature, and an expired token is logged
// but never exposed, so responses give no feedback to token forgery.
func NewAuthMiddleware(codec *token.Codec, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reject := func(reason string) {
				logger.InfoContext(r.Context(), "request rejected",
					"reason", reason,
					"method", r.Method,
					"path", r.URL.Path,
				)
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing token", nil)
			}

			authz := r.Header.Get("Authorization")
			if authz == "" {
				reject("missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				reject("malformed authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				reject("empty bearer token")
				return
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				reject("token verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
		})
	}
}
