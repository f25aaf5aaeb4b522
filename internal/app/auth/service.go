package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/platform/password"
	"github.com/danphoto/portfolio-api/internal/platform/token"
	"github.com/danphoto/portfolio-api/internal/ports/out/authrepo"
)

// TokenTTL is the fixed validity of tokens issued at login. There is no
// refresh mechanism; clients re-authenticate after expiry.
const TokenTTL = 24 * time.Hour

// Service implements login and identity resolution. The token subject is the
// user's email; the numeric identity is re-resolved per request that needs
// it, which keeps the service stateless at the cost of one lookup.
type Service struct {
	repo   authrepo.Repository
	codec  *token.Codec
	logger *slog.Logger
}

func NewService(repo authrepo.Repository, codec *token.Codec, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, codec: codec, logger: logger}
}

// Login verifies the credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, plain string) (string, error) {
	email = strings.TrimSpace(email)

	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authrepo.ErrNotFound) {
			return "", apperr.Unauthorized("invalid email or password")
		}
		return "", err
	}
	if !password.Verify(plain, cred.PasswordHash) {
		s.logger.InfoContext(ctx, "login rejected", "email", email)
		return "", apperr.Unauthorized("invalid email or password")
	}

	tok, err := s.codec.Issue(cred.Email, TokenTTL)
	if err != nil {
		return "", err
	}
	return tok, nil
}

// ResolveUserID maps a verified token subject to the durable user id.
// A structurally valid token whose subject no longer resolves (deleted
// account) is a not-found failure, distinct from an invalid token.
func (s *Service) ResolveUserID(ctx context.Context, subjectEmail string) (uuid.UUID, error) {
	cred, err := s.repo.GetByEmail(ctx, subjectEmail)
	if err != nil {
		if errors.Is(err, authrepo.ErrNotFound) {
			return uuid.Nil, apperr.NotFound("user not found")
		}
		return uuid.Nil, err
	}
	return cred.ID, nil
}

// VerifyToken validates a bearer token and returns its claims. It exists so
// the HTTP middleware depends on this service rather than on the codec.
func (s *Service) VerifyToken(tok string) (token.Claims, error) {
	return s.codec.Verify(tok)
}
