package auth

import (
	"context"
	"errors"
	"testing"

	memuserrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/userrepo"
	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/platform/password"
	"github.com/danphoto/portfolio-api/internal/platform/token"
)

func seededService(t *testing.T) (*Service, *memuserrepo.Repo) {
	t.Helper()
	repo := memuserrepo.NewRepo()
	hash, err := password.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo.Seed("alice@example.com", hash)
	return NewService(repo, token.NewCodec([]byte("test-secret")), nil), repo
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := seededService(t)

	tok, err := svc.Login(ctx, "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login err=%v", err)
	}

	claims, err := svc.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken err=%v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("subject=%q", claims.Subject)
	}
}

func TestService_Login_TrimsEmail(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)
	if _, err := svc.Login(context.Background(), "  alice@example.com  ", "correct horse"); err != nil {
		t.Fatalf("Login err=%v", err)
	}
}

func TestService_Login_BadCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := seededService(t)

	// Wrong password and unknown email are indistinguishable.
	for _, tc := range []struct{ email, pass string }{
		{"alice@example.com", "wrong"},
		{"nobody@example.com", "correct horse"},
	} {
		_, err := svc.Login(ctx, tc.email, tc.pass)
		ae := (*apperr.Error)(nil)
		if !errors.As(err, &ae) || ae.Code != "UNAUTHORIZED" || ae.Message != "invalid email or password" {
			t.Fatalf("Login(%q): err=%v, want uniform UNAUTHORIZED", tc.email, err)
		}
	}
}

func TestService_ResolveUserID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, repo := seededService(t)
	hash, _ := password.Hash("pw")
	id := repo.Seed("bob@example.com", hash)

	got, err := svc.ResolveUserID(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("ResolveUserID err=%v", err)
	}
	if got != id {
		t.Fatalf("id=%v, want %v", got, id)
	}

	_, err = svc.ResolveUserID(ctx, "deleted@example.com")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND for unknown subject", err)
	}
}
