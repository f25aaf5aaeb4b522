package profile

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/uuid"

	memuserrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/userrepo"
	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
)

type fakeAssets struct {
	files map[string][]byte
}

func newFakeAssets() *fakeAssets { return &fakeAssets{files: map[string][]byte{}} }

func (f *fakeAssets) Save(_ context.Context, ownerID string, data []byte, ext string) error {
	f.files[ownerID+"."+ext] = data
	return nil
}

func (f *fakeAssets) Remove(_ context.Context, ownerID string) error {
	for _, ext := range assetstore.Extensions {
		delete(f.files, ownerID+"."+ext)
	}
	return nil
}

func (f *fakeAssets) Serve(_ context.Context, ownerID string) ([]byte, string, error) {
	for _, ext := range assetstore.Extensions {
		if data, ok := f.files[ownerID+"."+ext]; ok {
			return data, assetstore.ContentType(ext), nil
		}
	}
	return nil, "", assetstore.ErrNotFound
}

func TestService_UpdateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memuserrepo.NewRepo()
	userID := users.Seed("alice@example.com", "hash")
	svc := NewService(users, newFakeAssets(), nil)

	name := "Alice"
	u, err := svc.UpdateName(ctx, userID, &name)
	if err != nil {
		t.Fatalf("UpdateName err=%v", err)
	}
	if u.Name == nil || *u.Name != "Alice" {
		t.Fatalf("name=%v", u.Name)
	}

	// nil clears the name.
	u, err = svc.UpdateName(ctx, userID, nil)
	if err != nil {
		t.Fatalf("UpdateName clear err=%v", err)
	}
	if u.Name != nil {
		t.Fatalf("expected cleared name, got %v", *u.Name)
	}
}

func TestService_UpdateName_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewService(memuserrepo.NewRepo(), newFakeAssets(), nil)
	_, err := svc.UpdateName(context.Background(), uuid.New(), nil)
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
}

func TestService_UpdateAvatar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memuserrepo.NewRepo()
	userID := users.Seed("alice@example.com", "hash")
	assets := newFakeAssets()
	svc := NewService(users, assets, nil)

	u, err := svc.UpdateAvatar(ctx, userID, base64.StdEncoding.EncodeToString([]byte("avatar")))
	if err != nil {
		t.Fatalf("UpdateAvatar err=%v", err)
	}
	if u.AvatarURL == nil || *u.AvatarURL != AvatarURL {
		t.Fatalf("avatar url=%v, want %q", u.AvatarURL, AvatarURL)
	}

	data, ct, err := svc.ServeAvatar(ctx, userID)
	if err != nil {
		t.Fatalf("ServeAvatar err=%v", err)
	}
	if string(data) != "avatar" || ct != "image/jpeg" {
		t.Fatalf("got %q %q", data, ct)
	}
}

func TestService_UpdateAvatar_UnknownUserCompensates(t *testing.T) {
	t.Parallel()

	assets := newFakeAssets()
	svc := NewService(memuserrepo.NewRepo(), assets, nil)

	_, err := svc.UpdateAvatar(context.Background(), uuid.New(), base64.StdEncoding.EncodeToString([]byte("x")))
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
	if len(assets.files) != 0 {
		t.Fatalf("expected the stored avatar removed, got %v", assets.files)
	}
}

func TestService_ServeAvatar_Missing(t *testing.T) {
	t.Parallel()

	users := memuserrepo.NewRepo()
	userID := users.Seed("alice@example.com", "hash")
	svc := NewService(users, newFakeAssets(), nil)

	_, _, err := svc.ServeAvatar(context.Background(), userID)
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
}
