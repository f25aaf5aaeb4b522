package themes

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	memclock "github.com/danphoto/portfolio-api/internal/adapters/memory/clock"
	memthemerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/themerepo"
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

func payload() string {
	return base64.StdEncoding.EncodeToString([]byte("image-bytes"))
}

func TestService_CreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(memthemerepo.NewRepo(), newFakeAssets(), memclock.NewManualClock(time.Now()), nil)

	created, err := svc.Create(ctx, CreateInput{ID: " 0714 ", Name: "Golden hour", ImageBase64: payload()})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if created.ID != "0714" {
		t.Fatalf("id=%q, want trimmed 0714", created.ID)
	}
	if created.ImageURL != "/api/theme-of-the-day/0714/image" {
		t.Fatalf("url=%q", created.ImageURL)
	}

	got, err := svc.Get(ctx, "0714")
	if err != nil || got.Name != "Golden hour" {
		t.Fatalf("Get: %+v, %v", got, err)
	}
}

func TestService_Create_RejectsBadID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(memthemerepo.NewRepo(), newFakeAssets(), memclock.NewManualClock(time.Now()), nil)

	for _, id := range []string{"", "714", "07141", "ab12", "07-4"} {
		_, err := svc.Create(ctx, CreateInput{ID: id, Name: "x", ImageBase64: payload()})
		ae := (*apperr.Error)(nil)
		if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
			t.Fatalf("id %q: err=%v, want VALIDATION_ERROR", id, err)
		}
	}
}

func TestService_Today(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// 2026-07-14 12:00 UTC.
	clk := memclock.NewManualClock(time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC))
	svc := NewService(memthemerepo.NewRepo(), newFakeAssets(), clk, nil)

	if _, err := svc.Create(ctx, CreateInput{ID: "0714", Name: "Golden hour", ImageBase64: payload()}); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	got, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("Today err=%v", err)
	}
	if got.ID != "0714" {
		t.Fatalf("id=%q", got.ID)
	}

	clk.Advance(24 * time.Hour)
	_, err = svc.Today(ctx)
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND when no theme exists for the day", err)
	}
}

func TestService_Update_ReplacesImageInPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assets := newFakeAssets()
	svc := NewService(memthemerepo.NewRepo(), assets, memclock.NewManualClock(time.Now()), nil)

	if _, err := svc.Create(ctx, CreateInput{ID: "0101", Name: "New year", ImageBase64: payload()}); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	newName := "New year, new photos"
	newImage := base64.StdEncoding.EncodeToString([]byte("replacement"))
	updated, err := svc.Update(ctx, "0101", UpdateInput{Name: &newName, ImageBase64: &newImage})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if updated.Name != newName {
		t.Fatalf("name=%q", updated.Name)
	}
	if string(assets.files["0101.jpg"]) != "replacement" {
		t.Fatalf("expected replaced image, got %v", assets.files)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(memthemerepo.NewRepo(), newFakeAssets(), memclock.NewManualClock(time.Now()), nil)
	err := svc.Delete(context.Background(), "1231")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
}
