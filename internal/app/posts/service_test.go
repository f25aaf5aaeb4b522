package posts

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	mempostrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/postrepo"
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

func payload() string {
	return base64.StdEncoding.EncodeToString([]byte("image-bytes"))
}

func TestService_Create_ResolvesAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memuserrepo.NewRepo()
	userID := users.Seed("alice@example.com", "hash")
	svc := NewService(mempostrepo.NewRepo(), users, newFakeAssets(), nil)

	p, err := svc.Create(ctx, CreateInput{
		ImageBase64:  payload(),
		ThemeOfDayID: "0714",
		AuthorEmail:  "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if p.UserID == nil || *p.UserID != userID {
		t.Fatalf("user id=%v, want %v", p.UserID, userID)
	}
	if p.ThemeOfDayID == nil || *p.ThemeOfDayID != "0714" {
		t.Fatalf("theme id=%v", p.ThemeOfDayID)
	}
	if p.ImageURL == nil || *p.ImageURL != "/api/posts/"+p.ID.String()+"/image" {
		t.Fatalf("url=%v", p.ImageURL)
	}
}

func TestService_Create_UnknownAuthorKeepsPostAuthorless(t *testing.T) {
	t.Parallel()

	svc := NewService(mempostrepo.NewRepo(), memuserrepo.NewRepo(), newFakeAssets(), nil)

	p, err := svc.Create(context.Background(), CreateInput{
		ImageBase64:  payload(),
		ThemeOfDayID: "0714",
		AuthorEmail:  "ghost@example.com",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if p.UserID != nil {
		t.Fatalf("expected authorless post, got user id %v", p.UserID)
	}
}

func TestService_Create_RequiresTheme(t *testing.T) {
	t.Parallel()

	svc := NewService(mempostrepo.NewRepo(), memuserrepo.NewRepo(), newFakeAssets(), nil)

	_, err := svc.Create(context.Background(), CreateInput{ImageBase64: payload(), ThemeOfDayID: "  "})
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
		t.Fatalf("err=%v, want VALIDATION_ERROR", err)
	}
}

func TestService_ListByTheme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(mempostrepo.NewRepo(), memuserrepo.NewRepo(), newFakeAssets(), nil)

	for _, theme := range []string{"0714", "0714", "1231"} {
		if _, err := svc.Create(ctx, CreateInput{ImageBase64: payload(), ThemeOfDayID: theme}); err != nil {
			t.Fatalf("Create err=%v", err)
		}
	}

	matched, err := svc.ListByTheme(ctx, "0714")
	if err != nil {
		t.Fatalf("ListByTheme err=%v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 posts for theme, got %d", len(matched))
	}

	count, err := svc.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("Count=%d, %v; want 3", count, err)
	}
}

func TestService_PaginationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(mempostrepo.NewRepo(), memuserrepo.NewRepo(), newFakeAssets(), nil)

	var ids []string
	for i := 0; i < 3; i++ {
		p, err := svc.Create(ctx, CreateInput{ImageBase64: payload(), ThemeOfDayID: "0714"})
		if err != nil {
			t.Fatalf("Create err=%v", err)
		}
		ids = append(ids, p.ID.String())
	}

	page, err := svc.ListPaginated(ctx, 0, 2)
	if err != nil {
		t.Fatalf("ListPaginated err=%v", err)
	}
	if len(page) != 2 || page[0].ID.String() != ids[2] || page[1].ID.String() != ids[1] {
		t.Fatalf("expected newest-first page, got %+v", page)
	}

	page, err = svc.ListPaginated(ctx, 1, 2)
	if err != nil || len(page) != 1 || page[0].ID.String() != ids[0] {
		t.Fatalf("expected last page with oldest post, got %+v, %v", page, err)
	}
}
