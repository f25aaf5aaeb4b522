package poses

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/uuid"

	memhashtagrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/hashtagrepo"
	memposerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/poserepo"
	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

// fakeAssets is an in-memory assetstore.Store recording removals.
type fakeAssets struct {
	files    map[string][]byte
	removed  []string
	saveErr  error
	serveErr error
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{files: map[string][]byte{}}
}

func (f *fakeAssets) Save(_ context.Context, ownerID string, data []byte, ext string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.files[ownerID+"."+ext] = data
	return nil
}

func (f *fakeAssets) Remove(_ context.Context, ownerID string) error {
	f.removed = append(f.removed, ownerID)
	for _, ext := range assetstore.Extensions {
		delete(f.files, ownerID+"."+ext)
	}
	return nil
}

func (f *fakeAssets) Serve(_ context.Context, ownerID string) ([]byte, string, error) {
	if f.serveErr != nil {
		return nil, "", f.serveErr
	}
	for _, ext := range assetstore.Extensions {
		if data, ok := f.files[ownerID+"."+ext]; ok {
			return data, assetstore.ContentType(ext), nil
		}
	}
	return nil, "", assetstore.ErrNotFound
}

// failingPoseRepo fails every Create.
type failingPoseRepo struct {
	poserepo.Repository
}

func (failingPoseRepo) Create(context.Context, domain.Pose) (domain.Pose, error) {
	return domain.Pose{}, errors.New("insert failed")
}

func validPayload() string {
	return base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := memposerepo.NewRepo()
	assets := newFakeAssets()
	svc := NewService(repo, memhashtagrepo.NewRepo(repo), assets, nil)

	p, err := svc.Create(ctx, validPayload(), nil)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if p.ImageURL != "/api/poses/"+p.ID.String()+"/image" {
		t.Fatalf("url=%q", p.ImageURL)
	}
	if _, ok := assets.files[p.ID.String()+".jpg"]; !ok {
		t.Fatalf("expected stored image for %s, files=%v", p.ID, assets.files)
	}
	if _, err := repo.GetByID(ctx, p.ID); err != nil {
		t.Fatalf("expected persisted pose, got %v", err)
	}
}

func TestService_Create_AttachesHashtags(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := memposerepo.NewRepo()
	tags := memhashtagrepo.NewRepo(repo)
	svc := NewService(repo, tags, newFakeAssets(), nil)

	tag, err := tags.Create(ctx, domain.Hashtag{ID: uuid.New(), Name: "sunset"})
	if err != nil {
		t.Fatalf("create hashtag: %v", err)
	}

	p, err := svc.Create(ctx, validPayload(), []uuid.UUID{tag.ID})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	got, err := tags.HashtagsByPose(ctx, p.ID)
	if err != nil || len(got) != 1 || got[0].ID != tag.ID {
		t.Fatalf("expected attached hashtag, got %+v, %v", got, err)
	}
}

func TestService_Create_InvalidPayload(t *testing.T) {
	t.Parallel()

	repo := memposerepo.NewRepo()
	svc := NewService(repo, memhashtagrepo.NewRepo(repo), newFakeAssets(), nil)

	for _, payload := range []string{"", "   ", "!!!not-base64!!!"} {
		_, err := svc.Create(context.Background(), payload, nil)
		ae := (*apperr.Error)(nil)
		if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
			t.Fatalf("payload %q: err=%v, want VALIDATION_ERROR", payload, err)
		}
	}
}

func TestService_Create_CompensatesOnInsertFailure(t *testing.T) {
	t.Parallel()

	assets := newFakeAssets()
	svc := NewService(failingPoseRepo{}, memhashtagrepo.NewRepo(memposerepo.NewRepo()), assets, nil)

	_, err := svc.Create(context.Background(), validPayload(), nil)
	if err == nil || err.Error() != "insert failed" {
		t.Fatalf("err=%v, want the insert error", err)
	}
	if len(assets.removed) != 1 {
		t.Fatalf("expected one compensating removal, got %v", assets.removed)
	}
	if len(assets.files) != 0 {
		t.Fatalf("expected no orphaned file, got %v", assets.files)
	}
}

func TestService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := memposerepo.NewRepo()
	tags := memhashtagrepo.NewRepo(repo)
	assets := newFakeAssets()
	svc := NewService(repo, tags, assets, nil)

	p, err := svc.Create(ctx, validPayload(), nil)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	tag, err := tags.Create(ctx, domain.Hashtag{ID: uuid.New(), Name: "b&w"})
	if err != nil {
		t.Fatalf("create hashtag: %v", err)
	}
	if err := tags.AttachToPose(ctx, p.ID, tag.ID); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, poserepo.ErrNotFound) {
		t.Fatalf("expected pose gone, got %v", err)
	}
	if got, _ := tags.PosesByHashtag(ctx, tag.ID); len(got) != 0 {
		t.Fatalf("expected links detached, got %+v", got)
	}
	if len(assets.files) != 0 {
		t.Fatalf("expected image removed, got %v", assets.files)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := memposerepo.NewRepo()
	svc := NewService(repo, memhashtagrepo.NewRepo(repo), newFakeAssets(), nil)

	err := svc.Delete(context.Background(), uuid.New())
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
}

func TestService_ServeImage_NotFound(t *testing.T) {
	t.Parallel()

	repo := memposerepo.NewRepo()
	svc := NewService(repo, memhashtagrepo.NewRepo(repo), newFakeAssets(), nil)

	_, _, err := svc.ServeImage(context.Background(), uuid.New())
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
}
