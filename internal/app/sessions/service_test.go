package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	memfavoriterepo "github.com/danphoto/portfolio-api/internal/adapters/memory/favoriterepo"
	memposerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/poserepo"
	memsessionrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/sessionrepo"
	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

type fixture struct {
	svc       *Service
	poses     *memposerepo.Repo
	favorites *memfavoriterepo.Repo
}

func newFixture() fixture {
	poses := memposerepo.NewRepo()
	favorites := memfavoriterepo.NewRepo(poses)
	return fixture{
		svc:       NewService(memsessionrepo.NewRepo(poses), favorites, nil),
		poses:     poses,
		favorites: favorites,
	}
}

func (f fixture) newPose(t *testing.T, ctx context.Context) domain.Pose {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	p, err := f.poses.Create(ctx, domain.Pose{ID: id, ImageURL: "/api/poses/" + id.String() + "/image", CreatedAt: &now})
	if err != nil {
		t.Fatalf("create pose: %v", err)
	}
	return p
}

func TestService_Create_RequiresName(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.svc.Create(context.Background(), "   ")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
		t.Fatalf("err=%v, want VALIDATION_ERROR", err)
	}
}

func TestService_CreateFromFavorites_MovesPoses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture()
	userID := uuid.New()
	first := f.newPose(t, ctx)
	second := f.newPose(t, ctx)
	for _, p := range []domain.Pose{first, second} {
		if err := f.favorites.Add(ctx, userID, p.ID); err != nil {
			t.Fatalf("favorite: %v", err)
		}
	}

	sess, err := f.svc.CreateFromFavorites(ctx, userID, "street shoot")
	if err != nil {
		t.Fatalf("CreateFromFavorites err=%v", err)
	}

	members, err := f.svc.Poses(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Poses err=%v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 poses in the session, got %d", len(members))
	}

	left, err := f.favorites.FavoritePoses(ctx, userID)
	if err != nil || len(left) != 0 {
		t.Fatalf("expected favorites emptied after move, got %+v, %v", left, err)
	}
}

func TestService_CreateFromFavorites_EmptyFavorites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture()
	sess, err := f.svc.CreateFromFavorites(ctx, uuid.New(), "empty shoot")
	if err != nil {
		t.Fatalf("CreateFromFavorites err=%v", err)
	}
	members, err := f.svc.Poses(ctx, sess.ID)
	if err != nil || len(members) != 0 {
		t.Fatalf("expected empty session, got %+v, %v", members, err)
	}
}

func TestService_AddFavorites_UnknownSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	err := f.svc.AddFavorites(context.Background(), uuid.New(), uuid.New())
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND", err)
	}
}

func TestService_AddFavorites_MovesIntoExistingSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture()
	userID := uuid.New()
	pose := f.newPose(t, ctx)
	if err := f.favorites.Add(ctx, userID, pose.ID); err != nil {
		t.Fatalf("favorite: %v", err)
	}

	sess, err := f.svc.Create(ctx, "existing")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if err := f.svc.AddFavorites(ctx, userID, sess.ID); err != nil {
		t.Fatalf("AddFavorites err=%v", err)
	}

	members, err := f.svc.Poses(ctx, sess.ID)
	if err != nil || len(members) != 1 || members[0].ID != pose.ID {
		t.Fatalf("expected the moved pose, got %+v, %v", members, err)
	}
	if fav, _ := f.favorites.IsFavorite(ctx, userID, pose.ID); fav {
		t.Fatalf("expected pose unfavorited after move")
	}
}

func TestService_AddAndRemovePoses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture()
	sess, err := f.svc.Create(ctx, "posing practice")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	pose := f.newPose(t, ctx)

	if err := f.svc.AddPoses(ctx, sess.ID, []uuid.UUID{pose.ID}); err != nil {
		t.Fatalf("AddPoses err=%v", err)
	}
	if err := f.svc.RemovePose(ctx, sess.ID, pose.ID); err != nil {
		t.Fatalf("RemovePose err=%v", err)
	}
	members, err := f.svc.Poses(ctx, sess.ID)
	if err != nil || len(members) != 0 {
		t.Fatalf("expected empty session, got %+v, %v", members, err)
	}

	// Deleted poses silently drop out of session listings.
	if err := f.svc.AddPoses(ctx, sess.ID, []uuid.UUID{pose.ID}); err != nil {
		t.Fatalf("re-AddPoses err=%v", err)
	}
	if err := f.poses.Delete(ctx, pose.ID); err != nil && !errors.Is(err, poserepo.ErrNotFound) {
		t.Fatalf("delete pose: %v", err)
	}
	members, err = f.svc.Poses(ctx, sess.ID)
	if err != nil || len(members) != 0 {
		t.Fatalf("expected deleted pose dropped, got %+v, %v", members, err)
	}
}

func TestService_UpdateCover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture()
	sess, err := f.svc.Create(ctx, "cover session")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	updated, err := f.svc.UpdateCover(ctx, sess.ID, "/covers/x.jpg")
	if err != nil || updated.CoverURL != "/covers/x.jpg" {
		t.Fatalf("UpdateCover: %+v, %v", updated, err)
	}

	_, err = f.svc.UpdateCover(ctx, sess.ID, "  ")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
		t.Fatalf("err=%v, want VALIDATION_ERROR for empty cover", err)
	}
}
