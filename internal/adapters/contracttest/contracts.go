// Package contracttest holds behavioral suites that every implementation of a
// repository port must pass. The memory adapters run them directly; the
// postgres adapters run them behind a build tag against a disposable database.
package contracttest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danphoto/portfolio-api/internal/domain"
	"github.com/danphoto/portfolio-api/internal/ports/out/favoriterepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
)

type CleanupFunc = func()

// Each factory returns the repository under test plus the pose repository the
// links resolve against (the same backing store for postgres, a sibling repo
// for memory).
type PoseRepoFactory func(t *testing.T) (poserepo.Repository, CleanupFunc)
type HashtagRepoFactory func(t *testing.T) (hashtagrepo.Repository, poserepo.Repository, CleanupFunc)
type FavoriteRepoFactory func(t *testing.T) (favoriterepo.Repository, poserepo.Repository, CleanupFunc)
type SessionRepoFactory func(t *testing.T) (sessionrepo.Repository, poserepo.Repository, CleanupFunc)

func newPose(t *testing.T, ctx context.Context, repo poserepo.Repository) domain.Pose {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	p, err := repo.Create(ctx, domain.Pose{
		ID:        id,
		ImageURL:  "/api/poses/" + id.String() + "/image",
		CreatedAt: &now,
	})
	if err != nil {
		t.Fatalf("create pose: %v", err)
	}
	return p
}

func RunPoseRepo(t *testing.T, newRepo PoseRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	first := newPose(t, ctx, repo)
	second := newPose(t, ctx, repo)

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != first.ID || got.ImageURL != first.ImageURL {
		t.Fatalf("unexpected pose: %+v", got)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 poses, got %d", len(all))
	}
	// Newest first.
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest-first ordering, got %v then %v", all[0].ID, all[1].ID)
	}

	page, err := repo.ListPaginated(ctx, 0, 1)
	if err != nil {
		t.Fatalf("ListPaginated: %v", err)
	}
	if len(page) != 1 || page[0].ID != second.ID {
		t.Fatalf("expected page 0 to hold the newest pose, got %+v", page)
	}
	page, err = repo.ListPaginated(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ListPaginated page 1: %v", err)
	}
	if len(page) != 1 || page[0].ID != first.ID {
		t.Fatalf("expected page 1 to hold the older pose, got %+v", page)
	}
	page, err = repo.ListPaginated(ctx, 5, 10)
	if err != nil {
		t.Fatalf("ListPaginated past end: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page past the end, got %d items", len(page))
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, first.ID); err != poserepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err != poserepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func RunHashtagRepo(t *testing.T, newRepo HashtagRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, poses, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	tag, err := repo.Create(ctx, domain.Hashtag{ID: uuid.New(), Name: "golden-hour"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, tag.ID)
	if err != nil || got.Name != "golden-hour" {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}
	if _, err := repo.GetByID(ctx, uuid.New()); err != hashtagrepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	pose := newPose(t, ctx, poses)

	if err := repo.AttachToPose(ctx, pose.ID, tag.ID); err != nil {
		t.Fatalf("AttachToPose: %v", err)
	}
	// Attaching again is a no-op.
	if err := repo.AttachToPose(ctx, pose.ID, tag.ID); err != nil {
		t.Fatalf("AttachToPose repeat: %v", err)
	}

	tags, err := repo.HashtagsByPose(ctx, pose.ID)
	if err != nil {
		t.Fatalf("HashtagsByPose: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != tag.ID {
		t.Fatalf("expected the single attached tag, got %+v", tags)
	}

	tagged, err := repo.PosesByHashtag(ctx, tag.ID)
	if err != nil {
		t.Fatalf("PosesByHashtag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].ID != pose.ID {
		t.Fatalf("expected the tagged pose, got %+v", tagged)
	}

	if err := repo.DetachFromPose(ctx, pose.ID, tag.ID); err != nil {
		t.Fatalf("DetachFromPose: %v", err)
	}
	// Detaching an absent link succeeds.
	if err := repo.DetachFromPose(ctx, pose.ID, tag.ID); err != nil {
		t.Fatalf("DetachFromPose repeat: %v", err)
	}
	tags, err = repo.HashtagsByPose(ctx, pose.ID)
	if err != nil || len(tags) != 0 {
		t.Fatalf("expected no tags after detach, got %+v, %v", tags, err)
	}

	if err := repo.AttachToPose(ctx, pose.ID, tag.ID); err != nil {
		t.Fatalf("re-AttachToPose: %v", err)
	}
	if err := repo.DetachAllFromPose(ctx, pose.ID); err != nil {
		t.Fatalf("DetachAllFromPose: %v", err)
	}
	tagged, err = repo.PosesByHashtag(ctx, tag.ID)
	if err != nil || len(tagged) != 0 {
		t.Fatalf("expected no tagged poses after detach-all, got %+v, %v", tagged, err)
	}

	if err := repo.Delete(ctx, tag.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, tag.ID); err != hashtagrepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func RunFavoriteRepo(t *testing.T, newRepo FavoriteRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, poses, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	userID := uuid.New()
	first := newPose(t, ctx, poses)
	second := newPose(t, ctx, poses)

	fav, err := repo.IsFavorite(ctx, userID, first.ID)
	if err != nil || fav {
		t.Fatalf("expected not favorite initially, got %v, %v", fav, err)
	}

	if err := repo.Add(ctx, userID, first.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Add(ctx, userID, first.ID); err != nil {
		t.Fatalf("Add repeat: %v", err)
	}
	if err := repo.Add(ctx, userID, second.ID); err != nil {
		t.Fatalf("Add second: %v", err)
	}

	fav, err = repo.IsFavorite(ctx, userID, first.ID)
	if err != nil || !fav {
		t.Fatalf("expected favorite after add, got %v, %v", fav, err)
	}

	list, err := repo.FavoritePoses(ctx, userID)
	if err != nil {
		t.Fatalf("FavoritePoses: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest-favorited-first, got %+v", list)
	}

	// Another user sees nothing.
	other, err := repo.FavoritePoses(ctx, uuid.New())
	if err != nil || len(other) != 0 {
		t.Fatalf("expected empty favorites for other user, got %+v, %v", other, err)
	}

	if err := repo.Remove(ctx, userID, first.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := repo.Remove(ctx, userID, first.ID); err != nil {
		t.Fatalf("Remove repeat: %v", err)
	}

	if err := repo.RemoveMany(ctx, userID, []uuid.UUID{second.ID}); err != nil {
		t.Fatalf("RemoveMany: %v", err)
	}
	if err := repo.RemoveMany(ctx, userID, nil); err != nil {
		t.Fatalf("RemoveMany empty: %v", err)
	}
	list, err = repo.FavoritePoses(ctx, userID)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected no favorites left, got %+v, %v", list, err)
	}
}

func RunSessionRepo(t *testing.T, newRepo SessionRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, poses, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Now().UTC()
	sess, err := repo.Create(ctx, domain.Session{ID: uuid.New(), Name: "urbex shoot", CreatedAt: &now})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, sess.ID)
	if err != nil || got.Name != "urbex shoot" {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}
	if _, err := repo.GetByID(ctx, uuid.New()); err != sessionrepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	first := newPose(t, ctx, poses)
	second := newPose(t, ctx, poses)

	if err := repo.AddPoses(ctx, sess.ID, []uuid.UUID{first.ID, second.ID}); err != nil {
		t.Fatalf("AddPoses: %v", err)
	}
	// Re-adding is a no-op.
	if err := repo.AddPoses(ctx, sess.ID, []uuid.UUID{first.ID}); err != nil {
		t.Fatalf("AddPoses repeat: %v", err)
	}

	members, err := repo.PosesBySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("PosesBySession: %v", err)
	}
	if len(members) != 2 || members[0].ID != first.ID || members[1].ID != second.ID {
		t.Fatalf("expected add-order poses, got %+v", members)
	}

	if err := repo.RemovePose(ctx, sess.ID, first.ID); err != nil {
		t.Fatalf("RemovePose: %v", err)
	}
	members, err = repo.PosesBySession(ctx, sess.ID)
	if err != nil || len(members) != 1 || members[0].ID != second.ID {
		t.Fatalf("expected one pose left, got %+v, %v", members, err)
	}

	updated, err := repo.UpdateCover(ctx, sess.ID, "/covers/urbex.jpg")
	if err != nil {
		t.Fatalf("UpdateCover: %v", err)
	}
	if updated.CoverURL != "/covers/urbex.jpg" {
		t.Fatalf("expected updated cover, got %+v", updated)
	}

	if err := repo.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, sess.ID); err != sessionrepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
