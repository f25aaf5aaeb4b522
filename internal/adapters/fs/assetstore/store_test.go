package assetstore

import (
	"context"
	"testing"

	assetport "github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
)

func TestStore_SaveAndServe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(t.TempDir())
	if err := s.Save(ctx, "owner-1", []byte("jpeg-bytes"), "jpg"); err != nil {
		t.Fatalf("Save err=%v", err)
	}

	data, ct, err := s.Serve(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Serve err=%v", err)
	}
	if string(data) != "jpeg-bytes" || ct != "image/jpeg" {
		t.Fatalf("got %q %q", data, ct)
	}
}

func TestStore_ServePrefersPNG(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(t.TempDir())
	if err := s.Save(ctx, "owner-1", []byte("jpg-bytes"), "jpg"); err != nil {
		t.Fatalf("Save jpg err=%v", err)
	}
	if err := s.Save(ctx, "owner-1", []byte("png-bytes"), "png"); err != nil {
		t.Fatalf("Save png err=%v", err)
	}

	data, ct, err := s.Serve(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Serve err=%v", err)
	}
	if string(data) != "png-bytes" || ct != "image/png" {
		t.Fatalf("expected png to win the probe, got %q %q", data, ct)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(t.TempDir())
	if err := s.Save(ctx, "owner-1", []byte("v1"), "jpg"); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if err := s.Save(ctx, "owner-1", []byte("v2"), "jpg"); err != nil {
		t.Fatalf("Save overwrite err=%v", err)
	}
	data, _, err := s.Serve(ctx, "owner-1")
	if err != nil || string(data) != "v2" {
		t.Fatalf("expected overwritten asset, got %q, %v", data, err)
	}
}

func TestStore_RemoveAllExtensions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(t.TempDir())
	if err := s.Save(ctx, "owner-1", []byte("a"), "png"); err != nil {
		t.Fatalf("Save png err=%v", err)
	}
	if err := s.Save(ctx, "owner-1", []byte("b"), "jpg"); err != nil {
		t.Fatalf("Save jpg err=%v", err)
	}

	if err := s.Remove(ctx, "owner-1"); err != nil {
		t.Fatalf("Remove err=%v", err)
	}
	if _, _, err := s.Serve(ctx, "owner-1"); err != assetport.ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound after remove", err)
	}
	// Removing again is still fine.
	if err := s.Remove(ctx, "owner-1"); err != nil {
		t.Fatalf("Remove absent err=%v", err)
	}
}

func TestStore_ServeMissing(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())
	if _, _, err := s.Serve(context.Background(), "nobody"); err != assetport.ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
