package assetstore

import (
	"context"
	"errors"
)

// ErrNotFound indicates no stored asset exists for the owner id under any
// known extension.
var ErrNotFound = errors.New("asset not found")

// Extensions are the file extensions a store recognizes, in the fixed order
// they are probed when serving.
var Extensions = []string{"png", "jpg", "jpeg"}

// ContentType maps a recognized extension to its serving content type.
func ContentType(ext string) string {
	if ext == "png" {
		return "image/png"
	}
	return "image/jpeg"
}

// Store persists decoded image bytes keyed by the owning entity's id.
//
// One store instance covers one resource class (poses, posts, avatars, ...);
// within a class there is at most one asset per owner id, and a Save with the
// same owner id and extension overwrites. Save with a different extension
// leaves the old file behind; Serve prefers png, so replacing a png with a
// jpg requires a Remove first if the png must stop winning. Callers that pair
// Save with a database insert must Remove on insert failure so a row never
// references a missing file.
type Store interface {
	Save(ctx context.Context, ownerID string, data []byte, ext string) error

	// Remove deletes the owner's asset across all recognized extensions.
	// Removing an absent asset succeeds.
	Remove(ctx context.Context, ownerID string) error

	// Serve returns the asset bytes and content type, probing extensions in
	// the fixed Extensions order.
	Serve(ctx context.Context, ownerID string) ([]byte, string, error)
}
