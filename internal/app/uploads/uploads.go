// Package uploads adapts untrusted base64 image payloads for the application
// services: every create/update-with-image path funnels through Decode before
// touching the asset store.
package uploads

import (
	"errors"
	"strings"

	"github.com/danphoto/portfolio-api/internal/app/apperr"
	"github.com/danphoto/portfolio-api/internal/platform/imaging"
)

// Decode validates and decodes an image_base64 request field, mapping every
// failure to a client-class validation error.
func Decode(payload string) ([]byte, string, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, "", apperr.Validation("image_base64 is required")
	}
	data, ext, err := imaging.DecodeBase64(payload)
	if err != nil {
		var de *imaging.DecodeError
		if errors.As(err, &de) {
			return nil, "", apperr.Validation(de.Reason)
		}
		return nil, "", err
	}
	return data, ext, nil
}
