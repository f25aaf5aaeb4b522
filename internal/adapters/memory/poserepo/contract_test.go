package poserepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

func TestContract_PoseRepo(t *testing.T) {
	contracttest.RunPoseRepo(t, func(t *testing.T) (poserepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
