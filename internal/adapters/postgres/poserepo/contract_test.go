package poserepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	"github.com/danphoto/portfolio-api/internal/adapters/postgres/testutil"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

func TestContract_PostgresPoseRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunPoseRepo(t, func(t *testing.T) (poserepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
