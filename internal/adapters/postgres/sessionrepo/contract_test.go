package sessionrepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	pgposerepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/poserepo"
	"github.com/danphoto/portfolio-api/internal/adapters/postgres/testutil"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
	sessionrepoport "github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
)

func TestContract_PostgresSessionRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunSessionRepo(t, func(t *testing.T) (sessionrepoport.Repository, poserepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), pgposerepo.NewRepo(pool), nil
	})
}
