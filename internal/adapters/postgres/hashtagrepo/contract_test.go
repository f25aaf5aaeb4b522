package hashtagrepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	pgposerepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/poserepo"
	"github.com/danphoto/portfolio-api/internal/adapters/postgres/testutil"
	hashtagrepoport "github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

func TestContract_PostgresHashtagRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunHashtagRepo(t, func(t *testing.T) (hashtagrepoport.Repository, poserepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), pgposerepo.NewRepo(pool), nil
	})
}
