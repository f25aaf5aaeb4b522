package favoriterepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	pgposerepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/poserepo"
	"github.com/danphoto/portfolio-api/internal/adapters/postgres/testutil"
	favoriterepoport "github.com/danphoto/portfolio-api/internal/ports/out/favoriterepo"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

func TestContract_PostgresFavoriteRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunFavoriteRepo(t, func(t *testing.T) (favoriterepoport.Repository, poserepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), pgposerepo.NewRepo(pool), nil
	})
}
