package favoriterepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	memposerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/poserepo"
	favoriterepoport "github.com/danphoto/portfolio-api/internal/ports/out/favoriterepo"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

func TestContract_FavoriteRepo(t *testing.T) {
	contracttest.RunFavoriteRepo(t, func(t *testing.T) (favoriterepoport.Repository, poserepoport.Repository, func()) {
		t.Helper()
		poses := memposerepo.NewRepo()
		return NewRepo(poses), poses, nil
	})
}
