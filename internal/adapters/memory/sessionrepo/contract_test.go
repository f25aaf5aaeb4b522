package sessionrepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	memposerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/poserepo"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
	sessionrepoport "github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
)

func TestContract_SessionRepo(t *testing.T) {
	contracttest.RunSessionRepo(t, func(t *testing.T) (sessionrepoport.Repository, poserepoport.Repository, func()) {
		t.Helper()
		poses := memposerepo.NewRepo()
		return NewRepo(poses), poses, nil
	})
}
