package hashtagrepo

import (
	"testing"

	"github.com/danphoto/portfolio-api/internal/adapters/contracttest"
	memposerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/poserepo"
	hashtagrepoport "github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	poserepoport "github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
)

func TestContract_HashtagRepo(t *testing.T) {
	contracttest.RunHashtagRepo(t, func(t *testing.T) (hashtagrepoport.Repository, poserepoport.Repository, func()) {
		t.Helper()
		poses := memposerepo.NewRepo()
		return NewRepo(poses), poses, nil
	})
}
