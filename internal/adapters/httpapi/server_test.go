package httpapi

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danphoto/portfolio-api/internal/adapters/fs/assetstore"
	memclock "github.com/danphoto/portfolio-api/internal/adapters/memory/clock"
	memeventrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/eventrepo"
	memfavoriterepo "github.com/danphoto/portfolio-api/internal/adapters/memory/favoriterepo"
	memhashtagrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/hashtagrepo"
	memplacerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/placerepo"
	memportfoliorepo "github.com/danphoto/portfolio-api/internal/adapters/memory/portfoliorepo"
	memposerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/poserepo"
	mempostrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/postrepo"
	memsessionrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/sessionrepo"
	memthemerepo "github.com/danphoto/portfolio-api/internal/adapters/memory/themerepo"
	memuserrepo "github.com/danphoto/portfolio-api/internal/adapters/memory/userrepo"
	"github.com/danphoto/portfolio-api/internal/app/auth"
	"github.com/danphoto/portfolio-api/internal/app/events"
	"github.com/danphoto/portfolio-api/internal/app/favorites"
	"github.com/danphoto/portfolio-api/internal/app/hashtags"
	"github.com/danphoto/portfolio-api/internal/app/places"
	"github.com/danphoto/portfolio-api/internal/app/portfolio"
	"github.com/danphoto/portfolio-api/internal/app/poses"
	"github.com/danphoto/portfolio-api/internal/app/posts"
	"github.com/danphoto/portfolio-api/internal/app/profile"
	"github.com/danphoto/portfolio-api/internal/app/sessions"
	"github.com/danphoto/portfolio-api/internal/app/themes"
	"github.com/danphoto/portfolio-api/internal/platform/password"
	"github.com/danphoto/portfolio-api/internal/platform/ratelimit"
	"github.com/danphoto/portfolio-api/internal/platform/token"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "correct horse"
)

type harness struct {
	handler http.Handler
	users   *memuserrepo.Repo
}

func newHarness(t *testing.T, loginLimit int) harness {
	t.Helper()

	users := memuserrepo.NewRepo()
	hash, err := password.Hash(testPassword)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users.Seed(testEmail, hash)

	poseRepo := memposerepo.NewRepo()
	hashtagRepo := memhashtagrepo.NewRepo(poseRepo)
	favoriteRepo := memfavoriterepo.NewRepo(poseRepo)
	codec := token.NewCodec([]byte("test-secret"))

	newAssets := func() *assetstore.Store { return assetstore.New(t.TempDir()) }

	srv := &Server{
		Auth:      auth.NewService(users, codec, nil),
		Events:    events.NewService(memeventrepo.NewRepo(), newAssets(), nil),
		Themes:    themes.NewService(memthemerepo.NewRepo(), newAssets(), memclock.NewManualClock(time.Now().UTC()), nil),
		Poses:     poses.NewService(poseRepo, hashtagRepo, newAssets(), nil),
		Posts:     posts.NewService(mempostrepo.NewRepo(), users, newAssets(), nil),
		Hashtags:  hashtags.NewService(hashtagRepo, poseRepo, nil),
		Places:    places.NewService(memplacerepo.NewRepo(), newAssets(), nil),
		Portfolio: portfolio.NewService(memportfoliorepo.NewRepo(), newAssets(), nil),
		Favorites: favorites.NewService(favoriteRepo, poseRepo, nil),
		Sessions:  sessions.NewService(memsessionrepo.NewRepo(poseRepo), favoriteRepo, nil),
		Profile:   profile.NewService(users, newAssets(), nil),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if loginLimit > 0 {
		srv.LoginLimiter = ratelimit.New(loginLimit, time.Minute, ratelimit.NewMemoryStore())
	}

	return harness{handler: NewRouter(srv, codec, nil), users: users}
}

func (h harness) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func (h harness) login(t *testing.T) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": testEmail, "password": testPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status=%d body=%s", rec.Code, rec.Body)
	}
	var out struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.TokenType != "Bearer" || out.Token == "" {
		t.Fatalf("unexpected login response: %+v", out)
	}
	return out.Token
}

func imagePayload() string {
	return base64.StdEncoding.EncodeToString([]byte("image-bytes"))
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body, err)
	}
	return out.Error.Code, out.Error.Message
}

func TestHealth_NoAuth(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	rec := h.do(t, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	rec := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": testEmail, "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", rec.Code)
	}
	code, msg := decodeErrorBody(t, rec)
	if code != "UNAUTHORIZED" || msg != "invalid email or password" {
		t.Fatalf("code=%q msg=%q", code, msg)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2)
	for i := 0; i < 2; i++ {
		if rec := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": testEmail, "password": testPassword,
		}); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d status=%d", i, rec.Code)
		}
	}
	rec := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": testEmail, "password": testPassword,
	})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After header")
	}
	code, _ := decodeErrorBody(t, rec)
	if code != "RATE_LIMITED" {
		t.Fatalf("code=%q", code)
	}
}

func TestAuthMiddleware_RejectsUniformly(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	expired, err := token.NewCodec([]byte("test-secret")).Issue(testEmail, -time.Minute)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	foreign, err := token.NewCodec([]byte("other-secret")).Issue(testEmail, time.Hour)
	if err != nil {
		t.Fatalf("issue foreign: %v", err)
	}

	for name, bearer := range map[string]string{
		"missing":      "",
		"garbage":      "not-a-token",
		"expired":      expired,
		"wrong secret": foreign,
	} {
		rec := h.do(t, http.MethodGet, "/api/poses", bearer, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status=%d", name, rec.Code)
		}
		code, msg := decodeErrorBody(t, rec)
		if code != "UNAUTHORIZED" || msg != "invalid or missing token" {
			t.Fatalf("%s: code=%q msg=%q, want the uniform body", name, code, msg)
		}
	}
}

func TestPoses_CreateListServe(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	bearer := h.login(t)

	rec := h.do(t, http.MethodPost, "/api/poses", bearer, map[string]any{"image_base64": imagePayload()})
	if rec.Code != http.StatusOK {
		t.Fatalf("create status=%d body=%s", rec.Code, rec.Body)
	}
	var created struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.URL != "/api/poses/"+created.ID+"/image" {
		t.Fatalf("url=%q", created.URL)
	}

	// Paginated listing is a bare array, not an envelope.
	rec = h.do(t, http.MethodGet, "/api/poses/paginated?page=0&limit=10", bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("paginated status=%d", rec.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("expected a bare array, got %q: %v", rec.Body, err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 pose, got %d", len(list))
	}

	// The image endpoint is public.
	rec = h.do(t, http.MethodGet, created.URL, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("image status=%d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("content type=%q", ct)
	}
	if rec.Body.String() != "image-bytes" {
		t.Fatalf("body=%q", rec.Body)
	}
}

func TestPosts_PaginationEnvelope(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	bearer := h.login(t)

	for i := 0; i < 3; i++ {
		rec := h.do(t, http.MethodPost, "/api/posts", bearer, map[string]any{
			"image_base64":        imagePayload(),
			"theme_of_the_day_id": "0714",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("create %d status=%d body=%s", i, rec.Code, rec.Body)
		}
	}

	rec := h.do(t, http.MethodGet, "/api/posts/paginated?page=0&limit=2", bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var page struct {
		Items      []json.RawMessage `json:"items"`
		Count      uint64            `json:"count"`
		Page       uint32            `json:"page"`
		Limit      uint32            `json:"limit"`
		TotalPages uint32            `json:"total_pages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(page.Items) != 2 || page.Count != 3 || page.Page != 0 || page.Limit != 2 || page.TotalPages != 2 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
}

func TestProfile_TriStateName(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	bearer := h.login(t)

	type userBody struct {
		Name *string `json:"name"`
	}
	readName := func(rec *httptest.ResponseRecorder) *string {
		var u userBody
		if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
			t.Fatalf("decode profile: %v", err)
		}
		return u.Name
	}

	// Set a name.
	rec := h.do(t, http.MethodPut, "/api/profile", bearer, map[string]any{"name": "Alice"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set status=%d body=%s", rec.Code, rec.Body)
	}
	if n := readName(rec); n == nil || *n != "Alice" {
		t.Fatalf("name=%v, want Alice", n)
	}

	// Absent field leaves it unchanged.
	rec = h.do(t, http.MethodPut, "/api/profile", bearer, map[string]any{})
	if rec.Code != http.StatusOK {
		t.Fatalf("noop status=%d", rec.Code)
	}
	if n := readName(rec); n == nil || *n != "Alice" {
		t.Fatalf("name=%v, want unchanged Alice", n)
	}

	// Explicit null clears it.
	rec = h.do(t, http.MethodPut, "/api/profile", bearer, map[string]any{"name": nil})
	if rec.Code != http.StatusOK {
		t.Fatalf("clear status=%d", rec.Code)
	}
	if n := readName(rec); n != nil {
		t.Fatalf("name=%v, want cleared", *n)
	}
}

func TestPathValidation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	bearer := h.login(t)

	rec := h.do(t, http.MethodGet, "/api/poses/not-a-uuid", bearer, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	code, _ := decodeErrorBody(t, rec)
	if code != "VALIDATION_ERROR" {
		t.Fatalf("code=%q", code)
	}
}

func TestFavoritesFlow(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0)
	bearer := h.login(t)

	rec := h.do(t, http.MethodPost, "/api/poses", bearer, map[string]any{"image_base64": imagePayload()})
	if rec.Code != http.StatusOK {
		t.Fatalf("create pose status=%d", rec.Code)
	}
	var pose struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &pose); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if rec = h.do(t, http.MethodPost, "/api/favorites/poses/"+pose.ID, bearer, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("add favorite status=%d", rec.Code)
	}

	rec = h.do(t, http.MethodGet, "/api/favorites/poses/"+pose.ID, bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("is-favorite status=%d", rec.Code)
	}
	var fav struct {
		Favorite bool `json:"favorite"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fav); err != nil || !fav.Favorite {
		t.Fatalf("favorite=%v err=%v", fav.Favorite, err)
	}

	if rec = h.do(t, http.MethodDelete, "/api/favorites/poses/"+pose.ID, bearer, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("remove favorite status=%d", rec.Code)
	}
	rec = h.do(t, http.MethodGet, "/api/favorites/poses", bearer, nil)
	if rec.Code != http.StatusOK || rec.Body.String() == "" {
		t.Fatalf("list favorites status=%d", rec.Code)
	}
	var left []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &left); err != nil || len(left) != 0 {
		t.Fatalf("expected no favorites, got %q", rec.Body)
	}
}
