package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danphoto/portfolio-api/internal/adapters/fs/assetstore"
	"github.com/danphoto/portfolio-api/internal/adapters/httpapi"
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
	"github.com/danphoto/portfolio-api/internal/adapters/postgres"
	pgeventrepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/eventrepo"
	pgfavoriterepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/favoriterepo"
	pghashtagrepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/hashtagrepo"
	pgplacerepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/placerepo"
	pgportfoliorepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/portfoliorepo"
	pgposerepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/poserepo"
	pgpostrepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/postrepo"
	pgsessionrepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/sessionrepo"
	pgthemerepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/themerepo"
	pguserrepo "github.com/danphoto/portfolio-api/internal/adapters/postgres/userrepo"
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
	platformclock "github.com/danphoto/portfolio-api/internal/platform/clock"
	"github.com/danphoto/portfolio-api/internal/platform/config"
	"github.com/danphoto/portfolio-api/internal/platform/logging"
	"github.com/danphoto/portfolio-api/internal/platform/password"
	"github.com/danphoto/portfolio-api/internal/platform/ratelimit"
	"github.com/danphoto/portfolio-api/internal/platform/token"
	"github.com/danphoto/portfolio-api/internal/ports/out/authrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/eventrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/favoriterepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/hashtagrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/placerepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/portfoliorepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/poserepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/postrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/sessionrepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/themerepo"
	"github.com/danphoto/portfolio-api/internal/ports/out/userrepo"
)

// userStore is what both storage backends provide for user lookups: the login
// credential side and the profile side.
type userStore interface {
	authrepo.Repository
	userrepo.Repository
}

func main() {
	cfg := config.LoadFromEnv()

	logger := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	codec := token.NewCodec([]byte(cfg.JWTSecret))
	clk := platformclock.NewSystemClock()

	var (
		users         userStore
		eventRepo     eventrepo.Repository
		themeRepo     themerepo.Repository
		poseRepo      poserepo.Repository
		postRepo      postrepo.Repository
		hashtagRepo   hashtagrepo.Repository
		placeRepo     placerepo.Repository
		portfolioRepo portfoliorepo.Repository
		favoriteRepo  favoriterepo.Repository
		sessionRepo   sessionrepo.Repository
		cleanup       func()
	)

	switch cfg.StorageBackend {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
			logger.Error("database migration failed", "error", err)
			os.Exit(1)
		}
		pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
			URL:             cfg.DatabaseURL,
			MaxConns:        cfg.DatabaseMaxConns,
			MaxConnLifetime: cfg.DatabaseMaxLifetime,
			MaxConnIdleTime: cfg.DatabaseIdleTimeout,
		})
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		cleanup = pool.Close

		users = pguserrepo.NewRepo(pool)
		eventRepo = pgeventrepo.NewRepo(pool)
		themeRepo = pgthemerepo.NewRepo(pool)
		poseRepo = pgposerepo.NewRepo(pool)
		postRepo = pgpostrepo.NewRepo(pool)
		hashtagRepo = pghashtagrepo.NewRepo(pool)
		placeRepo = pgplacerepo.NewRepo(pool)
		portfolioRepo = pgportfoliorepo.NewRepo(pool)
		favoriteRepo = pgfavoriterepo.NewRepo(pool)
		sessionRepo = pgsessionrepo.NewRepo(pool)
	default:
		userRepo := memuserrepo.NewRepo()
		seedDevUser(userRepo, logger)
		poserepoMem := memposerepo.NewRepo()

		users = userRepo
		eventRepo = memeventrepo.NewRepo()
		themeRepo = memthemerepo.NewRepo()
		poseRepo = poserepoMem
		postRepo = mempostrepo.NewRepo()
		hashtagRepo = memhashtagrepo.NewRepo(poserepoMem)
		placeRepo = memplacerepo.NewRepo()
		portfolioRepo = memportfoliorepo.NewRepo()
		favoriteRepo = memfavoriterepo.NewRepo(poserepoMem)
		sessionRepo = memsessionrepo.NewRepo(poserepoMem)
	}

	if cleanup != nil {
		defer cleanup()
	}

	up := cfg.Uploads
	api := &httpapi.Server{
		Auth:      auth.NewService(users, codec, logger),
		Events:    events.NewService(eventRepo, assetstore.New(up.Events), logger),
		Themes:    themes.NewService(themeRepo, assetstore.New(up.Themes), clk, logger),
		Poses:     poses.NewService(poseRepo, hashtagRepo, assetstore.New(up.Poses), logger),
		Posts:     posts.NewService(postRepo, users, assetstore.New(up.Posts), logger),
		Hashtags:  hashtags.NewService(hashtagRepo, poseRepo, logger),
		Places:    places.NewService(placeRepo, assetstore.New(up.Places), logger),
		Portfolio: portfolio.NewService(portfolioRepo, assetstore.New(up.Portfolio), logger),
		Favorites: favorites.NewService(favoriteRepo, poseRepo, logger),
		Sessions:  sessions.NewService(sessionRepo, favoriteRepo, logger),
		Profile:   profile.NewService(users, assetstore.New(up.Avatars), logger),
		Logger:    logger,
	}
	if cfg.RateLimitLoginPerMinute > 0 {
		api.LoginLimiter = ratelimit.New(cfg.RateLimitLoginPerMinute, time.Minute, loginLimitStore(cfg, logger))
	}

	handler := httpapi.NewRouter(api, codec, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", "port", cfg.Port, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// loginLimitStore picks the backing store for the login rate limit: Redis
// when configured so the limit holds across replicas, in-process otherwise.
func loginLimitStore(cfg config.Config, logger *slog.Logger) ratelimit.Store {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryStore()
	}
	logger.Info("login rate limit backed by redis", "addr", cfg.RedisAddr)
	return ratelimit.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 0)
}

// seedDevUser registers a login for the in-memory backend, which starts with
// no users. Skipped unless both env vars are set.
func seedDevUser(repo *memuserrepo.Repo, logger *slog.Logger) {
	email := os.Getenv("DEV_USER_EMAIL")
	plain := os.Getenv("DEV_USER_PASSWORD")
	if email == "" || plain == "" {
		return
	}
	hash, err := password.Hash(plain)
	if err != nil {
		logger.Error("seeding dev user failed", "error", err)
		return
	}
	id := repo.Seed(email, hash)
	logger.Info("seeded dev user", "email", email, "user_id", id)
}
