package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is the development fallback signing secret. Startup in
// production mode refuses to run with it.
const DefaultJWTSecret = "change-me-in-production"

// UploadDirs are the per-resource directories for stored image assets.
// One flat directory per resource class; files are named {owner_id}.{ext}.
type UploadDirs struct {
	Events    string
	Themes    string
	Poses     string
	Posts     string
	Portfolio string
	Places    string
	Avatars   string
}

// Config is the immutable process configuration, loaded once at startup and
// passed into component constructors. No component mutates it.
type Config struct {
	Port    string
	RunMode string

	JWTSecret string

	// StorageBackend selects the repository adapters: "postgres" or "memory".
	StorageBackend string

	DatabaseURL            string
	DatabaseMaxConns       int32
	DatabaseAcquireTimeout time.Duration
	DatabaseIdleTimeout    time.Duration // 0 = no limit
	DatabaseMaxLifetime    time.Duration // 0 = no limit

	// RateLimitLoginPerMinute bounds login attempts per client IP; 0 disables.
	RateLimitLoginPerMinute int
	// RedisAddr, when set, backs the login rate limit with a shared store so
	// the limit holds across replicas.
	RedisAddr     string
	RedisPassword string

	// CORSAllowedOrigins is empty to allow any origin (development).
	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	Uploads UploadDirs
}

// LoadFromEnv reads the configuration from environment variables, applying
// development defaults for everything that is unset.
func LoadFromEnv() Config {
	return Config{
		Port:    getenv("PORT", "3000"),
		RunMode: getenv("RUN_MODE", "development"),

		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),

		StorageBackend: getenv("STORAGE_BACKEND", "memory"),

		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:       int32(getenvInt("DATABASE_MAX_CONNECTIONS", 10)),
		DatabaseAcquireTimeout: time.Duration(getenvInt("DATABASE_ACQUIRE_TIMEOUT_SECS", 5)) * time.Second,
		DatabaseIdleTimeout:    time.Duration(getenvInt("DATABASE_IDLE_TIMEOUT_SECS", 0)) * time.Second,
		DatabaseMaxLifetime:    time.Duration(getenvInt("DATABASE_MAX_LIFETIME_SECS", 0)) * time.Second,

		RateLimitLoginPerMinute: getenvInt("RATE_LIMIT_LOGIN_PER_MINUTE", 5),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		RedisPassword:           os.Getenv("REDIS_PASSWORD"),

		CORSAllowedOrigins: splitCommaList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		Uploads: UploadDirs{
			Events:    getenv("EVENTS_IMAGES_DIR", "./uploads/events"),
			Themes:    getenv("THEME_OF_THE_DAY_IMAGES_DIR", "./uploads/theme-of-the-day"),
			Poses:     getenv("POSES_IMAGES_DIR", "./uploads/poses"),
			Posts:     getenv("POSTS_IMAGES_DIR", "./uploads/posts"),
			Portfolio: getenv("PORTFOLIO_IMAGES_DIR", "./uploads/portfolio"),
			Places:    getenv("PLACES_IMAGES_DIR", "./uploads/places"),
			Avatars:   getenv("PROFILE_AVATARS_DIR", "./uploads/avatars"),
		},
	}
}

// Validate rejects configurations that must abort startup rather than surface
// per-request failures later.
func (c Config) Validate() error {
	if c.Production() {
		if c.JWTSecret == "" {
			return fmt.Errorf("RUN_MODE=production requires a non-empty JWT_SECRET")
		}
		if c.JWTSecret == DefaultJWTSecret {
			return fmt.Errorf("RUN_MODE=production requires a real JWT_SECRET, not the built-in default")
		}
	}
	switch c.StorageBackend {
	case "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("STORAGE_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want memory or postgres)", c.StorageBackend)
	}
	return nil
}

func (c Config) Production() bool {
	return strings.EqualFold(c.RunMode, "production")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
