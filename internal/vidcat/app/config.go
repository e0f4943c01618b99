package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/pkg/jwtx"
	"github.com/aussiebroadwan/vidcat/pkg/playtoken"
)

// Secrets used when ENV is dev or test and nothing is configured. Any other
// environment refuses to start without real ones.
const (
	devJWTSecret      = "vidcat-dev-jwt-secret-do-not-use-in-prod"
	devPlaybackSecret = "vidcat-dev-playback-secret-do-not-use-in-prod"
)

type Config struct {
	Issuer       string // JWT iss claim (default: vidcat)
	DatabaseFile string // SQLite database file (default: ./vidcat.db)
	PepperFile   string // argon2 pepper file (default: ./pepper)

	JWTSecret       string        // HS256 key for access tokens
	AccessTokenTTL  time.Duration // default: 1h
	RefreshTokenTTL time.Duration // default: 30 days

	PlaybackSecret       string        // HMAC key for playback tokens, shared by every instance
	PlaybackTTL          time.Duration // default: 1h
	PlaybackClockLeeway  time.Duration // default: 0
	PlaybackEmbedBaseURL string        // default: https://www.youtube.com/embed/

	SeedToken      string   // Optional: required by the seed endpoint when set
	CORSOrigins    []string // default: *
	MetricsEnabled bool     // default: true

	Env                  string        // dev, test, staging, prod (default: dev)
	LogLevel             string        // debug, info, warn, error (default: info)
	LogFormat            string        // json, text (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // default: 10s
	HousekeepingInterval time.Duration // default: 1h
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("VIDCAT_ISSUER", "vidcat"),
		DatabaseFile: getEnvOrDefault("VIDCAT_DATABASE_FILE", "vidcat.db"),
		PepperFile:   getEnvOrDefault("VIDCAT_PEPPER_FILE", "pepper"),

		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		AccessTokenTTL:  getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL: getEnvDurationOrDefault("REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),

		PlaybackSecret:       os.Getenv("PLAYBACK_SECRET"),
		PlaybackTTL:          getEnvDurationOrDefault("PLAYBACK_TTL", playtoken.DefaultTTL),
		PlaybackClockLeeway:  getEnvDurationOrDefault("PLAYBACK_CLOCK_LEEWAY", 0),
		PlaybackEmbedBaseURL: getEnvOrDefault("PLAYBACK_EMBED_BASE_URL", service.DefaultEmbedBaseURL),

		SeedToken:      os.Getenv("SEED_TOKEN"),
		CORSOrigins:    splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		MetricsEnabled: getEnvBoolOrDefault("METRICS_ENABLED", true),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.devLike() {
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = devJWTSecret
		}
		if cfg.PlaybackSecret == "" {
			cfg.PlaybackSecret = devPlaybackSecret
		}
	}

	return cfg
}

func (c Config) devLike() bool {
	return c.Env == "dev" || c.Env == "test"
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	} else if !c.devLike() && len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes", jwtx.MinSecretLength))
	}

	if c.PlaybackSecret == "" {
		errs = append(errs, errors.New("PLAYBACK_SECRET is required"))
	} else if !c.devLike() && len(c.PlaybackSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("PLAYBACK_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}

	if !c.devLike() && c.JWTSecret != "" && c.JWTSecret == c.PlaybackSecret {
		errs = append(errs, errors.New("PLAYBACK_SECRET must differ from JWT_SECRET_KEY"))
	}

	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("REFRESH_TOKEN_TTL must be positive"))
	}
	if c.PlaybackTTL <= 0 {
		errs = append(errs, errors.New("PLAYBACK_TTL must be positive"))
	}
	if c.PlaybackClockLeeway < 0 {
		errs = append(errs, errors.New("PLAYBACK_CLOCK_LEEWAY must not be negative"))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds, matching the playback TTL's wire unit.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
