package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/NicoBar2/scrapingdarwin/pkg/platform/middleware/metadata"
)

const (
	devJWTSecret = "dev-secret-key-change-in-production"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Server captures HTTP server level configuration.
type Server struct {
	Environment    string
	Addr           string
	RequestTimeout time.Duration
	// TrustedProxies are the peers allowed to set X-Forwarded-For/X-Real-IP.
	TrustedProxies []netip.Prefix

	JWTSecretKey     string
	JWTIssuer        string
	AccessTokenTTL   time.Duration
	LoginRateLimit   int
	AuthUsername     string
	AuthPassword     string
	AuthPasswordHash string
	// AuditHashKey keys the HMAC applied to identifiers in audit events.
	AuditHashKey string

	LogLevel string
	LogFile  string
}

// UsesDevSecret reports whether the JWT secret was left at its development default.
func (s Server) UsesDevSecret() bool {
	return s.JWTSecretKey == devJWTSecret
}

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	cfg := Server{
		Environment:      strings.ToLower(getenv("APP_ENV", EnvProduction)),
		Addr:             getenv("SERVER_ADDR", ":8080"),
		JWTSecretKey:     getenv("JWT_SECRET_KEY", devJWTSecret),
		JWTIssuer:        getenv("JWT_ISSUER", "scrapingdarwin"),
		AuthUsername:     getenv("AUTH_USERNAME", "admin"),
		AuthPassword:     os.Getenv("AUTH_PASSWORD"),
		AuthPasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
		AuditHashKey:     os.Getenv("AUDIT_HASH_KEY"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFile:          os.Getenv("LOG_FILE"),
	}

	ttl, err := positiveInt("JWT_ACCESS_TOKEN_EXPIRES", 3600)
	if err != nil {
		return Server{}, err
	}
	cfg.AccessTokenTTL = time.Duration(ttl) * time.Second

	timeout, err := positiveInt("REQUEST_TIMEOUT", 30)
	if err != nil {
		return Server{}, err
	}
	cfg.RequestTimeout = time.Duration(timeout) * time.Second

	limit, err := intFromEnv("LOGIN_RATE_LIMIT", 10)
	if err != nil {
		return Server{}, err
	}
	if limit < 0 {
		return Server{}, fmt.Errorf("LOGIN_RATE_LIMIT must not be negative, got %d", limit)
	}
	cfg.LoginRateLimit = limit

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Server{}, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	switch cfg.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return Server{}, fmt.Errorf("APP_ENV must be one of development, production, got %q", cfg.Environment)
	}
	if cfg.UsesDevSecret() && cfg.Environment != EnvDevelopment {
		return Server{}, fmt.Errorf("JWT_SECRET_KEY must be set outside APP_ENV=development")
	}
	if cfg.AuditHashKey == "" {
		cfg.AuditHashKey = cfg.JWTSecretKey
	}

	proxies, err := metadata.ParseTrustedProxies(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return Server{}, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = proxies

	if cfg.AuthPassword == "" && cfg.AuthPasswordHash == "" {
		return Server{}, fmt.Errorf("one of AUTH_PASSWORD or AUTH_PASSWORD_HASH must be set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func positiveInt(key string, fallback int) (int, error) {
	n, err := intFromEnv(key, fallback)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
