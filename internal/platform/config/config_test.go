package config

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "JWT_SECRET_KEY", "JWT_ISSUER", "JWT_ACCESS_TOKEN_EXPIRES",
		"AUTH_USERNAME", "AUTH_PASSWORD_HASH", "LOG_LEVEL", "LOG_FILE",
		"LOGIN_RATE_LIMIT", "REQUEST_TIMEOUT", "TRUSTED_PROXIES", "AUDIT_HASH_KEY",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_PASSWORD", "s3cret")
}

func TestFromEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "admin", cfg.AuthUsername)
	assert.True(t, cfg.UsesDevSecret())
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, cfg.JWTSecretKey, cfg.AuditHashKey)
}

func TestFromEnvOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("JWT_SECRET_KEY", "prod-key")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRES", "900")
	t.Setenv("LOGIN_RATE_LIMIT", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.7")
	t.Setenv("AUDIT_HASH_KEY", "audit-key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 0, cfg.LoginRateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.UsesDevSecret())
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, "audit-key", cfg.AuditHashKey)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.0.2.7/32"),
	}, cfg.TrustedProxies)
}

func TestFromEnvRefusesDevSecretOutsideDevelopment(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")

	t.Setenv("JWT_SECRET_KEY", "prod-key")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Environment)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric token ttl", "JWT_ACCESS_TOKEN_EXPIRES", "soon"},
		{"zero token ttl", "JWT_ACCESS_TOKEN_EXPIRES", "0"},
		{"negative timeout", "REQUEST_TIMEOUT", "-5"},
		{"negative rate limit", "LOGIN_RATE_LIMIT", "-1"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown environment", "APP_ENV", "staging"},
		{"malformed trusted proxy", "TRUSTED_PROXIES", "10.0.0.0/99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnvRequiresCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_PASSWORD", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "AUTH_PASSWORD")
}
