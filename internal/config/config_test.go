package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, "./database.db", cfg.Database.Path)
	assert.Equal(t, 5000, cfg.Database.BusyTimeout)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "sqlite-api", cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.HealthChecks.Enabled)
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SQLITEAPI_PRIMARY__ENV", "production")
	t.Setenv("SQLITEAPI_SERVER__PORT", "8080")
	t.Setenv("SQLITEAPI_SERVER__RATE_LIMIT", "2.5")
	t.Setenv("SQLITEAPI_SERVER__CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SQLITEAPI_DATABASE__PATH", "/tmp/users.db")
	t.Setenv("SQLITEAPI_OBSERVABILITY__LOGGING__FORMAT", "json")
	t.Setenv("SQLITEAPI_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "/tmp/users.db", cfg.Database.Path)

	// untouched keys keep their defaults
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Database.PingTimeout)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "SQLITEAPI_OBSERVABILITY__LOGGING__LEVEL", value: "verbose"},
		{name: "log format", key: "SQLITEAPI_OBSERVABILITY__LOGGING__FORMAT", value: "xml"},
		{name: "negative rate limit", key: "SQLITEAPI_SERVER__RATE_LIMIT", value: "-1"},
		{name: "zero ping timeout", key: "SQLITEAPI_DATABASE__PING_TIMEOUT", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestEnvValue(t *testing.T) {
	key, value := envValue("SQLITEAPI_SERVER__PORT", "3000")
	assert.Equal(t, "server.port", key)
	assert.Equal(t, "3000", value)

	key, value = envValue("SQLITEAPI_SERVER__CORS_ALLOWED_ORIGINS", "a, b")
	assert.Equal(t, "server.cors_allowed_origins", key)
	assert.Equal(t, []string{"a", "b"}, value)

	key, value = envValue("SQLITEAPI_SERVER__CORS_ALLOWED_ORIGINS", "http://a.test")
	assert.Equal(t, "server.cors_allowed_origins", key)
	assert.Equal(t, []string{"http://a.test"}, value)

	key, value = envValue("SQLITEAPI_DATABASE__PATH", "/data/a,b.db")
	assert.Equal(t, "database.path", key)
	assert.Equal(t, "/data/a,b.db", value)
}

func TestLoadConfig_CommaInScalarValue(t *testing.T) {
	t.Setenv("SQLITEAPI_DATABASE__PATH", "/data/a,b.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/a,b.db", cfg.Database.Path)
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	cfg.Logging.Level = ""
	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
