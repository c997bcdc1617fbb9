// Package config loads the application configuration.
//
// Values come from environment variables prefixed with SQLITEAPI_ (a `.env`
// file in the working directory is loaded first, if present). Nested keys
// are separated by a double underscore, so SQLITEAPI_SERVER__PORT maps to
// server.port. Every key has a default, which means the service runs with
// an empty environment: port 3000 and ./database.db.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SQLITEAPI_"

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server. Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig points at the SQLite file backing the users table.
type DatabaseConfig struct {
	// Path is the SQLite file, created if missing. ":memory:" is accepted.
	Path string `koanf:"path" validate:"required"`

	// BusyTimeout is how long, in milliseconds, SQLite waits on a locked
	// database file before failing with SQLITE_BUSY.
	BusyTimeout int `koanf:"busy_timeout" validate:"min=0"`

	// PingTimeout bounds the startup connectivity check, in seconds.
	PingTimeout int `koanf:"ping_timeout" validate:"min=1"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Path:        "./database.db",
			BusyTimeout: 5000,
			PingTimeout: 10,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey turns SQLITEAPI_SERVER__CORS_ALLOWED_ORIGINS into
// server.cors_allowed_origins.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// listKeys are the keys whose env value is a comma separated list. Every
// other value is kept verbatim, commas included.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envValue maps an env variable onto its koanf key and splits list values.
func envValue(key, value string) (string, interface{}) {
	k := envKey(key)
	if !listKeys[k] {
		return k, value
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return k, parts
}

// LoadConfig reads the environment over the defaults, validates the result
// and returns it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal decodes over the defaults; keys absent from the
	// environment keep their default value.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = "sqlite-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
