package logger

import (
	"testing"

	"github.com/deppfellow/sqlite-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, service.GetApplication())
	assert.NotPanics(t, service.Shutdown)
}

func TestNewLoggerWithService_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLoggerWithService(cfg, NewLoggerService(cfg))
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	cfg.Environment = "production"
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "error"

	logger = NewLoggerWithService(cfg, nil)
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	base := zerolog.Nop()
	assert.Equal(t, base, WithTraceContext(base, nil))
}
