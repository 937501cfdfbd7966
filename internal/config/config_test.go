package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the variable must then be absent,
	// not present-but-empty, for envconfig to apply the default.
	t.Setenv("DATABASE_NAME", "")
	os.Unsetenv("DATABASE_NAME")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "ecommerce", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.Database.URLConfigured())
	assert.False(t, cfg.Database.NameConfigured(), "defaulted name must not count as configured")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "shop")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "shop", cfg.Database.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Database.URLConfigured())
	assert.True(t, cfg.Database.NameConfigured())
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}
