package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcards/internal/srs"
)

// chdir moves into an empty directory so no config file or .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/flashcards")
	t.Setenv("TELEGRAM_API_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "postgres://localhost/flashcards", cfg.DB.URL)
	assert.Empty(t, cfg.TelegramAPIToken)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, srs.DefaultParams(), cfg.SRS.Params())
	assert.True(t, cfg.Reminders.Enabled)
	assert.Equal(t, "0 * * * *", cfg.Reminders.Spec)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	chdir(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdir(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/flashcards")

	yaml := `
env: production
http:
  address: ":9090"
srs:
  maximum_interval: 365
reminders:
  enabled: false
`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 365, cfg.SRS.MaximumInterval)
	assert.False(t, cfg.Reminders.Enabled)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_URL=postgres://db/from-dotenv\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/from-dotenv", cfg.DB.URL)
}

func TestLoadRejectsInvalidSRS(t *testing.T) {
	chdir(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/flashcards")
	t.Setenv("SRS_MINIMUM_EASE", "0")

	_, err := Load()
	assert.Error(t, err)
}
