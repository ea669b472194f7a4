package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CategoryLeaders/productlobby-sub011/pkg/config"
)

type testConfig struct {
	MaxSize int           `env:"TEST_CACHE_MAX_SIZE" envDefault:"1000"`
	TTL     time.Duration `env:"TEST_CACHE_TTL" envDefault:"60s"`
	DBURL   string        `env:"TEST_DB_URL,required"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_DB_URL", "postgres://localhost/test")
	t.Setenv("TEST_CACHE_MAX_SIZE", "50")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 50, cfg.MaxSize)
	assert.Equal(t, time.Minute, cfg.TTL)
	assert.Equal(t, "postgres://localhost/test", cfg.DBURL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("TEST_DB_URL", "")
	os.Unsetenv("TEST_DB_URL")

	var cfg testConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DB_URL=postgres://file/db\nTEST_CACHE_TTL=5s\n"), 0o600))

	// Register cleanup for variables godotenv will set.
	t.Setenv("TEST_DB_URL", "")
	t.Setenv("TEST_CACHE_TTL", "")
	os.Unsetenv("TEST_DB_URL")
	os.Unsetenv("TEST_CACHE_TTL")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, path))
	assert.Equal(t, "postgres://file/db", cfg.DBURL)
	assert.Equal(t, 5*time.Second, cfg.TTL)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DB_URL=postgres://file/db\n"), 0o600))
	t.Setenv("TEST_DB_URL", "postgres://env/db")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, path))
	assert.Equal(t, "postgres://env/db", cfg.DBURL)
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg, filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	t.Setenv("TEST_DB_URL", "")
	os.Unsetenv("TEST_DB_URL")

	var cfg testConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
