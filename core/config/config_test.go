package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spaserver/core/config"
)

type defaultsConfig struct {
	Root    string        `env:"CONFIG_TEST_ROOT" envDefault:"."`
	Port    int           `env:"CONFIG_TEST_PORT" envDefault:"8001"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"15s"`
}

func TestLoadDefaults(t *testing.T) {
	config.Reset()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

type envConfig struct {
	Port     int      `env:"CONFIG_TEST_ENV_PORT" envDefault:"8001"`
	Excludes []string `env:"CONFIG_TEST_ENV_EXCLUDES" envSeparator:","`
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_ENV_PORT", "9090")
	t.Setenv("CONFIG_TEST_ENV_EXCLUDES", "/api,/ws")
	config.Reset()

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"/api", "/ws"}, cfg.Excludes)
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
}

func TestLoadCachesPerType(t *testing.T) {
	config.Reset()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value must be returned")

	config.Reset()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

type invalidConfig struct {
	Port int `env:"CONFIG_TEST_INVALID_PORT"`
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("CONFIG_TEST_INVALID_PORT", "not-a-number")
	config.Reset()

	var cfg invalidConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: failed to parse")

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED,required"`
}

func TestLoadRequired(t *testing.T) {
	config.Reset()
	require.NoError(t, os.Unsetenv("CONFIG_TEST_REQUIRED"))

	var cfg requiredConfig
	assert.Error(t, config.Load(&cfg))
}

type dotenvConfig struct {
	Value string `env:"CONFIG_TEST_DOTENV"`
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONFIG_TEST_DOTENV=from-file\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("CONFIG_TEST_DOTENV") })
	config.Reset()

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg dotenvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	assert.Error(t, config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
}
