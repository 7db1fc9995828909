package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/pkg/config"
)

type defaultsConfig struct {
	Addr    string `env:"SF_TEST_ADDR" envDefault:":8080"`
	Workers int    `env:"SF_TEST_WORKERS" envDefault:"4"`
	Debug   bool   `env:"SF_TEST_DEBUG" envDefault:"true"`
}

type requiredConfig struct {
	URL string `env:"SF_TEST_REQUIRED_URL,required"`
}

type fileConfig struct {
	Value string   `env:"SF_TEST_FILE_VALUE"`
	List  []string `env:"SF_TEST_FILE_LIST" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Debug)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()

	t.Setenv("SF_TEST_ADDR", ":9000")
	var first defaultsConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, ":9000", first.Addr)

	t.Setenv("SF_TEST_ADDR", ":9100")
	var second defaultsConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, ":9000", second.Addr, "cached value should be returned")

	config.ResetCache()
	var third defaultsConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, ":9100", third.Addr)
}

func TestLoad_Required(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("SF_TEST_REQUIRED_URL", "postgres://localhost/feed")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "postgres://localhost/feed", cfg.URL)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()

	path := filepath.Join(t.TempDir(), ".env.test")
	content := "SF_TEST_FILE_VALUE=from_file\nSF_TEST_FILE_LIST=a,b,c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SF_TEST_FILE_VALUE")
		os.Unsetenv("SF_TEST_FILE_LIST")
	})

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
}

func TestLoadEnv_Missing(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
