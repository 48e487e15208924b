package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/config"
)

type fileConfig struct {
	String string   `env:"FC_TEST_STRING"`
	Int    int      `env:"FC_TEST_INT"`
	List   []string `env:"FC_TEST_LIST" envSeparator:","`
	Quoted string   `env:"FC_TEST_QUOTED"`
}

type defaultsConfig struct {
	Name    string        `env:"FC_NAME" envDefault:"formcheck"`
	Timeout time.Duration `env:"FC_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Value string `env:"FC_REQUIRED,required"`
}

type prefixedConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

func unsetFileVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FC_TEST_STRING", "FC_TEST_INT", "FC_TEST_LIST", "FC_TEST_QUOTED"} {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range []string{"FC_TEST_STRING", "FC_TEST_INT", "FC_TEST_LIST", "FC_TEST_QUOTED"} {
			_ = os.Unsetenv(k)
		}
	})
}

func TestLoadEnv(t *testing.T) {
	unsetFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, fileConfig{
		String: "from_file",
		Int:    1234,
		List:   []string{"a", "b", "c"},
		Quoted: "quoted value",
	}, cfg)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	unsetFileVars(t)
	t.Setenv("FC_TEST_STRING", "from_process")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_process", cfg.String)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "formcheck", cfg.Name)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("required missing", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("required present", func(t *testing.T) {
		t.Setenv("FC_REQUIRED", "yes")
		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "yes", cfg.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9090")
		var cfg prefixedConfig
		require.NoError(t, config.LoadWithPrefix(&cfg, "HTTP_"))
		assert.Equal(t, ":9090", cfg.Addr)
	})
}
