package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webroute/config"
)

// Distinct config types per test: parsed values are cached per type,
// so sharing one type across tests would leak state. t.Setenv forbids
// t.Parallel, these tests run sequentially.

func TestLoad(t *testing.T) {
	t.Run("parses_env_variables", func(t *testing.T) {
		type cfg struct {
			Name    string        `env:"LOAD_TEST_NAME" envDefault:"fallback"`
			Port    int           `env:"LOAD_TEST_PORT" envDefault:"8080"`
			Timeout time.Duration `env:"LOAD_TEST_TIMEOUT" envDefault:"5s"`
		}

		t.Setenv("LOAD_TEST_NAME", "webroute")
		t.Setenv("LOAD_TEST_PORT", "9090")

		var c cfg
		require.NoError(t, config.Load(&c))
		assert.Equal(t, "webroute", c.Name)
		assert.Equal(t, 9090, c.Port)
		assert.Equal(t, 5*time.Second, c.Timeout)
	})

	t.Run("caches_per_type", func(t *testing.T) {
		type cfg struct {
			Value string `env:"LOAD_TEST_CACHED"`
		}

		t.Setenv("LOAD_TEST_CACHED", "first")
		var a cfg
		require.NoError(t, config.Load(&a))
		require.Equal(t, "first", a.Value)

		// A changed environment does not affect an already parsed type.
		t.Setenv("LOAD_TEST_CACHED", "second")
		var b cfg
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "first", b.Value)
	})

	t.Run("nil_config_is_an_error", func(t *testing.T) {
		var c *struct{}
		assert.ErrorIs(t, config.Load(c), config.ErrNilConfig)
	})

	t.Run("missing_required_variable_fails", func(t *testing.T) {
		type cfg struct {
			Token string `env:"LOAD_TEST_REQUIRED_TOKEN,required"`
		}

		var c cfg
		assert.ErrorIs(t, config.Load(&c), config.ErrParseFailed)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns_valid_config", func(t *testing.T) {
		type cfg struct {
			Addr string `env:"MUST_LOAD_TEST_ADDR" envDefault:":8080"`
		}

		var c cfg
		assert.NotPanics(t, func() { config.MustLoad(&c) })
		assert.Equal(t, ":8080", c.Addr)
	})

	t.Run("panics_on_failure", func(t *testing.T) {
		type cfg struct {
			Token string `env:"MUST_LOAD_TEST_TOKEN,required"`
		}

		var c cfg
		assert.Panics(t, func() { config.MustLoad(&c) })
	})
}
