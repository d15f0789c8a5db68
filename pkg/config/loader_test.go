package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/config"
)

type redisTestConfig struct {
	URL      string `env:"LOADER_TEST_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	Attempts int    `env:"LOADER_TEST_REDIS_ATTEMPTS" envDefault:"3"`
}

type requiredTestConfig struct {
	Token string `env:"LOADER_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("returns error for nil target", func(t *testing.T) {
		var cfg *redisTestConfig
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("applies env values over defaults", func(t *testing.T) {
		t.Setenv("LOADER_TEST_REDIS_URL", "redis://cache:6380/1")

		var cfg redisTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "redis://cache:6380/1", cfg.URL)
		assert.Equal(t, 3, cfg.Attempts)
	})

	t.Run("returns cached value on subsequent loads of the same type", func(t *testing.T) {
		var first redisTestConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load has no effect;
		// the cached value wins.
		t.Setenv("LOADER_TEST_REDIS_ATTEMPTS", "99")

		var second redisTestConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("wraps parse failures for missing required variables", func(t *testing.T) {
		var cfg requiredTestConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when loading fails", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredTestConfig
			config.MustLoad(&cfg)
		})
	})
}
