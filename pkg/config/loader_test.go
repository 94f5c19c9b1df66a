package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilekit/fblogin/pkg/config"
)

type testConfig struct {
	AppID      string `env:"TEST_FBLOGIN_APP_ID,required"`
	HostPrefix string `env:"TEST_FBLOGIN_HOST_PREFIX" envDefault:"m."`
}

func TestLoad(t *testing.T) {
	t.Run("parses tagged fields", func(t *testing.T) {
		t.Setenv("TEST_FBLOGIN_APP_ID", "1234")
		t.Setenv("TEST_FBLOGIN_HOST_PREFIX", "www.")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "1234", cfg.AppID)
		assert.Equal(t, "www.", cfg.HostPrefix)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("TEST_FBLOGIN_APP_ID", "1234")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "m.", cfg.HostPrefix)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[testConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}
