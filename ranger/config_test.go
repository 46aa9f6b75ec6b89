package ranger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/logger"
	"github.com/xy-planning-network/rest/ranger"
)

func TestNewConfigDefaults(t *testing.T) {
	// Act
	cfg, err := ranger.NewConfig()

	// Assert
	require.Nil(t, err)
	require.Equal(t, rest.Development, cfg.Env)
	require.Equal(t, logger.LogLevelInfo, cfg.LogLevel)
	require.Equal(t, "resources.yaml", cfg.ManifestPath)
	require.Equal(t, ":3000", cfg.Addr())
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, ":memory:", cfg.Database.URL)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	require.Zero(t, cfg.RateLimit)
}

func TestNewConfigFromEnv(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/rest")
	t.Setenv("SERVER_WRITE_TIMEOUT", "10s")
	t.Setenv("RATE_LIMIT", "2.5")

	// Act
	cfg, err := ranger.NewConfig()

	// Assert
	require.Nil(t, err)
	require.Equal(t, rest.Staging, cfg.Env)
	require.Equal(t, logger.LogLevelDebug, cfg.LogLevel)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "postgres://localhost/rest", cfg.Database.URL)
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 2.5, cfg.RateLimit)
}

func TestNewConfigBadEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "moon")

	// Act
	_, err := ranger.NewConfig()

	// Assert
	require.ErrorIs(t, err, rest.ErrBadConfig)
}

func TestConfigRootURL(t *testing.T) {
	tcs := []struct {
		name     string
		cfg      ranger.Config
		expected string
		err      error
	}{
		{"Default", ranger.Config{}, "http://localhost:3000", nil},
		{"Port", ranger.Config{Port: ":8080"}, "http://localhost:8080", nil},
		{"BaseURL", ranger.Config{BaseURL: "https://example.com/app"}, "https://example.com/app", nil},
		{"Bad", ranger.Config{BaseURL: "not a url"}, "", rest.ErrBadConfig},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			u, err := tc.cfg.RootURL()

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.expected, u.String())
		})
	}
}
