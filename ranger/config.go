package ranger

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/logger"
)

// Config holds the settings a Ranger reads from environment variables.
// Confer the package documentation for each variable.
type Config struct {
	BaseURL      string           `env:"BASE_URL"`
	Env          rest.Environment `env:"ENVIRONMENT" envDefault:"DEVELOPMENT"`
	LogLevel     logger.LogLevel  `env:"LOG_LEVEL" envDefault:"INFO"`
	ManifestPath string           `env:"MANIFEST_PATH" envDefault:"resources.yaml"`
	Port         string           `env:"PORT" envDefault:"3000"`
	RateBurst    int              `env:"RATE_BURST" envDefault:"10"`
	RateLimit    float64          `env:"RATE_LIMIT"`
	SentryDSN    string           `env:"SENTRY_DSN"`
	TemplateDir  string           `env:"TEMPLATE_DIR"`

	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Server   ServerConfig   `envPrefix:"SERVER_"`
}

// DatabaseConfig selects the docstore backing manifest resources.
type DatabaseConfig struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	URL    string `env:"URL" envDefault:":memory:"`
}

// ServerConfig holds the *http.Server timeouts.
type ServerConfig struct {
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

// NewConfig parses a Config from the environment,
// including any variables set in a .env file.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", rest.ErrBadConfig, err)
	}

	return cfg, nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string {
	if c.Port == "" {
		return DefaultPort
	}

	if c.Port[0] != ':' {
		return ":" + c.Port
	}

	return c.Port
}

// RootURL parses BaseURL, defaulting to http://localhost and the configured port.
func (c Config) RootURL() (*url.URL, error) {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = "http://" + DefaultHost + c.Addr()
	}

	u, err := url.ParseRequestURI(base)
	if err != nil {
		return nil, fmt.Errorf("%w: BASE_URL %q: %w", rest.ErrBadConfig, c.BaseURL, err)
	}

	return u, nil
}
