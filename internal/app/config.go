package app

import (
	"os"
	"slices"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

const defaultAddr = "0.0.0.0:8000"

// Config holds the complete application configuration, loadable from
// environment variables (SANDWICH_ prefix), flags, or YAML config files.
type Config struct {
	Addr        string `default:"0.0.0.0:8000" usage:"API server listen address"`
	DatabaseURL string `usage:"PostgreSQL URL of the local user store (SANDWICH_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	Warehouse   warehouse.Config
	Inspect     InspectConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Graceful    GracefulConfig
}

// InspectConfig tunes the warehouse diagnostic endpoints.
type InspectConfig struct {
	SampleRows int `default:"5" usage:"Sample rows per table returned by inspect-tables" flag:"inspect-sample-rows"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window, 0 disables"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers. The React
// frontend is served from a different origin in development.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from flags, environment variables and YAML
// config files, then applies platform fallbacks and validates the result.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "SANDWICH",
		Files:     []string{"config.yaml", "/etc/sandwich/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(ac aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, ac).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL is required: set SANDWICH_DATABASE_URL or DATABASE_URL")
	}
	if err := c.Warehouse.Validate(); err != nil {
		return errors.Wrap(err, "warehouse")
	}
	if c.Inspect.SampleRows < 0 {
		return errors.Errorf("inspect sample rows must not be negative, got %d", c.Inspect.SampleRows)
	}
	if c.CORS.AllowCredentials && slices.Contains(c.CORS.Origins, "*") {
		return errors.New("cors: credentials cannot be allowed for the wildcard origin, list the allowed origins")
	}
	return nil
}

// applyPlatformDefaults maps the conventional variable names used by hosting
// platforms and the Snowflake tooling onto the SANDWICH_ settings. Explicit
// SANDWICH_ values win.
func (c *Config) applyPlatformDefaults() {
	fallback := func(dst *string, env string) {
		if *dst == "" {
			*dst = os.Getenv(env)
		}
	}

	fallback(&c.DatabaseURL, "DATABASE_URL")
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}

	c.Warehouse.ApplyEnvFallbacks()
}
