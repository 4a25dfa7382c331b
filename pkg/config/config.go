// Package config loads the site configuration from a YAML file and
// WALAVIE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/walavie/walavie-site/pkg/cache"
	"github.com/walavie/walavie-site/pkg/cache/inmemory"
	"github.com/walavie/walavie-site/pkg/telemetry"
)

const EnvPrefix = "WALAVIE"

type App struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"logLevel"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	AllowedMethods []string `mapstructure:"allowedMethods"`
	AllowedHeaders []string `mapstructure:"allowedHeaders"`
}

type Auth struct {
	Enabled bool     `mapstructure:"enabled"`
	APIKeys []string `mapstructure:"apiKeys"`
}

type APIServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// StaticDir holds the built front-end; empty disables static serving.
	StaticDir string `mapstructure:"staticDir"`
	CORS      CORS   `mapstructure:"cors"`
	Auth      Auth   `mapstructure:"auth"`
}

type AppConfig struct {
	App       App              `mapstructure:"app"`
	APIServer APIServerConfig  `mapstructure:"apiServer"`
	Cache     cache.Config     `mapstructure:"cache"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "walavie-site")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "production")
	v.SetDefault("app.logLevel", "info")

	v.SetDefault("apiServer.host", "0.0.0.0")
	v.SetDefault("apiServer.port", 5000)
	v.SetDefault("apiServer.staticDir", "")
	v.SetDefault("apiServer.cors.allowedOrigins", []string{})
	v.SetDefault("apiServer.cors.allowedMethods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("apiServer.cors.allowedHeaders", []string{"Origin", "Content-Type", "X-API-Key", "X-Request-ID"})
	v.SetDefault("apiServer.auth.enabled", false)
	v.SetDefault("apiServer.auth.apiKeys", []string{})

	v.SetDefault("cache.driver", cache.DriverMemory)
	v.SetDefault("cache.inmemory.defaultExpiration", 0)
	v.SetDefault("cache.inmemory.cleanupInterval", 600)
	v.SetDefault("cache.redis.host", "")
	v.SetDefault("cache.redis.port", "6379")
	v.SetDefault("cache.redis.username", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.database", 0)
	v.SetDefault("cache.redis.instrument", false)
	v.SetDefault("cache.sqlite.path", "walavie.db")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.serviceName", "walavie-site")
	v.SetDefault("telemetry.otlpEndpoint", "")
	v.SetDefault("telemetry.insecure", false)
	v.SetDefault("telemetry.exportInterval", 30)
}

// Load reads the YAML file at path (optional) and applies environment
// overrides such as WALAVIE_APISERVER_PORT=8080.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct : %w", err)
	}

	if cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = cfg.App.Version
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	var errs []error

	if c.APIServer.Port <= 0 || c.APIServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("apiServer.port must be between 1 and 65535, got %d", c.APIServer.Port))
	}
	if c.APIServer.Auth.Enabled && len(c.APIServer.Auth.APIKeys) == 0 {
		errs = append(errs, errors.New("apiServer.auth.apiKeys must not be empty when auth is enabled"))
	}

	switch c.Cache.Driver {
	case "", cache.DriverMemory:
		if c.Cache.InMemory == nil {
			c.Cache.InMemory = &inmemory.Config{}
		}
	case cache.DriverRedis:
		if c.Cache.Redis == nil || c.Cache.Redis.Host == "" {
			errs = append(errs, errors.New("cache.redis.host is required for the redis driver"))
		}
	case cache.DriverSQLite:
		if c.Cache.SQLite == nil || c.Cache.SQLite.Path == "" {
			errs = append(errs, errors.New("cache.sqlite.path is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.driver %q is not supported", c.Cache.Driver))
	}

	if c.Telemetry.Enabled && c.Telemetry.OTLPEndpoint == "" {
		errs = append(errs, errors.New("telemetry.otlpEndpoint is required when telemetry is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// IsLocal reports whether the app runs in local development mode.
func (c *AppConfig) IsLocal() bool {
	return c.App.Environment == "local"
}
