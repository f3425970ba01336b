package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Repository RepositoryConfig `mapstructure:"repository"`
	Registry   RegistryConfig   `mapstructure:"registry"`
	Static     StaticConfig     `mapstructure:"static"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Repository.Backend == "" {
		return errors.New("repository.backend is required")
	}
	if c.HTTP.RequestTimeout <= 0 {
		return errors.New("http.request_timeout must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RepositoryConfig selects the storage backend.
type RepositoryConfig struct {
	Backend string `mapstructure:"backend"`
}

// RegistryConfig tunes activity registry rules.
type RegistryConfig struct {
	// EnforceCapacity rejects signups once max participants is reached.
	EnforceCapacity bool `mapstructure:"enforce_capacity"`
}

// StaticConfig points at the landing page assets.
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
