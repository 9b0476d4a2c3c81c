// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	GitHubToken string        `env:"GITHUB_TOKEN"`
	APIURL      string        `env:"GITHUB_API_URL"      envDefault:"https://api.github.com/"`
	GraphQLURL  string        `env:"GITHUB_GRAPHQL_URL"  envDefault:"https://api.github.com/graphql"`
	HTTPTimeout time.Duration `env:"GITHUB_HTTP_TIMEOUT" envDefault:"30s"`
	OutputPath  string        `env:"README_OUTPUT"       envDefault:"README.md"`
}

// Load loads the configuration from environment variables.
// Values from a .env file in the working directory are used when the variable is not already set.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !strings.HasSuffix(cfg.APIURL, "/") {
		cfg.APIURL += "/"
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return &ConfigError{Field: "GITHUB_API_URL", Message: "must be an absolute URL"}
	}
	if _, err := url.ParseRequestURI(c.GraphQLURL); err != nil {
		return &ConfigError{Field: "GITHUB_GRAPHQL_URL", Message: "must be an absolute URL"}
	}
	if c.HTTPTimeout <= 0 {
		return &ConfigError{Field: "GITHUB_HTTP_TIMEOUT", Message: "must be positive"}
	}
	if c.OutputPath == "" {
		return &ConfigError{Field: "README_OUTPUT", Message: "must not be empty"}
	}
	return nil
}

// ResolveToken returns the flag value when set, falling back to the configured token.
func (c *Config) ResolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	return c.GitHubToken
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
