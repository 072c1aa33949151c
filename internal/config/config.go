// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads funtranslations settings from a YAML file and the
// environment, and turns them into a client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tombee/funtranslations/internal/tracing"
	fterrors "github.com/tombee/funtranslations/pkg/errors"
)

var validate = validator.New()

// Config is the complete file and environment configuration.
type Config struct {
	// BaseURL overrides Environment.
	BaseURL     string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Environment string `yaml:"environment,omitempty" validate:"omitempty,url"`

	// Timeout bounds one HTTP attempt.
	Timeout   time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
	UserAgent string        `yaml:"user_agent,omitempty"`

	Auth       AuthConfig       `yaml:"auth"`
	Retry      RetryConfig      `yaml:"retry"`
	Validation ValidationConfig `yaml:"validation"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	Tracing    tracing.Config   `yaml:"tracing"`
	MCP        MCPConfig        `yaml:"mcp"`

	// Defaults fills tool parameters the caller leaves empty, keyed by
	// parameter name.
	Defaults map[string]string `yaml:"defaults,omitempty"`
}

// AuthConfig holds API credentials.
type AuthConfig struct {
	Token        string `yaml:"token,omitempty"`
	APIKey       string `yaml:"api_key,omitempty"`
	APIKeyHeader string `yaml:"api_key_header,omitempty"`

	// UseKeychain reads a missing token and API key from the system
	// keychain.
	UseKeychain bool `yaml:"use_keychain,omitempty"`

	// OAuth fetches bearer tokens with the client credentials grant.
	OAuth *OAuthConfig `yaml:"oauth,omitempty"`
}

// OAuthConfig configures the OAuth2 client credentials grant.
type OAuthConfig struct {
	TokenURL     string   `yaml:"token_url" validate:"required,url"`
	ClientID     string   `yaml:"client_id" validate:"required"`
	ClientSecret string   `yaml:"client_secret"`
	Scopes       []string `yaml:"scopes,omitempty"`
}

// RetryConfig overrides the library retry defaults. Nil fields keep them.
type RetryConfig struct {
	Attempts *int           `yaml:"attempts,omitempty" validate:"omitempty,gte=1"`
	Delay    *time.Duration `yaml:"delay,omitempty" validate:"omitempty,gte=0"`
}

// ValidationConfig overrides the library validation defaults.
type ValidationConfig struct {
	ResponseValidation *bool `yaml:"response_validation,omitempty"`
}

// RateLimitConfig caps outbound requests. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second,omitempty" validate:"gte=0"`
	Burst             int     `yaml:"burst,omitempty" validate:"gte=0"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// MCPConfig configures the MCP server.
type MCPConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Version string `yaml:"version" validate:"required"`

	// MetricsAddr serves Prometheus metrics when set, e.g. ":9090".
	MetricsAddr string `yaml:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`

	// ToolRateLimit caps tool calls per second. Zero disables limiting.
	ToolRateLimit float64 `yaml:"tool_rate_limit,omitempty" validate:"gte=0"`
	ToolBurst     int     `yaml:"tool_burst,omitempty" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: tracing.DefaultConfig(),
		MCP: MCPConfig{
			Name:    "funtranslations",
			Version: "1.0.0",
		},
	}
}

// Load reads configuration from path, when non-empty, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, &fterrors.ConfigError{
				Key:    "config_file",
				Reason: fmt.Sprintf("failed to load from %s", path),
				Cause:  err,
			}
		}
	}

	if err := cfg.loadFromEnv(getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, &fterrors.ConfigError{
			Key:    "validation",
			Reason: "configuration validation failed",
			Cause:  err,
		}
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// loadFromEnv applies environment overrides. FUNTRANSLATIONS_ variables
// win over the bare TOKEN, BASE_URL, API_KEY and API_KEY_HEADER names.
func (c *Config) loadFromEnv(getenv func(string) string) error {
	first := func(names ...string) string {
		for _, n := range names {
			if v := getenv(n); v != "" {
				return v
			}
		}
		return ""
	}

	if v := first("FUNTRANSLATIONS_BASE_URL", "BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := getenv("FUNTRANSLATIONS_ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := first("FUNTRANSLATIONS_TOKEN", "TOKEN"); v != "" {
		c.Auth.Token = v
	}
	if v := first("FUNTRANSLATIONS_API_KEY", "API_KEY"); v != "" {
		c.Auth.APIKey = v
	}
	if v := first("FUNTRANSLATIONS_API_KEY_HEADER", "API_KEY_HEADER"); v != "" {
		c.Auth.APIKeyHeader = v
	}
	if v := getenv("FUNTRANSLATIONS_USER_AGENT"); v != "" {
		c.UserAgent = v
	}

	if v := getenv("FUNTRANSLATIONS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("FUNTRANSLATIONS_TIMEOUT", err)
		}
		c.Timeout = d
	}
	if v := getenv("FUNTRANSLATIONS_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("FUNTRANSLATIONS_RETRY_ATTEMPTS", err)
		}
		c.Retry.Attempts = &n
	}
	if v := getenv("FUNTRANSLATIONS_RETRY_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("FUNTRANSLATIONS_RETRY_DELAY", err)
		}
		c.Retry.Delay = &d
	}
	if v := getenv("FUNTRANSLATIONS_RESPONSE_VALIDATION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("FUNTRANSLATIONS_RESPONSE_VALIDATION", err)
		}
		c.Validation.ResponseValidation = &b
	}
	if v := getenv("FUNTRANSLATIONS_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("FUNTRANSLATIONS_RATE_LIMIT", err)
		}
		c.RateLimit.RequestsPerSecond = f
	}

	if v := first("FUNTRANSLATIONS_LOG_LEVEL", "LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}

	if v := getenv("FUNTRANSLATIONS_METRICS_ADDR"); v != "" {
		c.MCP.MetricsAddr = v
	}
	if v := getenv("FUNTRANSLATIONS_TRACING_EXPORTER"); v != "" {
		c.Tracing.Enabled = v != "none"
		c.Tracing.Exporter.Type = v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.Exporter.Endpoint = v
	}
	return nil
}

func envError(name string, err error) error {
	return &fterrors.ConfigError{Key: name, Reason: "invalid value", Cause: err}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0 and 1, got %v", c.Tracing.SampleRate)
	}
	return nil
}
