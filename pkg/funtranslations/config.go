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


package funtranslations

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"

	"github.com/tombee/funtranslations/internal/transport"
	"github.com/tombee/funtranslations/pkg/request"
)

var validate = validator.New()

// Config holds client-wide settings.
type Config struct {
	// BaseURL overrides Environment when set.
	BaseURL string `validate:"omitempty,url"`

	// Environment is used when BaseURL is empty. Default: EnvironmentDefault.
	Environment Environment `validate:"omitempty,url"`

	// Timeout bounds one HTTP attempt. Default: 30s.
	Timeout time.Duration `validate:"gte=0"`

	// Token is sent as "Authorization: Bearer <token>".
	Token string

	// TokenSource supplies bearer tokens and takes precedence over Token.
	TokenSource oauth2.TokenSource

	// APIKey is sent in the APIKeyHeader header.
	APIKey string

	// APIKeyHeader defaults to request.DefaultAPIKeyHeader.
	APIKeyHeader string

	// Retry and Validation override the library defaults for every call.
	Retry      *request.RetryOverride
	Validation *request.ValidationOverride

	// UserAgent is sent with every request.
	UserAgent string

	// RateLimit caps outbound requests per second. Zero disables limiting.
	RateLimit float64 `validate:"gte=0"`
	RateBurst int     `validate:"gte=0"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	if c.Retry != nil {
		if err := request.ResolveRetryPolicy(request.DefaultRetryPolicy(), c.Retry).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// transportConfig derives the transport settings from c.
func (c *Config) transportConfig() transport.Config {
	tc := transport.DefaultConfig()
	if c.Timeout > 0 {
		tc.Timeout = c.Timeout
	}
	if c.UserAgent != "" {
		tc.UserAgent = c.UserAgent
	}
	if c.RateLimit > 0 {
		tc.RateLimit = c.RateLimit
		tc.RateBurst = max(c.RateBurst, 1)
	}
	return tc
}

// transportChanged reports whether switching from a to b needs a new
// transport.
func transportChanged(a, b Config) bool {
	return a.Timeout != b.Timeout ||
		a.UserAgent != b.UserAgent ||
		a.RateLimit != b.RateLimit ||
		a.RateBurst != b.RateBurst
}

// baseURL applies the precedence per-call, client base URL, environment,
// default.
func (c *Config) baseURL(rc *RequestConfig) string {
	switch {
	case rc != nil && rc.BaseURL != "":
		return rc.BaseURL
	case c.BaseURL != "":
		return c.BaseURL
	case c.Environment != "":
		return c.Environment.String()
	default:
		return EnvironmentDefault.String()
	}
}

// token returns the bearer token to send, if any.
func (c *Config) token() (string, error) {
	if c.TokenSource == nil {
		return c.Token, nil
	}
	tok, err := c.TokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	return tok.AccessToken, nil
}

// RequestConfig overrides client settings for a single call. A nil
// *RequestConfig keeps the client settings.
type RequestConfig struct {
	Retry      *request.RetryOverride
	Validation *request.ValidationOverride
	BaseURL    string
}

func (rc *RequestConfig) retry() *request.RetryOverride {
	if rc == nil {
		return nil
	}
	return rc.Retry
}

func (rc *RequestConfig) validation() *request.ValidationOverride {
	if rc == nil {
		return nil
	}
	return rc.Validation
}
