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


package transport

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds transport settings.
type Config struct {
	// Timeout bounds one send, including reading the body.
	// Default: 30s. Must be > 0.
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Required. Must be non-empty.
	UserAgent string

	// RetryableStatuses lists reply statuses reported as retryable
	// transport failures instead of responses.
	// Default: 408, 429, 500, 502, 503, 504.
	RetryableStatuses []int

	// RateLimit caps outbound requests per second. Zero disables limiting.
	RateLimit float64

	// RateBurst is the limiter bucket size. Must be >= 1 when RateLimit > 0.
	RateBurst int

	// MaxBodyBytes caps the size of a reply body. A longer body fails the
	// attempt without a retry.
	// Default: 10 MiB. Must be > 0.
	MaxBodyBytes int64
}

// DefaultConfig returns the transport defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: "funtranslations-go/1.0",
		RetryableStatuses: []int{
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
		MaxBodyBytes: 10 << 20,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0, got %v", c.Timeout)
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user_agent is required and must be non-empty")
	}

	for _, status := range c.RetryableStatuses {
		if status < 100 || status > 599 {
			return fmt.Errorf("retryable_statuses contains invalid status %d", status)
		}
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be >= 0, got %v", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be >= 1 when rate_limit > 0, got %d", c.RateBurst)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0, got %d", c.MaxBodyBytes)
	}

	return nil
}
