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
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/tombee/funtranslations/internal/tracing"
	"github.com/tombee/funtranslations/internal/transport"
	"github.com/tombee/funtranslations/pkg/request"
)

const instrumentationName = "github.com/tombee/funtranslations/pkg/funtranslations"

// Client calls the FunTranslations API. It is safe for concurrent use.
type Client struct {
	// mu serializes setters; calls read the current snapshot without it.
	mu    sync.Mutex
	state atomic.Pointer[snapshot]

	// customSender is set when the sender was injected with WithSender and
	// must survive transport changes.
	customSender bool

	tracer  trace.Tracer
	metrics *tracing.CallMetrics

	Morse         *MorseService
	Braille       *BrailleService
	Starwars      *StarwarsService
	Startrek      *StartrekService
	Elvish        *ElvishService
	Characters    *CharactersService
	Dialect       *DialectService
	PigLatin      *PigLatinService
	GameOfThrones *GameOfThronesService
	English       *EnglishService
	InternetFad   *InternetFadService
}

// snapshot is the immutable client state a call runs against.
type snapshot struct {
	cfg    Config
	sender request.Sender
}

// Option configures a Client.
type Option func(*Client)

// WithSender replaces the HTTP transport. Timeout, UserAgent and rate
// limit settings are then the sender's responsibility.
func WithSender(s request.Sender) Option {
	return func(c *Client) {
		c.customSender = true
		c.state.Store(&snapshot{cfg: c.state.Load().cfg, sender: s})
	}
}

// WithMetrics records call metrics on m instead of the global meter
// provider.
func WithMetrics(m *tracing.CallMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracer records call spans on tp instead of the global tracer
// provider.
func WithTracer(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(instrumentationName)
	}
}

// New creates a client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		tracer: otel.Tracer(instrumentationName),
	}
	c.state.Store(&snapshot{cfg: cfg})
	for _, opt := range opts {
		opt(c)
	}

	if !c.customSender {
		sender, err := transport.New(cfg.transportConfig())
		if err != nil {
			return nil, fmt.Errorf("create transport: %w", err)
		}
		c.state.Store(&snapshot{cfg: cfg, sender: sender})
	}
	if c.metrics == nil {
		// Metrics are optional; a nil recorder is a no-op.
		c.metrics, _ = tracing.NewCallMetrics(otel.GetMeterProvider())
	}

	c.Morse = &MorseService{client: c}
	c.Braille = &BrailleService{client: c}
	c.Starwars = &StarwarsService{client: c}
	c.Startrek = &StartrekService{client: c}
	c.Elvish = &ElvishService{client: c}
	c.Characters = &CharactersService{client: c}
	c.Dialect = &DialectService{client: c}
	c.PigLatin = &PigLatinService{client: c}
	c.GameOfThrones = &GameOfThronesService{client: c}
	c.English = &EnglishService{client: c}
	c.InternetFad = &InternetFadService{client: c}

	return c, nil
}

// Config returns a copy of the current client configuration.
func (c *Client) Config() Config {
	return c.state.Load().cfg
}

// Configure applies fn to a copy of the configuration and installs the
// result atomically. The transport is rebuilt when its settings changed.
// On error the client is left unchanged.
func (c *Client) Configure(fn func(*Config)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.state.Load()
	cfg := cur.cfg
	fn(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	sender := cur.sender
	if !c.customSender && transportChanged(cur.cfg, cfg) {
		s, err := transport.New(cfg.transportConfig())
		if err != nil {
			return fmt.Errorf("create transport: %w", err)
		}
		sender = s
	}

	c.state.Store(&snapshot{cfg: cfg, sender: sender})
	return nil
}

// SetBaseURL sets the base URL for all subsequent calls.
func (c *Client) SetBaseURL(baseURL string) error {
	return c.Configure(func(cfg *Config) {
		cfg.BaseURL = baseURL
	})
}

// SetEnvironment selects a named environment. It clears any base URL set
// earlier so the environment takes effect.
func (c *Client) SetEnvironment(env Environment) error {
	return c.Configure(func(cfg *Config) {
		cfg.Environment = env
		cfg.BaseURL = ""
	})
}

// SetTimeout sets the per-attempt timeout.
func (c *Client) SetTimeout(timeout time.Duration) error {
	return c.Configure(func(cfg *Config) {
		cfg.Timeout = timeout
	})
}

// SetToken sets the bearer token. An empty token disables bearer auth.
func (c *Client) SetToken(token string) {
	_ = c.Configure(func(cfg *Config) {
		cfg.Token = token
	})
}

// SetTokenSource fetches bearer tokens from ts, caching them until they
// expire. A nil ts falls back to the static token.
func (c *Client) SetTokenSource(ts oauth2.TokenSource) {
	if ts != nil {
		ts = oauth2.ReuseTokenSource(nil, ts)
	}
	_ = c.Configure(func(cfg *Config) {
		cfg.TokenSource = ts
	})
}

// SetAPIKey sets the API key.
func (c *Client) SetAPIKey(key string) {
	_ = c.Configure(func(cfg *Config) {
		cfg.APIKey = key
	})
}

// SetAPIKeyHeader sets the header the API key is sent in.
func (c *Client) SetAPIKeyHeader(header string) {
	_ = c.Configure(func(cfg *Config) {
		cfg.APIKeyHeader = header
	})
}

// SetRetry sets the client-wide retry override.
func (c *Client) SetRetry(o *request.RetryOverride) error {
	return c.Configure(func(cfg *Config) {
		cfg.Retry = o
	})
}

// SetValidation sets the client-wide validation override.
func (c *Client) SetValidation(o *request.ValidationOverride) {
	_ = c.Configure(func(cfg *Config) {
		cfg.Validation = o
	})
}
