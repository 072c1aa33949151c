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


package config

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/tombee/funtranslations/internal/params"
	"github.com/tombee/funtranslations/pkg/funtranslations"
	"github.com/tombee/funtranslations/pkg/request"
)

// Keychain entry names.
const (
	KeychainToken  = "token"
	KeychainAPIKey = "api_key"
)

// ClientConfig converts c into a client configuration. Credentials missing
// from c are read from the keychain when Auth.UseKeychain is set. ctx
// scopes OAuth token requests.
func (c *Config) ClientConfig(ctx context.Context) (funtranslations.Config, error) {
	out := funtranslations.Config{
		BaseURL:      c.BaseURL,
		Environment:  funtranslations.Environment(c.Environment),
		Timeout:      c.Timeout,
		Token:        c.Auth.Token,
		APIKey:       c.Auth.APIKey,
		APIKeyHeader: c.Auth.APIKeyHeader,
		UserAgent:    c.UserAgent,
		RateLimit:    c.RateLimit.RequestsPerSecond,
		RateBurst:    c.RateLimit.Burst,
	}

	if c.Retry.Attempts != nil || c.Retry.Delay != nil {
		out.Retry = &request.RetryOverride{Attempts: c.Retry.Attempts, Delay: c.Retry.Delay}
	}
	if c.Validation.ResponseValidation != nil {
		out.Validation = &request.ValidationOverride{ResponseValidation: c.Validation.ResponseValidation}
	}

	if c.Auth.UseKeychain {
		if err := fillFromKeychain(ctx, &out); err != nil {
			return funtranslations.Config{}, err
		}
	}

	if o := c.Auth.OAuth; o != nil {
		cc := clientcredentials.Config{
			ClientID:     o.ClientID,
			ClientSecret: o.ClientSecret,
			TokenURL:     o.TokenURL,
			Scopes:       o.Scopes,
		}
		out.TokenSource = cc.TokenSource(ctx)
	}

	return out, nil
}

func fillFromKeychain(ctx context.Context, out *funtranslations.Config) error {
	kc := params.NewKeychainSource("")
	if !kc.Available() {
		return nil
	}

	lookup := func(name string, dst *string) error {
		if *dst != "" {
			return nil
		}
		v, err := kc.Lookup(ctx, name)
		switch {
		case errors.Is(err, params.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("read %s from keychain: %w", name, err)
		}
		*dst = v
		return nil
	}

	if err := lookup(KeychainToken, &out.Token); err != nil {
		return err
	}
	return lookup(KeychainAPIKey, &out.APIKey)
}

// NewClient creates a client from c.
func (c *Config) NewClient(ctx context.Context, opts ...funtranslations.Option) (*funtranslations.Client, error) {
	cc, err := c.ClientConfig(ctx)
	if err != nil {
		return nil, err
	}
	return funtranslations.New(cc, opts...)
}

// Apply replaces the client configuration with c. Calls in flight keep
// the settings they started with.
func (c *Config) Apply(ctx context.Context, client *funtranslations.Client) error {
	cc, err := c.ClientConfig(ctx)
	if err != nil {
		return err
	}
	return client.Configure(func(dst *funtranslations.Config) {
		*dst = cc
	})
}
