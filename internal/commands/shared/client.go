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


package shared

import (
	"context"
	"log/slog"

	"github.com/tombee/funtranslations/internal/config"
	ftlog "github.com/tombee/funtranslations/internal/log"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

// ResolveConfigPath returns --config, or the default file when it exists.
func ResolveConfigPath() string {
	if p := GetConfigPath(); p != "" {
		return p
	}
	return config.DefaultPath()
}

// LoadConfig loads the configuration file and environment, then applies
// the global flag overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(ResolveConfigPath())
	if err != nil {
		return nil, err
	}

	if baseURL := GetBaseURL(); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if apiKey := GetAPIKey(); apiKey != "" {
		cfg.Auth.APIKey = apiKey
	}
	if GetNoValidate() {
		off := false
		cfg.Validation.ResponseValidation = &off
	}

	switch {
	case GetVerbose():
		cfg.Log.Level = "debug"
	case GetQuiet():
		cfg.Log.Level = "error"
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewUsageError("invalid flags", err)
	}
	return cfg, nil
}

// SetupLogging installs the default logger described by cfg. Logs always
// go to stderr.
func SetupLogging(cfg *config.Config) *slog.Logger {
	logCfg := ftlog.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = ftlog.Format(cfg.Log.Format)

	logger := ftlog.New(logCfg)
	slog.SetDefault(logger)
	return logger
}

// NewClient loads configuration, sets up logging and creates a client.
func NewClient(ctx context.Context, opts ...funtranslations.Option) (*funtranslations.Client, *config.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	SetupLogging(cfg)

	client, err := cfg.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
