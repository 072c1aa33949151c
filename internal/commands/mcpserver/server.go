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


// Package mcpserver implements the mcp-server command.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tombee/funtranslations/internal/commands/shared"
	"github.com/tombee/funtranslations/internal/config"
	"github.com/tombee/funtranslations/internal/mcp/server"
	"github.com/tombee/funtranslations/internal/params"
	"github.com/tombee/funtranslations/internal/tracing"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

const shutdownTimeout = 5 * time.Second

// NewCommand creates the mcp-server command
func NewCommand() *cobra.Command {
	var (
		logLevel string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Start the FunTranslations MCP server",
		Long: `Start the FunTranslations MCP (Model Context Protocol) server on stdio.

Every translation endpoint is exposed as a tool named after its path,
e.g. get_translate_yoda. Tools take a "params" object and an optional
"requestConfig" object with retry, validation and baseUrl overrides.

Parameters left empty are filled from the "defaults" section of the
configuration file, then from environment variables, then from the
system keychain when auth.use_keychain is enabled.

Configuration example for an MCP client:
  {
    "mcpServers": {
      "funtranslations": {
        "command": "funtranslations",
        "args": ["mcp-server"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCPServer(cmd, logLevel, watch)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Logging verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload the configuration file when it changes")

	return cmd
}

func runMCPServer(cmd *cobra.Command, logLevel string, watch bool) error {
	cfg, err := shared.LoadConfig()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger := shared.SetupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := tracing.NewProvider(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to start telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	client, err := cfg.NewClient(ctx, funtranslations.WithMetrics(provider.Metrics()))
	if err != nil {
		return err
	}

	versionStr, _, _ := shared.GetVersion()
	name, version := cfg.MCP.Name, cfg.MCP.Version
	if version == "" || version == config.Default().MCP.Version {
		version = versionStr
	}

	srv, err := server.NewServer(server.ServerConfig{
		Name:           name,
		Version:        version,
		Client:         client,
		Resolver:       newResolver(cfg),
		CallsPerSecond: cfg.MCP.ToolRateLimit,
		Burst:          cfg.MCP.ToolBurst,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	if cfg.MCP.MetricsAddr != "" {
		metrics := serveMetrics(cfg.MCP.MetricsAddr, provider.MetricsHandler(), logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = metrics.Shutdown(shutdownCtx)
		}()
	}

	if path := shared.ResolveConfigPath(); watch && path != "" {
		go func() {
			err := config.Watch(ctx, path, func(next *config.Config) {
				if err := next.Apply(ctx, client); err != nil {
					logger.Warn("failed to apply reloaded configuration", "error", err)
					return
				}
				logger.Info("configuration reloaded", "path", path)
			})
			if err != nil && ctx.Err() == nil {
				logger.Warn("configuration watch stopped", "error", err)
			}
		}()
	}

	return srv.Run(ctx)
}

// newResolver layers configured defaults over environment variables, then
// the keychain when enabled.
func newResolver(cfg *config.Config) *params.Resolver {
	sources := []params.Source{
		params.MapSource(cfg.Defaults),
		params.NewEnvSource(),
	}
	if cfg.Auth.UseKeychain {
		sources = append(sources, params.NewKeychainSource(params.KeychainService))
	}
	return params.NewResolver(sources...)
}

// serveMetrics serves handler on addr at /metrics until shut down.
func serveMetrics(addr string, handler http.Handler, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	return srv
}
