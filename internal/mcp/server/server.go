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


// Package server exposes every FunTranslations operation as an MCP tool
// over stdio.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ftlog "github.com/tombee/funtranslations/internal/log"
	"github.com/tombee/funtranslations/internal/params"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

// Invoker runs an operation by tool name. *funtranslations.Client
// implements it.
type Invoker interface {
	Invoke(ctx context.Context, tool string, args map[string]any, rc *funtranslations.RequestConfig) (*funtranslations.Response, error)
}

// Server wraps the MCP server and the translation tools.
type Server struct {
	mcpServer   *server.MCPServer
	name        string
	version     string
	client      Invoker
	resolver    *params.Resolver
	rateLimiter *RateLimiter
	middleware  *ftlog.ToolMiddleware
	logger      *slog.Logger
	tools       []mcp.Tool
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	// Name defaults to "funtranslations".
	Name string

	// Version defaults to "dev".
	Version string

	// Client runs the operations. Required.
	Client Invoker

	// Resolver fills missing tool parameters. Defaults to environment
	// variables only.
	Resolver *params.Resolver

	// CallsPerSecond caps tool calls. Zero disables limiting.
	CallsPerSecond float64
	Burst          int

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewServer creates a server with one tool per operation.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if cfg.Name == "" {
		cfg.Name = "funtranslations"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.Resolver == nil {
		cfg.Resolver = params.NewResolver(params.NewEnvSource())
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = ftlog.WithComponent(logger, "mcp")

	s := &Server{
		mcpServer:   server.NewMCPServer(cfg.Name, cfg.Version, server.WithToolCapabilities(false)),
		name:        cfg.Name,
		version:     cfg.Version,
		client:      cfg.Client,
		resolver:    cfg.Resolver,
		rateLimiter: NewRateLimiter(cfg.CallsPerSecond, cfg.Burst),
		middleware:  ftlog.NewToolMiddleware(logger),
		logger:      logger,
	}

	for _, op := range funtranslations.Operations() {
		tool := toolFor(op)
		s.mcpServer.AddTool(tool, s.handler(op))
		s.tools = append(s.tools, tool)
	}
	return s, nil
}

// Tools returns the registered tool definitions.
func (s *Server) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// Run serves MCP over stdio until stdin closes or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting MCP server",
		"name", s.name,
		"version", s.version,
		"tools", len(s.tools),
	)

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
