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


package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ftlog "github.com/tombee/funtranslations/internal/log"
	"github.com/tombee/funtranslations/internal/tracing"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

// toolFor builds the tool definition for op. Arguments are nested under
// "params" and "requestConfig", both optional.
func toolFor(op *funtranslations.Operation) mcp.Tool {
	props := make(map[string]any, len(op.Params))
	for _, p := range op.Params {
		props[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
	}

	return mcp.Tool{
		Name:        op.Tool,
		Description: op.Description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"params": map[string]any{
					"type":       "object",
					"properties": props,
				},
				"requestConfig": requestConfigSchema(),
			},
		},
	}
}

func (s *Server) handler(op *funtranslations.Operation) server.ToolHandlerFunc {
	declared := make([]string, len(op.Params))
	for i, p := range op.Params {
		declared[i] = p.Name
	}

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !s.rateLimiter.AllowCall() {
			return errorResponse("Error: rate limit exceeded, retry shortly"), nil
		}

		ctx, correlationID := tracing.EnsureContext(ctx)
		args := req.GetArguments()

		given, ok := args["params"].(map[string]any)
		if !ok && args["params"] != nil {
			return errorResponse("Error: params must be an object"), nil
		}
		filled := s.resolver.Fill(ctx, given, declared)

		rc, err := parseRequestConfig(args["requestConfig"])
		if err != nil {
			return formatError(err), nil
		}

		var result *mcp.CallToolResult
		call := ftlog.ToolCall{Tool: op.Tool, CorrelationID: correlationID.String()}
		err = s.middleware.Handle(ctx, call, func(ctx context.Context) error {
			resp, err := s.client.Invoke(ctx, op.Tool, filled, rc)
			if err != nil {
				return err
			}
			result, err = formatSuccess(resp.Data)
			return err
		})
		if err != nil {
			return formatError(err), nil
		}
		return result, nil
	}
}
