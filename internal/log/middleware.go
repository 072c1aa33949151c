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


package log

import (
	"context"
	"log/slog"
	"time"
)

// ToolCall identifies one tool invocation.
type ToolCall struct {
	Tool          string
	CorrelationID string
}

// ToolMiddleware logs tool invocations.
type ToolMiddleware struct {
	logger *slog.Logger
}

// NewToolMiddleware logs through logger.
func NewToolMiddleware(logger *slog.Logger) *ToolMiddleware {
	return &ToolMiddleware{logger: logger}
}

// Handle runs fn, logging its start at debug level and its outcome at
// info, or error when fn fails.
func (m *ToolMiddleware) Handle(ctx context.Context, call ToolCall, fn func(context.Context) error) error {
	attrs := []any{ToolKey, call.Tool}
	if call.CorrelationID != "" {
		attrs = append(attrs, CorrelationIDKey, call.CorrelationID)
	}

	m.logger.DebugContext(ctx, "tool call received", attrs...)

	start := time.Now()
	err := fn(ctx)
	attrs = append(attrs, DurationKey, time.Since(start).Milliseconds())

	if err != nil {
		m.logger.ErrorContext(ctx, "tool call failed", append(attrs, "error", err)...)
		return err
	}
	m.logger.InfoContext(ctx, "tool call completed", attrs...)
	return nil
}
