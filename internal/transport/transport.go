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
	"log/slog"
	"net/http"
	"time"

	"github.com/tombee/funtranslations/internal/tracing"
)

// loggingTransport wraps an http.RoundTripper to add logging, the
// User-Agent header and trace propagation.
type loggingTransport struct {
	base      http.RoundTripper
	userAgent string
}

func newLoggingTransport(base http.RoundTripper, userAgent string) *loggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &loggingTransport{
		base:      base,
		userAgent: userAgent,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	ctx := req.Context()

	// RoundTrippers must not modify the caller's request.
	req = req.Clone(ctx)
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	tracing.InjectIntoRequest(ctx, req)
	tracing.InjectHTTPHeaders(ctx, req)

	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	logURL := sanitizeURL(req.URL)
	corrID := tracing.FromContextOrEmpty(ctx).String()

	if err != nil {
		slog.WarnContext(ctx, "http request failed",
			"method", req.Method,
			"url", logURL,
			"correlation_id", corrID,
			"duration_ms", duration,
			"error", err.Error(),
		)
		return nil, err
	}

	level := slog.LevelDebug
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, "http request",
		"method", req.Method,
		"url", logURL,
		"correlation_id", corrID,
		"status", resp.StatusCode,
		"duration_ms", duration,
	)

	return resp, nil
}
