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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantLevel  string
		wantFormat Format
		wantSource bool
	}{
		{"defaults", nil, "info", FormatJSON, false},
		{"LOG_LEVEL", map[string]string{"LOG_LEVEL": "DEBUG"}, "debug", FormatJSON, false},
		{"prefixed level wins", map[string]string{"LOG_LEVEL": "debug", "FUNTRANSLATIONS_LOG_LEVEL": "warn"}, "warn", FormatJSON, false},
		{"debug wins", map[string]string{"FUNTRANSLATIONS_DEBUG": "1", "FUNTRANSLATIONS_LOG_LEVEL": "error"}, "debug", FormatJSON, true},
		{"text format", map[string]string{"LOG_FORMAT": "TEXT"}, "info", FormatText, false},
		{"source", map[string]string{"LOG_SOURCE": "1"}, "info", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fromLookup(func(k string) string { return tt.env[k] })

			if cfg.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", cfg.Level, tt.wantLevel)
			}
			if cfg.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", cfg.Format, tt.wantFormat)
			}
			if cfg.AddSource != tt.wantSource {
				t.Errorf("AddSource = %v, want %v", cfg.AddSource, tt.wantSource)
			}
			if cfg.Output != os.Stderr {
				t.Errorf("Output should default to stderr")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := WithComponent(New(&Config{Level: "info", Format: FormatJSON, Output: &buf}), "mcp")

	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["msg"] != "shown" || entry["k"] != "v" || entry[ComponentKey] != "mcp" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	Trace(ctx, New(&Config{Level: "debug", Output: &buf}), "body")
	if buf.Len() != 0 {
		t.Errorf("trace should be suppressed at debug level")
	}

	Trace(ctx, New(&Config{Level: "trace", Output: &buf}), "body", slog.String("b", "x"))
	if !strings.Contains(buf.String(), `"b":"x"`) {
		t.Errorf("trace entry missing: %s", buf.String())
	}
}

func TestSanitizeSecret(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"short":            "[REDACTED]",
		"abcdefghijklmnop": "...mnop",
	}
	for in, want := range tests {
		if got := SanitizeSecret(in); got != want {
			t.Errorf("SanitizeSecret(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToolMiddleware(t *testing.T) {
	var buf bytes.Buffer
	m := NewToolMiddleware(New(&Config{Level: "info", Output: &buf}))
	ctx := context.Background()

	err := m.Handle(ctx, ToolCall{Tool: "get_translate_yoda", CorrelationID: "abc"}, func(context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "tool call completed") || !strings.Contains(buf.String(), `"correlation_id":"abc"`) {
		t.Errorf("missing completion entry: %s", buf.String())
	}

	buf.Reset()
	boom := errors.New("boom")
	err = m.Handle(ctx, ToolCall{Tool: "get_translate_yoda"}, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("error not propagated: %v", err)
	}
	if !strings.Contains(buf.String(), `"level":"ERROR"`) || strings.Contains(buf.String(), "correlation_id") {
		t.Errorf("unexpected failure entry: %s", buf.String())
	}
}
