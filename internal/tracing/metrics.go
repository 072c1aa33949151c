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


package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Call outcomes recorded by CallMetrics.
const (
	OutcomeSuccess    = "success"
	OutcomeTransport  = "transport_error"
	OutcomeAPI        = "api_error"
	OutcomeValidation = "validation_error"
	OutcomeError      = "error"
)

// CallMetrics records per-operation call counts and latency. A nil
// *CallMetrics is valid and records nothing.
type CallMetrics struct {
	calls    metric.Int64Counter
	attempts metric.Int64Counter
	duration metric.Float64Histogram
}

// NewCallMetrics creates the call instruments on meterProvider.
func NewCallMetrics(meterProvider metric.MeterProvider) (*CallMetrics, error) {
	meter := meterProvider.Meter("github.com/tombee/funtranslations")

	calls, err := meter.Int64Counter(
		"funtranslations_calls_total",
		metric.WithDescription("Total number of API calls by operation and outcome"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	attempts, err := meter.Int64Counter(
		"funtranslations_attempts_total",
		metric.WithDescription("Total number of HTTP attempts, including retries"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"funtranslations_call_duration_seconds",
		metric.WithDescription("API call duration in seconds, including retries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &CallMetrics{
		calls:    calls,
		attempts: attempts,
		duration: duration,
	}, nil
}

// RecordCall records one finished call.
func (m *CallMetrics) RecordCall(ctx context.Context, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	m.calls.Add(ctx, 1, attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
}

// RecordAttempt records one HTTP attempt for operation.
func (m *CallMetrics) RecordAttempt(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}
