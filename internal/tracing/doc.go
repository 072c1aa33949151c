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


/*
Package tracing wires OpenTelemetry tracing and metrics for API calls.

# Overview

The package supports:

  - Span export to the console, an OTLP gRPC collector or an OTLP HTTP
    collector
  - Prometheus metrics for every translation call
  - Correlation ID propagation on outbound requests
  - W3C trace context propagation

# Quick Start

	cfg := tracing.DefaultConfig()
	cfg.Enabled = true
	cfg.Exporter = tracing.ExporterConfig{Type: "otlp", Endpoint: "localhost:4317", Insecure: true}

	provider, err := tracing.NewProvider(ctx, cfg)
	if err != nil {
	    return err
	}
	defer provider.Shutdown(ctx)

	http.Handle("/metrics", provider.MetricsHandler())

NewProvider installs itself as the global tracer and meter provider, so
instrumented code only needs otel.Tracer and otel.GetMeterProvider.
*/
package tracing
