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

// Config holds observability configuration.
type Config struct {
	// Enabled controls whether spans are exported. Metrics are always
	// collected.
	Enabled bool `yaml:"enabled"`

	// ServiceName identifies this service in traces.
	ServiceName string `yaml:"service_name"`

	// ServiceVersion is the application version.
	ServiceVersion string `yaml:"service_version"`

	// SampleRate is the fraction of traces to record (0.0 - 1.0).
	SampleRate float64 `yaml:"sample_rate"`

	// Exporter selects where spans go.
	Exporter ExporterConfig `yaml:"exporter"`
}

// ExporterConfig defines a span export destination.
type ExporterConfig struct {
	// Type is "console", "otlp" (gRPC), "otlp-http" or "none".
	Type string `yaml:"type"`

	// Endpoint is the collector address, e.g. "localhost:4317".
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS.
	Insecure bool `yaml:"insecure"`

	// Headers are sent with every export request.
	Headers map[string]string `yaml:"headers"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "funtranslations",
		ServiceVersion: "unknown",
		SampleRate:     1.0,
		Exporter: ExporterConfig{
			Type: "none",
		},
	}
}
