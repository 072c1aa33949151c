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


// Package transport sends request descriptors over HTTP.
//
// A Sender turns a *request.Descriptor into an *http.Request, executes it
// through a layered round tripper and hands the raw reply back as a
// *request.Response. Only the HTTP mechanics live here; retries, response
// matching and validation belong to the request package.
//
// # Round tripper layers
//
// From the outside in:
//
//   - loggingTransport: sets User-Agent, injects the correlation ID and the
//     W3C trace context, logs each request with a sanitized URL.
//   - http.Transport: TLS 1.2+, connection pooling, dial and header
//     timeouts.
//
// # Failures
//
// Connection-level failures and replies whose status is listed in
// Config.RetryableStatuses are returned as *request.TransportError. The
// Retryable flag on that error is the transport's verdict: transient
// network errors and retryable statuses set it, context cancellation and
// malformed requests do not. Every other status, including 4xx and 5xx
// codes not in the list, is a successful send and comes back as a
// response.
//
// # Usage
//
//	cfg := transport.DefaultConfig()
//	cfg.UserAgent = "funtranslations-cli/1.0"
//	s, err := transport.New(cfg)
//	if err != nil {
//	    return err
//	}
//	resp, err := request.Execute(ctx, descriptor, s)
package transport
