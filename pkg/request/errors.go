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

package request

import (
	"errors"
	"fmt"
)

// Kind classifies errors surfaced by a call.
type Kind string

const (
	// KindTransport is a network or connection failure with no usable reply.
	KindTransport Kind = "transport"

	// KindApplication is a reply matching a declared ErrorDefinition.
	KindApplication Kind = "application"

	// KindValidation is a body that failed its declared schema.
	KindValidation Kind = "validation"

	// KindUnknown is anything else (build errors, cancellation).
	KindUnknown Kind = "unknown"
)

// TransportError is a failure to obtain a reply from the remote API.
type TransportError struct {
	// Method and URL identify the request. URL is sanitized.
	Method string
	URL    string

	// StatusCode is set when the transport chose to treat a reply status
	// as a failure (e.g. 503). Zero for connection-level failures.
	StatusCode int

	// Message is safe to log and display.
	Message string

	// Retryable is the transport's verdict on whether another attempt
	// could succeed.
	Retryable bool

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (status %d) %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("transport error %s %s: %s", e.Method, e.URL, e.Message)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsRetryable reports the transport's retry verdict.
func (e *TransportError) IsRetryable() bool {
	return e.Retryable
}

// APIError is a reply that matched a declared ErrorDefinition.
type APIError struct {
	// Kind is the declared error kind, e.g. "Unauthorized".
	Kind string

	StatusCode  int
	ContentType string

	// Body is the raw reply body.
	Body []byte

	// Data is the decoded body, when it could be decoded.
	Data any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
	if detail := apiErrorDetail(e.Data); detail != "" {
		msg += ": " + detail
	}
	return msg
}

// apiErrorDetail pulls a human readable message out of the common
// {"error": {"message": ...}} and {"message": ...} body shapes.
func apiErrorDetail(data any) string {
	m, ok := data.(map[string]any)
	if !ok {
		if s, ok := data.(string); ok {
			return s
		}
		return ""
	}
	if inner, ok := m["error"].(map[string]any); ok {
		m = inner
	}
	if msg, ok := m["message"].(string); ok {
		return msg
	}
	return ""
}

// ValidationError is a body that did not conform to its declared schema.
type ValidationError struct {
	// Schema is the name of the schema that rejected the body.
	Schema string

	StatusCode int

	// Body is the raw body, kept for diagnostics.
	Body []byte

	Cause error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("response validation failed against %s (status %d): %v", e.Schema, e.StatusCode, e.Cause)
}

// Unwrap returns the underlying schema error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ErrorKind classifies err.
func ErrorKind(err error) Kind {
	var (
		te *TransportError
		ae *APIError
		ve *ValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &ae):
		return KindApplication
	case errors.As(err, &te):
		return KindTransport
	default:
		return KindUnknown
	}
}
