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


// Package errors holds the error types shared by the command line and the
// MCP server, and turns any failure into a message fit for an end user.
package errors

import "fmt"

// ConfigError is a problem with the configuration file, environment or
// flags.
type ConfigError struct {
	// Key is the offending setting, e.g. "retry.attempts".
	Key string

	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config error at %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config error: %s", e.Reason)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NotFoundError is a lookup of something that does not exist, such as an
// unknown translation.
type NotFoundError struct {
	// Resource is the kind of thing, e.g. "translation".
	Resource string
	ID       string

	// Hint suggests valid alternatives.
	Hint string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// UsageError is invalid user input, such as a missing argument.
type UsageError struct {
	Message string
	Hint    string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// UserVisibleError is implemented by errors that carry their own
// user-facing message and suggestion.
type UserVisibleError interface {
	error
	UserMessage() string
	Suggestion() string
}

// UserMessage implements UserVisibleError.
func (e *ConfigError) UserMessage() string { return e.Error() }

// Suggestion implements UserVisibleError.
func (e *ConfigError) Suggestion() string {
	return "Check the configuration file and FUNTRANSLATIONS_* environment variables."
}

// UserMessage implements UserVisibleError.
func (e *NotFoundError) UserMessage() string { return e.Error() }

// Suggestion implements UserVisibleError.
func (e *NotFoundError) Suggestion() string { return e.Hint }

// UserMessage implements UserVisibleError.
func (e *UsageError) UserMessage() string { return e.Message }

// Suggestion implements UserVisibleError.
func (e *UsageError) Suggestion() string { return e.Hint }
