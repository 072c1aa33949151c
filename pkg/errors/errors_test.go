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


package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	fterrors "github.com/tombee/funtranslations/pkg/errors"
	"github.com/tombee/funtranslations/pkg/request"
)

func TestConfigError(t *testing.T) {
	cause := errors.New("parse failure")
	err := &fterrors.ConfigError{Key: "retry.attempts", Reason: "must be at least 1", Cause: cause}

	assert.Equal(t, "config error at retry.attempts: must be at least 1", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "config error: bad", (&fterrors.ConfigError{Reason: "bad"}).Error())
}

func TestNotFoundError(t *testing.T) {
	err := &fterrors.NotFoundError{Resource: "translation", ID: "elvish", Hint: "Run 'funtranslations dialects'."}
	assert.Equal(t, "translation not found: elvish", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("root")

	assert.Nil(t, fterrors.Wrap(nil, "ctx"))
	assert.Nil(t, fterrors.Wrapf(nil, "ctx %d", 1))

	wrapped := fterrors.Wrapf(cause, "loading %s", "config.yaml")
	assert.EqualError(t, wrapped, "loading config.yaml: root")
	assert.True(t, fterrors.Is(wrapped, cause))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantMessage    string
		wantSuggestion string
	}{
		{
			name: "nil",
		},
		{
			name:           "user visible",
			err:            fmt.Errorf("wrapped: %w", &fterrors.UsageError{Message: "text is required", Hint: "Pass text as an argument."}),
			wantMessage:    "text is required",
			wantSuggestion: "Pass text as an argument.",
		},
		{
			name:           "unauthorized",
			err:            &request.APIError{Kind: "Unauthorized", StatusCode: 401},
			wantMessage:    "Unauthorized (status 401)",
			wantSuggestion: "Set API_KEY or TOKEN, or pass --api-key.",
		},
		{
			name:           "rate limited",
			err:            &request.TransportError{Method: "GET", URL: "https://x/translate/yoda", StatusCode: 429, Message: "too many requests"},
			wantMessage:    "transport error (status 429) GET https://x/translate/yoda: too many requests",
			wantSuggestion: "The API rate limit was reached. Wait before retrying or configure an API key.",
		},
		{
			name:        "plain",
			err:         errors.New("boom"),
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, suggestion := fterrors.Describe(tt.err)
			assert.Equal(t, tt.wantMessage, msg)
			assert.Equal(t, tt.wantSuggestion, suggestion)
		})
	}
}

func TestDescribe_Validation(t *testing.T) {
	msg, suggestion := fterrors.Describe(&request.ValidationError{Schema: "translation", Cause: errors.New("not an object")})
	assert.Contains(t, msg, "translation")
	assert.Contains(t, suggestion, "--no-validate")
}
