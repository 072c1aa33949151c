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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  RetryPolicy
		wantErr bool
	}{
		{"default", DefaultRetryPolicy(), false},
		{"single attempt no delay", RetryPolicy{Attempts: 1}, false},
		{"zero attempts", RetryPolicy{Attempts: 0}, true},
		{"negative attempts", RetryPolicy{Attempts: -1}, true},
		{"negative delay", RetryPolicy{Attempts: 1, Delay: -time.Millisecond}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, RetryPolicy{Attempts: 3, Delay: 150 * time.Millisecond}, DefaultRetryPolicy())
	assert.True(t, DefaultValidationPolicy().ResponseValidation)
}

func TestResolveRetryPolicy(t *testing.T) {
	clientAttempts := 4
	clientDelay := 300 * time.Millisecond
	callAttempts := 1

	client := &RetryOverride{Attempts: &clientAttempts, Delay: &clientDelay}
	call := &RetryOverride{Attempts: &callAttempts}

	assert.Equal(t, DefaultRetryPolicy(), ResolveRetryPolicy(DefaultRetryPolicy()))
	assert.Equal(t, RetryPolicy{Attempts: 4, Delay: 300 * time.Millisecond}, ResolveRetryPolicy(DefaultRetryPolicy(), client))
	assert.Equal(t, RetryPolicy{Attempts: 1, Delay: 300 * time.Millisecond}, ResolveRetryPolicy(DefaultRetryPolicy(), client, call))
	assert.Equal(t, RetryPolicy{Attempts: 1, Delay: 150 * time.Millisecond}, ResolveRetryPolicy(DefaultRetryPolicy(), nil, call))
}

func TestResolveValidationPolicy(t *testing.T) {
	off := false

	assert.True(t, ResolveValidationPolicy(DefaultValidationPolicy(), nil, &ValidationOverride{}).ResponseValidation)
	assert.False(t, ResolveValidationPolicy(DefaultValidationPolicy(), &ValidationOverride{ResponseValidation: &off}).ResponseValidation)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, Kind(""), ErrorKind(nil))
	assert.Equal(t, KindTransport, ErrorKind(&TransportError{Message: "refused"}))
	assert.Equal(t, KindApplication, ErrorKind(&APIError{Kind: "Unauthorized", StatusCode: 401}))
	assert.Equal(t, KindValidation, ErrorKind(&ValidationError{Schema: "x"}))
	assert.Equal(t, KindUnknown, ErrorKind(errors.New("other")))
}

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"nested message", map[string]any{"error": map[string]any{"code": 401, "message": "Unauthorized. Provide an API key"}}, "Unauthorized (status 401): Unauthorized. Provide an API key"},
		{"flat message", map[string]any{"message": "nope"}, "Unauthorized (status 401): nope"},
		{"text", "denied", "Unauthorized (status 401): denied"},
		{"no detail", nil, "Unauthorized (status 401)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{Kind: "Unauthorized", StatusCode: 401, Data: tt.data}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Method: "GET", URL: "https://x/a", Message: "connection refused", Retryable: true, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.True(t, err.IsRetryable())
	assert.Equal(t, "transport error GET https://x/a: connection refused", err.Error())

	err.StatusCode = 503
	assert.Contains(t, err.Error(), "status 503")
}
