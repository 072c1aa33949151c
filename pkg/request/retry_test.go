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
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryDescriptor(t *testing.T, policy RetryPolicy) *Descriptor {
	t.Helper()
	d, err := translateBuilder().WithRetryPolicy(policy).Build()
	require.NoError(t, err)
	return d
}

// failingSender fails the first n sends and then replies 200.
func failingSender(n int32, calls *atomic.Int32) Sender {
	return SenderFunc(func(ctx context.Context, d *Descriptor) (*Response, error) {
		call := calls.Add(1)
		if call <= n {
			return nil, &TransportError{Method: d.Method(), URL: d.URL(), Message: fmt.Sprintf("attempt %d failed", call), Retryable: true}
		}
		return &Response{StatusCode: http.StatusOK}, nil
	})
}

func TestExecute_SucceedsAfterFailures(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 3, Delay: 10 * time.Millisecond})

	start := time.Now()
	resp, err := Execute(context.Background(), d, failingSender(2, &calls))
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestExecute_ExhaustedReturnsLastError(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 3, Delay: time.Millisecond})

	_, err := Execute(context.Background(), d, failingSender(10, &calls))
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "attempt 3 failed", te.Message)
	assert.Equal(t, int32(3), calls.Load())
}

func TestExecute_SingleAttemptDoesNotWait(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 1, Delay: time.Second})

	start := time.Now()
	_, err := Execute(context.Background(), d, failingSender(10, &calls))

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestExecute_ErrorStatusIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 3, Delay: time.Millisecond})

	s := SenderFunc(func(ctx context.Context, d *Descriptor) (*Response, error) {
		calls.Add(1)
		return &Response{StatusCode: http.StatusUnauthorized}, nil
	})

	resp, err := Execute(context.Background(), d, s)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecute_NonRetryableStopsEarly(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 5, Delay: time.Millisecond})

	s := SenderFunc(func(ctx context.Context, d *Descriptor) (*Response, error) {
		calls.Add(1)
		return nil, &TransportError{Message: "bad request", Retryable: false}
	})

	_, err := Execute(context.Background(), d, s)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecute_PlainErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 2, Delay: time.Millisecond})
	boom := errors.New("boom")

	s := SenderFunc(func(ctx context.Context, d *Descriptor) (*Response, error) {
		calls.Add(1)
		return nil, boom
	})

	_, err := Execute(context.Background(), d, s)
	assert.Same(t, boom, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecute_CancelDuringDelay(t *testing.T) {
	var calls atomic.Int32
	d := retryDescriptor(t, RetryPolicy{Attempts: 3, Delay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	s := SenderFunc(func(ctx context.Context, d *Descriptor) (*Response, error) {
		calls.Add(1)
		cancel()
		return nil, &TransportError{Message: "down", Retryable: true}
	})

	_, err := Execute(ctx, d, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "attempting", StateAttempting.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
}
