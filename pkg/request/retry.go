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
	"log/slog"
	"time"
)

// State is a step of the retry state machine.
type State int

const (
	StatePending State = iota
	StateAttempting
	StateSuccess
	StateExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAttempting:
		return "attempting"
	case StateSuccess:
		return "success"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// retryable is implemented by errors that carry the transport's retry
// verdict.
type retryable interface {
	IsRetryable() bool
}

// Execute sends d through s up to d.Retry().Attempts times.
//
// A nil error from s ends the loop with the reply, whatever its status;
// error statuses are resolved later against the declared shapes. A failed
// attempt with attempts remaining waits d.Retry().Delay and tries again.
// When attempts run out the last failure is returned unchanged.
//
// Execute does not classify failures itself. The only exception is an
// error that reports IsRetryable() == false, which the transport uses to
// stop retries it knows are pointless. Cancelling ctx interrupts the
// delay and returns ctx.Err().
func Execute(ctx context.Context, d *Descriptor, s Sender) (*Response, error) {
	policy := d.Retry()
	attempts := max(policy.Attempts, 1)

	state := StatePending
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		state = StateAttempting

		resp, err := s.Send(ctx, d)
		if err == nil {
			state = StateSuccess
			slog.DebugContext(ctx, "request attempt succeeded",
				"method", d.Method(),
				"path", d.Path(),
				"attempt", attempt,
				"state", state.String(),
			)
			return resp, nil
		}
		lastErr = err

		var r retryable
		if errors.As(err, &r) && !r.IsRetryable() {
			break
		}
		if attempt == attempts {
			break
		}

		slog.DebugContext(ctx, "request attempt failed, retrying",
			"method", d.Method(),
			"path", d.Path(),
			"attempt", attempt,
			"max_attempts", attempts,
			"delay_ms", policy.Delay.Milliseconds(),
			"error", err,
		)

		if err := sleep(ctx, policy.Delay); err != nil {
			return nil, err
		}
	}

	state = StateExhausted
	slog.DebugContext(ctx, "request attempts exhausted",
		"method", d.Method(),
		"path", d.Path(),
		"max_attempts", attempts,
		"state", state.String(),
		"error", lastErr,
	)
	return nil, lastErr
}

// sleep waits for delay or until ctx is done.
func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
