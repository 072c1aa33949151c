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
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RetryPolicy bounds how often a request is sent.
type RetryPolicy struct {
	// Attempts is the total number of sends, including the first.
	Attempts int `validate:"min=1"`

	// Delay is the fixed pause between failed attempts.
	Delay time.Duration `validate:"min=0"`
}

// DefaultRetryPolicy returns the library default: 3 attempts, 150ms apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 3,
		Delay:    150 * time.Millisecond,
	}
}

// Validate checks that the policy guarantees at least one attempt and a
// non-negative delay.
func (p RetryPolicy) Validate() error {
	return validationErr("retry policy", validate.Struct(p))
}

// ValidationPolicy controls the validation step.
type ValidationPolicy struct {
	ResponseValidation bool
}

// DefaultValidationPolicy returns the library default: validation enabled.
func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{ResponseValidation: true}
}

// RetryOverride is one configuration layer for RetryPolicy. Nil fields
// leave the underlying value unchanged.
type RetryOverride struct {
	Attempts *int
	Delay    *time.Duration
}

// ValidationOverride is one configuration layer for ValidationPolicy.
type ValidationOverride struct {
	ResponseValidation *bool
}

// ResolveRetryPolicy merges layers over def from left to right, so later
// layers win. Nil layers are skipped.
func ResolveRetryPolicy(def RetryPolicy, layers ...*RetryOverride) RetryPolicy {
	p := def
	for _, l := range layers {
		if l == nil {
			continue
		}
		if l.Attempts != nil {
			p.Attempts = *l.Attempts
		}
		if l.Delay != nil {
			p.Delay = *l.Delay
		}
	}
	return p
}

// ResolveValidationPolicy merges layers over def from left to right.
func ResolveValidationPolicy(def ValidationPolicy, layers ...*ValidationOverride) ValidationPolicy {
	p := def
	for _, l := range layers {
		if l == nil || l.ResponseValidation == nil {
			continue
		}
		p.ResponseValidation = *l.ResponseValidation
	}
	return p
}

func validationErr(what string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid %s: %w", what, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("invalid %s: %s", what, strings.Join(msgs, "; "))
}
