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


package server

import (
	"fmt"
	"math"
	"time"

	"github.com/tombee/funtranslations/pkg/funtranslations"
	"github.com/tombee/funtranslations/pkg/request"
)

func requestConfigSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Configuration object for customizing request behavior",
		"properties": map[string]any{
			"retry": map[string]any{
				"type":        "object",
				"description": "Configuration for request retry behavior",
				"properties": map[string]any{
					"attempts": map[string]any{
						"type":        "number",
						"description": "Number of times a request should be retried upon failure",
					},
					"delayMs": map[string]any{
						"type":        "number",
						"description": "Delay in milliseconds between retry attempts",
					},
				},
				"required": []string{"attempts"},
			},
			"validation": map[string]any{
				"type":        "object",
				"description": "Settings related to request and response validation",
				"properties": map[string]any{
					"responseValidation": map[string]any{
						"type":        "boolean",
						"description": "Whether the response should be validated against a schema",
					},
				},
			},
			"baseUrl": map[string]any{
				"type":        "string",
				"description": "Base URL for the API requests",
			},
		},
	}
}

// parseRequestConfig converts the loosely typed requestConfig argument. A
// nil value yields a nil config.
func parseRequestConfig(v any) (*funtranslations.RequestConfig, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("requestConfig must be an object")
	}

	rc := &funtranslations.RequestConfig{}

	if raw, ok := m["retry"]; ok && raw != nil {
		retry, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("requestConfig.retry must be an object")
		}
		o := &request.RetryOverride{}

		attempts, err := wholeNumber(retry["attempts"], "requestConfig.retry.attempts")
		if err != nil {
			return nil, err
		}
		if attempts == nil {
			return nil, fmt.Errorf("requestConfig.retry.attempts is required")
		}
		o.Attempts = attempts

		delayMs, err := wholeNumber(retry["delayMs"], "requestConfig.retry.delayMs")
		if err != nil {
			return nil, err
		}
		if delayMs != nil {
			d := time.Duration(*delayMs) * time.Millisecond
			o.Delay = &d
		}

		if err := request.ResolveRetryPolicy(request.DefaultRetryPolicy(), o).Validate(); err != nil {
			return nil, err
		}
		rc.Retry = o
	}

	if raw, ok := m["validation"]; ok && raw != nil {
		validation, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("requestConfig.validation must be an object")
		}
		if b, ok := validation["responseValidation"].(bool); ok {
			rc.Validation = &request.ValidationOverride{ResponseValidation: &b}
		}
	}

	if raw, ok := m["baseUrl"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("requestConfig.baseUrl must be a string")
		}
		rc.BaseURL = s
	}

	return rc, nil
}

func wholeNumber(v any, field string) (*int, error) {
	if v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return nil, fmt.Errorf("%s must be a whole number", field)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return nil, fmt.Errorf("%s is out of range", field)
	}
	n := int(f)
	return &n, nil
}
