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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateBody checks resp's body against schema when policy enables
// response validation. A mismatch is a *ValidationError holding the raw
// body. With validation disabled, or a nil schema, it returns nil.
func ValidateBody(policy ValidationPolicy, schema *Schema, resp *Response) error {
	if !policy.ResponseValidation || schema == nil {
		return nil
	}

	var doc any
	if isJSON(resp.ContentType()) {
		var err error
		doc, err = jsonschema.UnmarshalJSON(bytes.NewReader(resp.Body))
		if err != nil {
			return &ValidationError{
				Schema:     schema.Name(),
				StatusCode: resp.StatusCode,
				Body:       resp.Body,
				Cause:      fmt.Errorf("body is not valid JSON: %w", err),
			}
		}
	} else {
		doc = string(resp.Body)
	}

	if err := schema.Validate(doc); err != nil {
		return &ValidationError{
			Schema:     schema.Name(),
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Cause:      err,
		}
	}
	return nil
}

// DecodeBody turns a raw body into a Go value: JSON into maps, slices and
// float64s, text into a string, anything else stays []byte. An empty body
// decodes to nil.
func DecodeBody(contentType string, body []byte) (any, error) {
	if len(body) == 0 {
		return nil, nil
	}

	mediaType := MediaType(contentType)
	switch {
	case isJSON(mediaType):
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("decode %s body: %w", mediaType, err)
		}
		return v, nil
	case strings.HasPrefix(mediaType, "text/"),
		mediaType == ContentTypeXML,
		mediaType == ContentTypeForm:
		return string(body), nil
	default:
		return body, nil
	}
}

// isJSON matches application/json and structured suffixes such as
// application/problem+json.
func isJSON(mediaType string) bool {
	return mediaType == ContentTypeJSON || strings.HasSuffix(mediaType, "+json")
}
