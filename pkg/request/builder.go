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
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// DefaultAPIKeyHeader is the header WithAPIKey uses when none is given.
const DefaultAPIKeyHeader = "X-Funtranslations-Api-Secret"

var (
	// ErrMissingBaseURL is returned by Build when no base URL was set.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrMissingMethod is returned by Build when no method was set.
	ErrMissingMethod = errors.New("method is required")
)

var allowedMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// Builder accumulates the inputs of one call. Builder is a value: every
// method returns an updated copy and leaves the receiver untouched, so a
// partially configured Builder can be shared and extended safely.
type Builder struct {
	baseURL string
	method  string
	path    string

	pathParams   []Parameter
	queryParams  []Parameter
	headerParams []Parameter

	body          any
	contentType   string
	requestSchema *Schema

	responses []ResponseDefinition
	errors    []ErrorDefinition

	retry      RetryPolicy
	validation ValidationPolicy
	pagination *Pagination
}

// NewBuilder returns a Builder with the library default retry and
// validation policies and a JSON request content type.
func NewBuilder() Builder {
	return Builder{
		contentType: ContentTypeJSON,
		retry:       DefaultRetryPolicy(),
		validation:  DefaultValidationPolicy(),
	}
}

// WithBaseURL sets the base URL.
func (b Builder) WithBaseURL(baseURL string) Builder {
	b.baseURL = baseURL
	return b
}

// WithMethod sets the HTTP method.
func (b Builder) WithMethod(method string) Builder {
	b.method = strings.ToUpper(method)
	return b
}

// WithPath sets the path template, e.g. "/translate/{lang}".
func (b Builder) WithPath(path string) Builder {
	b.path = path
	return b
}

// WithRequestSchema declares the schema the body must satisfy.
func (b Builder) WithRequestSchema(s *Schema) Builder {
	b.requestSchema = s
	return b
}

// WithBody sets the request payload and its content type.
func (b Builder) WithBody(body any, contentType string) Builder {
	b.body = body
	if contentType != "" {
		b.contentType = contentType
	}
	return b
}

// WithContentType sets the request content type.
func (b Builder) WithContentType(contentType string) Builder {
	b.contentType = contentType
	return b
}

// AddResponse declares an acceptable success shape.
func (b Builder) AddResponse(def ResponseDefinition) Builder {
	b.responses = append(slices.Clip(b.responses), def)
	return b
}

// AddError declares an application error shape.
func (b Builder) AddError(def ErrorDefinition) Builder {
	b.errors = append(slices.Clip(b.errors), def)
	return b
}

// AddPathParam adds or replaces a path parameter.
func (b Builder) AddPathParam(p Parameter) Builder {
	b.pathParams = setParam(b.pathParams, p)
	return b
}

// AddQueryParam adds or replaces a query parameter.
func (b Builder) AddQueryParam(p Parameter) Builder {
	b.queryParams = setParam(b.queryParams, p)
	return b
}

// AddHeaderParam adds a header parameter. Headers are never merged: two
// non-empty parameters whose names differ only in case make Build fail
// with ErrDuplicateHeader.
func (b Builder) AddHeaderParam(p Parameter) Builder {
	b.headerParams = append(slices.Clone(b.headerParams), p)
	return b
}

// WithBearerToken attaches "Authorization: Bearer <token>". An empty token
// leaves the builder unchanged.
func (b Builder) WithBearerToken(token string) Builder {
	if token == "" {
		return b
	}
	return b.AddHeaderParam(Header("Authorization", "Bearer "+token))
}

// WithAPIKey attaches the API key under header, or DefaultAPIKeyHeader
// when header is empty. An empty key leaves the builder unchanged. Bearer
// and API key auth may both be attached; the server decides which it
// honors. A key header named Authorization collides with a bearer token
// and fails the build.
func (b Builder) WithAPIKey(key, header string) Builder {
	if key == "" {
		return b
	}
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	return b.AddHeaderParam(Header(header, key))
}

// WithRetry resolves the retry policy from the library default overlaid
// with the given layers, in increasing precedence (client config, then
// per-call override).
func (b Builder) WithRetry(layers ...*RetryOverride) Builder {
	b.retry = ResolveRetryPolicy(DefaultRetryPolicy(), layers...)
	return b
}

// WithRetryPolicy sets the retry policy directly.
func (b Builder) WithRetryPolicy(p RetryPolicy) Builder {
	b.retry = p
	return b
}

// WithValidation resolves the validation policy from the library default
// overlaid with the given layers.
func (b Builder) WithValidation(layers ...*ValidationOverride) Builder {
	b.validation = ResolveValidationPolicy(DefaultValidationPolicy(), layers...)
	return b
}

// WithPagination declares how pages are located in responses.
func (b Builder) WithPagination(p Pagination) Builder {
	p.PagePath = slices.Clone(p.PagePath)
	b.pagination = &p
	return b
}

// Build checks the accumulated inputs and returns the frozen Descriptor.
// Base URL and method are required. Parameters are serialized here, so an
// unsupported parameter value fails the build. Unresolved path tokens are
// not an error.
func (b Builder) Build() (*Descriptor, error) {
	if b.baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if u, err := url.Parse(b.baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", b.baseURL)
	}
	if b.method == "" {
		return nil, ErrMissingMethod
	}
	if !slices.Contains(allowedMethods, b.method) {
		return nil, fmt.Errorf("unsupported method %q", b.method)
	}
	if err := b.retry.Validate(); err != nil {
		return nil, err
	}
	if err := validateRequestBody(b.requestSchema, b.body); err != nil {
		return nil, err
	}

	path, err := SerializePath(b.path, b.pathParams)
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	query, err := SerializeQuery(b.queryParams)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	headers, err := SerializeHeaders(b.headerParams)
	if err != nil {
		return nil, fmt.Errorf("headers: %w", err)
	}

	var pagination *Pagination
	if b.pagination != nil {
		p := *b.pagination
		p.PagePath = slices.Clone(p.PagePath)
		pagination = &p
	}

	return &Descriptor{
		baseURL:       b.baseURL,
		method:        b.method,
		pathTemplate:  b.path,
		resolvedPath:  path,
		query:         query,
		headers:       headers,
		pathParams:    slices.Clone(b.pathParams),
		queryParams:   slices.Clone(b.queryParams),
		headerParams:  slices.Clone(b.headerParams),
		body:          b.body,
		contentType:   b.contentType,
		requestSchema: b.requestSchema,
		responses:     slices.Clone(b.responses),
		errors:        slices.Clone(b.errors),
		retry:         b.retry,
		validation:    b.validation,
		pagination:    pagination,
	}, nil
}

// setParam returns a copy of params with p appended, or with the existing
// parameter of the same key replaced in place.
func setParam(params []Parameter, p Parameter) []Parameter {
	out := slices.Clone(params)
	if p.Key != "" {
		for i, existing := range out {
			if existing.Key == p.Key {
				out[i] = p
				return out
			}
		}
	}
	return append(out, p)
}

func validateRequestBody(s *Schema, body any) error {
	if s == nil || body == nil {
		return nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("request body: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("request body: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("request body does not match %s: %w", s.Name(), err)
	}
	return nil
}
