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
	"net/http"
	"slices"
	"strings"
)

// ErrNoPagination is returned when paging a Descriptor built without a
// Pagination declaration.
var ErrNoPagination = errors.New("request has no pagination")

// ResponseDefinition declares one acceptable success shape.
type ResponseDefinition struct {
	Schema      *Schema
	ContentType string
	Status      int
}

// ErrorDefinition declares one application error shape and the kind of
// error raised when a reply takes it.
type ErrorDefinition struct {
	Kind        string
	Schema      *Schema
	ContentType string
	Status      int
}

// Pagination locates the page inside a response body.
type Pagination struct {
	PageSize int

	// PagePath is the sequence of object keys leading to the page.
	PagePath []string

	PageSchema *Schema
}

// Descriptor is the frozen description of one outbound call. It is built
// once by Builder.Build and never modified afterwards; every accessor
// returns a copy.
type Descriptor struct {
	baseURL      string
	method       string
	pathTemplate string
	resolvedPath string
	query        string
	headers      http.Header

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

// BaseURL returns the base URL the path is resolved against.
func (d *Descriptor) BaseURL() string { return d.baseURL }

// Method returns the HTTP method.
func (d *Descriptor) Method() string { return d.method }

// PathTemplate returns the path before parameter substitution.
func (d *Descriptor) PathTemplate() string { return d.pathTemplate }

// Path returns the resolved path.
func (d *Descriptor) Path() string { return d.resolvedPath }

// Query returns the serialized query string without the leading "?".
func (d *Descriptor) Query() string { return d.query }

// URL returns base URL, resolved path and query joined together.
func (d *Descriptor) URL() string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(d.baseURL, "/"))
	if d.resolvedPath != "" && !strings.HasPrefix(d.resolvedPath, "/") {
		b.WriteByte('/')
	}
	b.WriteString(d.resolvedPath)
	if d.query != "" {
		b.WriteByte('?')
		b.WriteString(d.query)
	}
	return b.String()
}

// Headers returns the serialized request headers, including auth.
func (d *Descriptor) Headers() http.Header { return d.headers.Clone() }

// PathParams returns the path parameters in insertion order.
func (d *Descriptor) PathParams() []Parameter { return slices.Clone(d.pathParams) }

// QueryParams returns the query parameters in insertion order.
func (d *Descriptor) QueryParams() []Parameter { return slices.Clone(d.queryParams) }

// HeaderParams returns the header parameters in insertion order.
func (d *Descriptor) HeaderParams() []Parameter { return slices.Clone(d.headerParams) }

// Body returns the request payload, or nil.
func (d *Descriptor) Body() any { return d.body }

// ContentType returns the request body content type.
func (d *Descriptor) ContentType() string { return d.contentType }

// RequestSchema returns the declared request body schema, or nil.
func (d *Descriptor) RequestSchema() *Schema { return d.requestSchema }

// Responses returns the declared success shapes in declaration order.
func (d *Descriptor) Responses() []ResponseDefinition { return slices.Clone(d.responses) }

// Errors returns the declared error shapes in declaration order.
func (d *Descriptor) Errors() []ErrorDefinition { return slices.Clone(d.errors) }

// Retry returns the resolved retry policy.
func (d *Descriptor) Retry() RetryPolicy { return d.retry }

// Validation returns the resolved validation policy.
func (d *Descriptor) Validation() ValidationPolicy { return d.validation }

// Pagination returns the pagination declaration and whether one exists.
func (d *Descriptor) Pagination() (Pagination, bool) {
	if d.pagination == nil {
		return Pagination{}, false
	}
	p := *d.pagination
	p.PagePath = slices.Clone(p.PagePath)
	return p, true
}

// WithPageOffset returns a new Descriptor requesting the page at offset.
// The IsOffset query parameter is set to offset and the IsLimit query
// parameter to the declared page size. d is left unchanged.
func (d *Descriptor) WithPageOffset(offset int) (*Descriptor, error) {
	if d.pagination == nil {
		return nil, ErrNoPagination
	}

	b := d.builder()
	params := slices.Clone(b.queryParams)
	for i, p := range params {
		switch {
		case p.IsOffset:
			params[i].Value = offset
		case p.IsLimit:
			params[i].Value = d.pagination.PageSize
		}
	}
	b.queryParams = params
	return b.Build()
}

// builder returns a Builder holding the inputs d was built from.
func (d *Descriptor) builder() Builder {
	return Builder{
		baseURL:       d.baseURL,
		method:        d.method,
		path:          d.pathTemplate,
		pathParams:    d.pathParams,
		queryParams:   d.queryParams,
		headerParams:  d.headerParams,
		body:          d.body,
		contentType:   d.contentType,
		requestSchema: d.requestSchema,
		responses:     d.responses,
		errors:        d.errors,
		retry:         d.retry,
		validation:    d.validation,
		pagination:    d.pagination,
	}
}
