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
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translateBuilder() Builder {
	return NewBuilder().
		WithBaseURL("https://x/").
		WithMethod("get").
		WithPath("/translate/{lang}").
		AddPathParam(Path("lang", "morse")).
		AddQueryParam(Query("text", "hi"))
}

func TestBuilder_RoundTrip(t *testing.T) {
	d, err := translateBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, d.Method())
	assert.Equal(t, "/translate/{lang}", d.PathTemplate())
	assert.Equal(t, "/translate/morse", d.Path())
	assert.Equal(t, "text=hi", d.Query())
	assert.Equal(t, "https://x/translate/morse?text=hi", d.URL())
	assert.Equal(t, ContentTypeJSON, d.ContentType())
	assert.Equal(t, DefaultRetryPolicy(), d.Retry())
	assert.Equal(t, DefaultValidationPolicy(), d.Validation())
}

func TestBuilder_BuildIsIdempotent(t *testing.T) {
	b := translateBuilder().
		WithBearerToken("tok").
		AddResponse(ResponseDefinition{Status: 200, ContentType: ContentTypeJSON})

	d1, err := b.Build()
	require.NoError(t, err)
	d2, err := b.Build()
	require.NoError(t, err)

	assert.NotSame(t, d1, d2)
	assert.Equal(t, d1, d2)
}

func TestBuilder_ValueSemantics(t *testing.T) {
	base := NewBuilder().WithBaseURL("https://x").WithMethod(http.MethodGet).WithPath("/a")
	extended := base.AddQueryParam(Query("q", "1"))

	d, err := base.Build()
	require.NoError(t, err)
	assert.Empty(t, d.Query())

	d, err = extended.Build()
	require.NoError(t, err)
	assert.Equal(t, "q=1", d.Query())
}

func TestBuilder_SiblingsDoNotShareParams(t *testing.T) {
	base := NewBuilder().WithBaseURL("https://x").WithMethod(http.MethodGet).
		AddQueryParam(Query("a", "1"))

	left := base.AddQueryParam(Query("b", "2"))
	right := base.AddQueryParam(Query("c", "3"))

	dl, err := left.Build()
	require.NoError(t, err)
	dr, err := right.Build()
	require.NoError(t, err)

	assert.Equal(t, "a=1&b=2", dl.Query())
	assert.Equal(t, "a=1&c=3", dr.Query())
}

func TestBuilder_ReplacesParamWithSameKey(t *testing.T) {
	d, err := translateBuilder().
		AddQueryParam(Query("text", "bye")).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "text=bye", d.Query())
	assert.Len(t, d.QueryParams(), 1)
}

func TestBuilder_DuplicateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		builder Builder
		wantErr bool
	}{
		{
			name: "same name different case",
			builder: translateBuilder().
				AddHeaderParam(Header("X-Trace", "a")).
				AddHeaderParam(Header("x-trace", "b")),
			wantErr: true,
		},
		{
			name: "api key in authorization with bearer token",
			builder: translateBuilder().
				WithBearerToken("tok").
				WithAPIKey("key", "authorization"),
			wantErr: true,
		},
		{
			name: "api key in authorization alone",
			builder: translateBuilder().
				WithAPIKey("key", "authorization"),
		},
		{
			name: "empty repeat is skipped",
			builder: translateBuilder().
				AddHeaderParam(Header("X-Trace", "a")).
				AddHeaderParam(Header("X-Trace", "")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDuplicateHeader)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder Builder
		wantErr error
		errMsg  string
	}{
		{
			name:    "missing base URL",
			builder: NewBuilder().WithMethod(http.MethodGet),
			wantErr: ErrMissingBaseURL,
		},
		{
			name:    "missing method",
			builder: NewBuilder().WithBaseURL("https://x"),
			wantErr: ErrMissingMethod,
		},
		{
			name:    "relative base URL",
			builder: NewBuilder().WithBaseURL("/api").WithMethod(http.MethodGet),
			errMsg:  "invalid base URL",
		},
		{
			name:    "unknown method",
			builder: NewBuilder().WithBaseURL("https://x").WithMethod("FETCH"),
			errMsg:  "unsupported method",
		},
		{
			name:    "zero attempts",
			builder: translateBuilder().WithRetryPolicy(RetryPolicy{Attempts: 0}),
			errMsg:  "invalid retry policy",
		},
		{
			name:    "unsupported query value",
			builder: translateBuilder().AddQueryParam(Query("nested", [][]int{{1}})),
			wantErr: ErrUnsupportedValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestBuilder_Auth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		apiKey     string
		header     string
		wantAuth   string
		wantHeader string
		wantKey    string
	}{
		{
			name: "no credentials",
		},
		{
			name:     "bearer only",
			token:    "tok",
			wantAuth: "Bearer tok",
		},
		{
			name:       "api key default header",
			apiKey:     "secret",
			wantHeader: DefaultAPIKeyHeader,
			wantKey:    "secret",
		},
		{
			name:       "both with custom header",
			token:      "tok",
			apiKey:     "secret",
			header:     "X-Api-Key",
			wantAuth:   "Bearer tok",
			wantHeader: "X-Api-Key",
			wantKey:    "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := translateBuilder().
				WithBearerToken(tt.token).
				WithAPIKey(tt.apiKey, tt.header).
				Build()
			require.NoError(t, err)

			h := d.Headers()
			assert.Equal(t, tt.wantAuth, h.Get("Authorization"))
			if tt.wantHeader != "" {
				assert.Equal(t, tt.wantKey, h.Get(tt.wantHeader))
			} else {
				assert.Empty(t, h.Get(DefaultAPIKeyHeader))
			}
		})
	}
}

func TestBuilder_HeadersAreCopies(t *testing.T) {
	d, err := translateBuilder().WithBearerToken("tok").Build()
	require.NoError(t, err)

	h := d.Headers()
	h.Set("Authorization", "changed")
	assert.Equal(t, "Bearer tok", d.Headers().Get("Authorization"))
}

func TestBuilder_RetryLayers(t *testing.T) {
	five := 5
	delay := 10 * time.Millisecond

	d, err := translateBuilder().
		WithRetry(&RetryOverride{Attempts: &five}, nil, &RetryOverride{Delay: &delay}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, RetryPolicy{Attempts: 5, Delay: 10 * time.Millisecond}, d.Retry())
}

func TestBuilder_ValidationLayers(t *testing.T) {
	off := false
	on := true

	d, err := translateBuilder().
		WithValidation(&ValidationOverride{ResponseValidation: &off}).
		Build()
	require.NoError(t, err)
	assert.False(t, d.Validation().ResponseValidation)

	d, err = translateBuilder().
		WithValidation(&ValidationOverride{ResponseValidation: &off}, &ValidationOverride{ResponseValidation: &on}).
		Build()
	require.NoError(t, err)
	assert.True(t, d.Validation().ResponseValidation)
}

func TestBuilder_RequestSchema(t *testing.T) {
	schema := MustCompileSchema("translate-request", `{
		"type": "object",
		"required": ["text"],
		"properties": {"text": {"type": "string"}}
	}`)
	b := NewBuilder().WithBaseURL("https://x").WithMethod(http.MethodPost).WithRequestSchema(schema)

	_, err := b.WithBody(map[string]any{"text": "hi"}, ContentTypeJSON).Build()
	assert.NoError(t, err)

	_, err = b.WithBody(map[string]any{"other": 1}, "").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translate-request")
}

func TestDescriptor_WithPageOffset(t *testing.T) {
	d, err := NewBuilder().
		WithBaseURL("https://x").
		WithMethod(http.MethodGet).
		WithPath("/items").
		AddQueryParam(Parameter{Key: "limit", Style: StyleForm, IsLimit: true}).
		AddQueryParam(Parameter{Key: "offset", Style: StyleForm, IsOffset: true}).
		WithPagination(Pagination{PageSize: 10, PagePath: []string{"data"}}).
		Build()
	require.NoError(t, err)
	assert.Empty(t, d.Query())

	page, err := d.WithPageOffset(20)
	require.NoError(t, err)
	assert.Equal(t, "limit=10&offset=20", page.Query())
	assert.Empty(t, d.Query())

	p, ok := page.Pagination()
	require.True(t, ok)
	assert.Equal(t, []string{"data"}, p.PagePath)
}

func TestDescriptor_WithPageOffsetWithoutPagination(t *testing.T) {
	d, err := translateBuilder().Build()
	require.NoError(t, err)

	_, err = d.WithPageOffset(0)
	assert.ErrorIs(t, err, ErrNoPagination)

	_, ok := d.Pagination()
	assert.False(t, ok)
}
