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


package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/funtranslations/internal/tracing"
	"github.com/tombee/funtranslations/pkg/request"
)

func newSender(t *testing.T, modify ...func(*Config)) *Sender {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Timeout = 2 * time.Second
	for _, m := range modify {
		m(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func descriptorFor(t *testing.T, b request.Builder) *request.Descriptor {
	t.Helper()
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func TestSender_SendsDescriptor(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"contents":{"translated":"Hello, I am"}}`)
	}))
	defer srv.Close()

	d := descriptorFor(t, request.NewBuilder().
		WithBaseURL(srv.URL).
		WithMethod(http.MethodGet).
		WithPath("/translate/{lang}").
		AddPathParam(request.Path("lang", "yoda")).
		AddQueryParam(request.Query("text", "I am hello")).
		WithBearerToken("tok").
		WithAPIKey("secret", "").
		AddResponse(request.ResponseDefinition{Status: 200, ContentType: request.ContentTypeJSON}))

	ctx := tracing.ToContext(context.Background(), tracing.NewCorrelationID())
	resp, err := newSender(t).Send(ctx, d)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, request.ContentTypeJSON, resp.ContentType())
	assert.JSONEq(t, `{"contents":{"translated":"Hello, I am"}}`, string(resp.Body))

	require.NotNil(t, got)
	assert.Equal(t, "/translate/yoda", got.URL.Path)
	assert.Equal(t, "text=I%20am%20hello", got.URL.RawQuery)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "secret", got.Header.Get(request.DefaultAPIKeyHeader))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "funtranslations-go/1.0", got.Header.Get("User-Agent"))
	assert.Equal(t, tracing.FromContextOrEmpty(ctx).String(), got.Header.Get(tracing.HeaderCorrelationID))
}

func TestSender_ErrorStatusIsAResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"code":401,"message":"Unauthorized"}}`)
	}))
	defer srv.Close()

	d := descriptorFor(t, request.NewBuilder().WithBaseURL(srv.URL).WithMethod(http.MethodGet))
	resp, err := newSender(t).Send(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSender_RetryableStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := descriptorFor(t, request.NewBuilder().WithBaseURL(srv.URL).WithMethod(http.MethodGet))
	_, err := newSender(t).Send(context.Background(), d)

	var te *request.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
	assert.True(t, te.IsRetryable())
}

func TestSender_RetriesThroughExecute(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	d := descriptorFor(t, request.NewBuilder().
		WithBaseURL(srv.URL).
		WithMethod(http.MethodGet).
		WithRetryPolicy(request.RetryPolicy{Attempts: 3, Delay: 5 * time.Millisecond}))

	resp, err := request.Execute(context.Background(), d, newSender(t))
	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp.Body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestSender_ConnectionRefusedIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	d := descriptorFor(t, request.NewBuilder().WithBaseURL(addr).WithMethod(http.MethodGet))
	_, err := newSender(t).Send(context.Background(), d)

	var te *request.TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.IsRetryable())
	assert.Equal(t, request.KindTransport, request.ErrorKind(err))
}

func TestSender_CancelledIsNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	d := descriptorFor(t, request.NewBuilder().WithBaseURL(srv.URL).WithMethod(http.MethodGet))
	_, err := newSender(t).Send(ctx, d)

	var te *request.TransportError
	require.ErrorAs(t, err, &te)
	assert.False(t, te.IsRetryable())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSender_EncodesBodies(t *testing.T) {
	type form struct {
		Text string `schema:"text"`
	}

	tests := []struct {
		name        string
		body        any
		contentType string
		wantBody    string
		wantType    string
	}{
		{"json map", map[string]any{"text": "hi"}, request.ContentTypeJSON, `{"text":"hi"}`, "application/json"},
		{"form struct", form{Text: "hello there"}, request.ContentTypeForm, "text=hello+there", request.ContentTypeForm},
		{"form values", url.Values{"text": {"a"}}, request.ContentTypeForm, "text=a", request.ContentTypeForm},
		{"raw string", "plain", request.ContentTypeText, "plain", request.ContentTypeText},
		{"raw bytes", []byte{1, 2}, request.ContentTypeBinary, "\x01\x02", request.ContentTypeBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody, gotType string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, _ := io.ReadAll(r.Body)
				gotBody = string(data)
				gotType = r.Header.Get("Content-Type")
			}))
			defer srv.Close()

			d := descriptorFor(t, request.NewBuilder().
				WithBaseURL(srv.URL).
				WithMethod(http.MethodPost).
				WithBody(tt.body, tt.contentType))

			_, err := newSender(t).Send(context.Background(), d)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, gotBody)
			assert.Equal(t, tt.wantType, gotType)
		})
	}
}

func TestSender_RateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	s := newSender(t, func(c *Config) {
		c.RateLimit = 20
		c.RateBurst = 1
	})
	d := descriptorFor(t, request.NewBuilder().WithBaseURL(srv.URL).WithMethod(http.MethodGet))

	start := time.Now()
	for range 3 {
		_, err := s.Send(context.Background(), d)
		require.NoError(t, err)
	}
	// Burst of one at 20/s spaces the last two sends 50ms apart.
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestSender_BodyCap(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "under the cap", body: "0123"},
		{name: "at the cap", body: "01234567"},
		{name: "over the cap", body: "0123456789abcdef", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "audio/wav")
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			s := newSender(t, func(c *Config) { c.MaxBodyBytes = 8 })
			d := descriptorFor(t, request.NewBuilder().WithBaseURL(srv.URL).WithMethod(http.MethodGet))

			resp, err := s.Send(context.Background(), d)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(resp.Body))
				return
			}

			var te *request.TransportError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, http.StatusOK, te.StatusCode)
			assert.Contains(t, te.Message, "exceeds 8 bytes")
			assert.False(t, te.IsRetryable())
			assert.Nil(t, resp)
		})
	}
}

func TestAcceptHeader(t *testing.T) {
	assert.Equal(t, "*/*", acceptHeader(nil))
	assert.Equal(t, "application/json, audio/wav", acceptHeader([]request.ResponseDefinition{
		{ContentType: "application/json"},
		{ContentType: "audio/wav"},
		{ContentType: "application/json; charset=utf-8"},
	}))
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(context.Canceled))
	assert.True(t, isRetryableError(errors.New("read: connection reset by peer")))
	assert.True(t, isRetryableError(&url.Error{Op: "Get", URL: "https://x", Err: errors.New("unexpected EOF")}))
	assert.False(t, isRetryableError(errors.New("malformed HTTP response")))
}
