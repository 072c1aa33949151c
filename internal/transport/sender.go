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
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/tombee/funtranslations/pkg/request"
)

// Sender executes request descriptors over HTTP. It implements
// request.Sender and is safe for concurrent use.
type Sender struct {
	client            *http.Client
	limiter           *rate.Limiter
	retryableStatuses []int
	maxBodyBytes      int64
	tracer            trace.Tracer
}

var _ request.Sender = (*Sender)(nil)

// New creates a Sender from cfg.
func New(cfg Config) (*Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseTransport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
		},

		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return NewWithClient(&http.Client{
		Transport: newLoggingTransport(baseTransport, cfg.UserAgent),
		Timeout:   cfg.Timeout,
	}, cfg), nil
}

// NewWithClient creates a Sender using client as-is. The client's
// transport is not wrapped. Use it to plug in an oauth2 client or a test
// server's client.
func NewWithClient(client *http.Client, cfg Config) *Sender {
	s := &Sender{
		client:            client,
		retryableStatuses: slices.Clone(cfg.RetryableStatuses),
		maxBodyBytes:      cfg.MaxBodyBytes,
		tracer:            otel.Tracer("github.com/tombee/funtranslations/internal/transport"),
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DefaultConfig().MaxBodyBytes
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}
	return s
}

// Send performs one HTTP exchange for d.
func (s *Sender) Send(ctx context.Context, d *request.Descriptor) (*request.Response, error) {
	ctx, span := s.tracer.Start(ctx, "HTTP "+d.Method(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", d.Method()),
			attribute.String("url.path", d.Path()),
		),
	)
	defer span.End()

	resp, err := s.send(ctx, d)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	return resp, nil
}

func (s *Sender) send(ctx context.Context, d *request.Descriptor) (*request.Response, error) {
	rawURL := d.URL()
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &request.TransportError{
			Method:  d.Method(),
			Message: "invalid request URL",
			Cause:   err,
		}
	}
	safeURL := sanitizeURL(u)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &request.TransportError{
				Method:  d.Method(),
				URL:     safeURL,
				Message: "rate limiter: " + err.Error(),
				Cause:   err,
			}
		}
	}

	body, err := encodeBody(d.Body(), d.ContentType())
	if err != nil {
		return nil, &request.TransportError{
			Method:  d.Method(),
			URL:     safeURL,
			Message: err.Error(),
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, d.Method(), rawURL, body)
	if err != nil {
		return nil, &request.TransportError{
			Method:  d.Method(),
			URL:     safeURL,
			Message: "failed to create request",
			Cause:   err,
		}
	}
	for name, values := range d.Headers() {
		req.Header[name] = values
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", d.ContentType())
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", acceptHeader(d.Responses()))
	}

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, &request.TransportError{
			Method:    d.Method(),
			URL:       safeURL,
			Message:   failureMessage(err),
			Retryable: ctx.Err() == nil && isRetryableError(err),
			Cause:     err,
		}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, s.maxBodyBytes+1))
	if err != nil {
		return nil, &request.TransportError{
			Method:     d.Method(),
			URL:        safeURL,
			StatusCode: httpResp.StatusCode,
			Message:    "failed to read response body: " + failureMessage(err),
			Retryable:  ctx.Err() == nil && !errors.Is(err, context.Canceled),
			Cause:      err,
		}
	}

	if slices.Contains(s.retryableStatuses, httpResp.StatusCode) {
		return nil, &request.TransportError{
			Method:     d.Method(),
			URL:        safeURL,
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("server replied %s", http.StatusText(httpResp.StatusCode)),
			Retryable:  true,
		}
	}

	if int64(len(data)) > s.maxBodyBytes {
		return nil, &request.TransportError{
			Method:     d.Method(),
			URL:        safeURL,
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("response body exceeds %d bytes", s.maxBodyBytes),
		}
	}

	return &request.Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

// acceptHeader lists the declared response content types, or */* when
// nothing is declared.
func acceptHeader(defs []request.ResponseDefinition) string {
	var types []string
	for _, def := range defs {
		mt := request.MediaType(def.ContentType)
		if mt != "" && !slices.Contains(types, mt) {
			types = append(types, mt)
		}
	}
	if len(types) == 0 {
		return "*/*"
	}
	return strings.Join(types, ", ")
}
