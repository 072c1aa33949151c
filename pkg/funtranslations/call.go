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


package funtranslations

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/funtranslations/internal/tracing"
	"github.com/tombee/funtranslations/pkg/request"
)

// call runs op against the current client snapshot.
func (c *Client) call(ctx context.Context, op *Operation, params queryParams, rc *RequestConfig) (*Response, error) {
	start := time.Now()
	ctx, correlationID := tracing.EnsureContext(ctx)

	ctx, span := c.tracer.Start(ctx, op.Name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("funtranslations.operation", op.Name),
			attribute.String("funtranslations.correlation_id", correlationID.String()),
		),
	)
	defer span.End()

	resp, err := c.do(ctx, c.state.Load(), op, params, rc)

	outcome := outcomeOf(err)
	c.metrics.RecordCall(ctx, op.Name, outcome, time.Since(start))
	span.SetAttributes(attribute.String("funtranslations.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.DebugContext(ctx, "call failed",
			"operation", op.Name,
			"correlation_id", correlationID.String(),
			"kind", string(request.ErrorKind(err)),
			"error", err,
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.Metadata.StatusCode))
	span.SetStatus(codes.Ok, "")
	return resp, nil
}

func (c *Client) do(ctx context.Context, st *snapshot, op *Operation, params queryParams, rc *RequestConfig) (*Response, error) {
	cfg := st.cfg

	token, err := cfg.token()
	if err != nil {
		return nil, err
	}

	b := request.NewBuilder().
		WithBaseURL(cfg.baseURL(rc)).
		WithMethod(http.MethodGet).
		WithPath(op.Path).
		WithBearerToken(token).
		WithAPIKey(cfg.APIKey, cfg.APIKeyHeader).
		WithRetry(cfg.Retry, rc.retry()).
		WithValidation(cfg.Validation, rc.validation())
	for _, def := range translationResponses() {
		b = b.AddResponse(def)
	}
	for _, def := range translationErrors() {
		b = b.AddError(def)
	}
	for _, p := range params.query() {
		b = b.AddQueryParam(p)
	}

	d, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}

	sender := request.SenderFunc(func(ctx context.Context, d *request.Descriptor) (*request.Response, error) {
		c.metrics.RecordAttempt(ctx, op.Name)
		return st.sender.Send(ctx, d)
	})

	raw, err := request.Execute(ctx, d, sender)
	if err != nil {
		return nil, err
	}

	return interpret(ctx, d, raw)
}

// interpret turns a raw reply into a Response or a typed error. A body is
// only held to its schema when validation is on and a declaration matched;
// anything else comes back as-is.
func interpret(ctx context.Context, d *request.Descriptor, raw *request.Response) (*Response, error) {
	if def, ok := request.MatchError(raw, d.Errors()); ok {
		if err := request.ValidateBody(d.Validation(), def.Schema, raw); err != nil {
			return nil, err
		}
		data, err := request.DecodeBody(raw.ContentType(), raw.Body)
		if err != nil {
			slog.DebugContext(ctx, "error body not decoded",
				"kind", def.Kind,
				"status", raw.StatusCode,
				"error", err,
			)
		}
		return nil, &request.APIError{
			Kind:        def.Kind,
			StatusCode:  raw.StatusCode,
			ContentType: raw.ContentType(),
			Body:        raw.Body,
			Data:        data,
		}
	}

	match := request.MatchResponse(raw, d.Responses())
	validated := d.Validation().ResponseValidation && match.Matched()
	if validated {
		if err := request.ValidateBody(d.Validation(), match.Definition.Schema, raw); err != nil {
			return nil, err
		}
	}

	var data any = raw.Body
	decoded, err := request.DecodeBody(raw.ContentType(), raw.Body)
	switch {
	case err == nil:
		data = decoded
	case validated:
		return nil, &request.ValidationError{
			Schema:     match.Definition.Schema.Name(),
			StatusCode: raw.StatusCode,
			Body:       raw.Body,
			Cause:      err,
		}
	default:
		slog.DebugContext(ctx, "body not decoded, returning raw bytes",
			"status", raw.StatusCode,
			"content_type", raw.ContentType(),
			"match", match.Kind.String(),
			"error", err,
		)
	}

	return &Response{
		Data: data,
		Metadata: Metadata{
			StatusCode:  raw.StatusCode,
			Headers:     raw.Header,
			ContentType: raw.ContentType(),
			Match:       match.Kind,
		},
		Raw: raw.Body,
	}, nil
}

// outcomeOf maps an error to its metrics outcome label.
func outcomeOf(err error) string {
	if err == nil {
		return tracing.OutcomeSuccess
	}
	switch request.ErrorKind(err) {
	case request.KindTransport:
		return tracing.OutcomeTransport
	case request.KindApplication:
		return tracing.OutcomeAPI
	case request.KindValidation:
		return tracing.OutcomeValidation
	default:
		return tracing.OutcomeError
	}
}
