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
	"mime"
	"net/http"
	"strings"
)

// Common content types.
const (
	ContentTypeJSON        = "application/json"
	ContentTypeXML         = "application/xml"
	ContentTypeText        = "text/plain"
	ContentTypeHTML        = "text/html"
	ContentTypeForm        = "application/x-www-form-urlencoded"
	ContentTypeBinary      = "application/octet-stream"
	ContentTypeEventStream = "text/event-stream"
)

// MediaType returns the lowercased MIME type of a Content-Type value with
// any parameters (charset, boundary) removed.
func MediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// Response is a raw reply as returned by a Sender.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the MIME type of the response.
func (r *Response) ContentType() string {
	if r == nil || r.Header == nil {
		return ""
	}
	return MediaType(r.Header.Get("Content-Type"))
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Sender delivers a Descriptor and returns the raw reply. Implementations
// return an error only for failures that produced no usable reply.
type Sender interface {
	Send(ctx context.Context, d *Descriptor) (*Response, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, d *Descriptor) (*Response, error)

// Send calls f(ctx, d).
func (f SenderFunc) Send(ctx context.Context, d *Descriptor) (*Response, error) {
	return f(ctx, d)
}
