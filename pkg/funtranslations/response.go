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
	"net/http"

	"github.com/tombee/funtranslations/pkg/request"
)

// Response is a decoded API reply.
type Response struct {
	// Data is the decoded body: maps, slices and float64s for JSON, a
	// string for text, raw bytes otherwise.
	Data any

	Metadata Metadata

	// Raw is the undecoded body.
	Raw []byte
}

// Metadata describes the HTTP exchange behind a Response.
type Metadata struct {
	StatusCode  int
	Headers     http.Header
	ContentType string

	// Match reports how the reply was matched against the declared
	// response shapes. MatchNone means the shape of Data is unknown.
	Match request.MatchKind
}

// Translated returns contents.translated from a translation reply, or ""
// when the reply has another shape.
func (r *Response) Translated() string {
	m, ok := r.Data.(map[string]any)
	if !ok {
		return ""
	}
	contents, ok := m["contents"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := contents["translated"].(string)
	return s
}
