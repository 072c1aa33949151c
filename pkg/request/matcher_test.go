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

	"github.com/stretchr/testify/assert"
)

func reply(status int, contentType string) *Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &Response{StatusCode: status, Header: h}
}

func TestMatchResponse(t *testing.T) {
	ok := ResponseDefinition{Status: 200, ContentType: ContentTypeJSON}
	created := ResponseDefinition{Status: 201, ContentType: ContentTypeJSON}
	text := ResponseDefinition{Status: 200, ContentType: ContentTypeText}
	unauthorized := ResponseDefinition{Status: 401, ContentType: ContentTypeJSON, Schema: &Schema{name: "error"}}

	tests := []struct {
		name     string
		resp     *Response
		defs     []ResponseDefinition
		wantKind MatchKind
		wantDef  ResponseDefinition
	}{
		{
			name:     "no declarations",
			resp:     reply(200, ContentTypeJSON),
			wantKind: MatchNoDeclarations,
		},
		{
			name:     "single declaration matches any status",
			resp:     reply(404, ContentTypeText),
			defs:     []ResponseDefinition{ok},
			wantKind: MatchSingle,
			wantDef:  ok,
		},
		{
			name:     "exact status and content type",
			resp:     reply(201, "application/json; charset=utf-8"),
			defs:     []ResponseDefinition{ok, created},
			wantKind: MatchExact,
			wantDef:  created,
		},
		{
			name:     "error status selects its own declaration",
			resp:     reply(401, ContentTypeJSON),
			defs:     []ResponseDefinition{ok, unauthorized},
			wantKind: MatchExact,
			wantDef:  unauthorized,
		},
		{
			name:     "content type selects between same status",
			resp:     reply(200, ContentTypeText),
			defs:     []ResponseDefinition{ok, text},
			wantKind: MatchExact,
			wantDef:  text,
		},
		{
			name:     "first exact declaration wins",
			resp:     reply(200, ContentTypeJSON),
			defs:     []ResponseDefinition{ok, created, {Status: 200, ContentType: ContentTypeJSON, Schema: &Schema{name: "second"}}},
			wantKind: MatchExact,
			wantDef:  ok,
		},
		{
			name:     "no exact match",
			resp:     reply(500, ContentTypeJSON),
			defs:     []ResponseDefinition{ok, created},
			wantKind: MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchResponse(tt.resp, tt.defs)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantDef, got.Definition)
			assert.Equal(t, tt.wantKind == MatchSingle || tt.wantKind == MatchExact, got.Matched())
		})
	}
}

func TestMatchError(t *testing.T) {
	unauthorized := ErrorDefinition{Kind: "Unauthorized", Status: 401, ContentType: ContentTypeJSON}
	defs := []ErrorDefinition{unauthorized}

	def, ok := MatchError(reply(401, ContentTypeJSON), defs)
	assert.True(t, ok)
	assert.Equal(t, unauthorized, def)

	// A single error declaration is not a catch-all.
	_, ok = MatchError(reply(500, ContentTypeJSON), defs)
	assert.False(t, ok)

	_, ok = MatchError(reply(401, ContentTypeText), defs)
	assert.False(t, ok)

	_, ok = MatchError(reply(401, ContentTypeJSON), nil)
	assert.False(t, ok)
}

func TestMatch_SuccessAndErrorDeclared(t *testing.T) {
	success := ResponseDefinition{Status: 200, ContentType: ContentTypeJSON}
	unauthorized := ErrorDefinition{Kind: "Unauthorized", Status: 401, ContentType: ContentTypeJSON}

	resp := reply(401, ContentTypeJSON)
	def, ok := MatchError(resp, []ErrorDefinition{unauthorized})
	assert.True(t, ok)
	assert.Equal(t, "Unauthorized", def.Kind)

	resp = reply(200, ContentTypeJSON)
	_, ok = MatchError(resp, []ErrorDefinition{unauthorized})
	assert.False(t, ok)
	assert.Equal(t, MatchSingle, MatchResponse(resp, []ResponseDefinition{success}).Kind)
}

func TestMatchKind_String(t *testing.T) {
	assert.Equal(t, "no_declarations", MatchNoDeclarations.String())
	assert.Equal(t, "single", MatchSingle.String())
	assert.Equal(t, "exact", MatchExact.String())
	assert.Equal(t, "none", MatchNone.String())
	assert.Equal(t, "unknown", MatchKind(99).String())
}
