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

// MatchKind tags the outcome of MatchResponse.
type MatchKind int

const (
	// MatchNoDeclarations means no shapes were declared; the body passes
	// through untyped.
	MatchNoDeclarations MatchKind = iota

	// MatchSingle means exactly one shape was declared. It matches any
	// reply, whatever its status or content type.
	MatchSingle

	// MatchExact means one of several declared shapes has the reply's
	// status and content type.
	MatchExact

	// MatchNone means several shapes were declared and none fits. The
	// shape of the body is unknown.
	MatchNone
)

// String returns the kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchNoDeclarations:
		return "no_declarations"
	case MatchSingle:
		return "single"
	case MatchExact:
		return "exact"
	case MatchNone:
		return "none"
	default:
		return "unknown"
	}
}

// MatchResult is the outcome of MatchResponse. Definition is set only for
// MatchSingle and MatchExact.
type MatchResult struct {
	Kind       MatchKind
	Definition ResponseDefinition
}

// Matched reports whether a definition was selected.
func (r MatchResult) Matched() bool {
	return r.Kind == MatchSingle || r.Kind == MatchExact
}

// MatchResponse selects the declared response shape resp takes. It never
// fails; MatchNone is a legitimate outcome that callers treat as "shape
// unknown".
func MatchResponse(resp *Response, defs []ResponseDefinition) MatchResult {
	switch len(defs) {
	case 0:
		return MatchResult{Kind: MatchNoDeclarations}
	case 1:
		return MatchResult{Kind: MatchSingle, Definition: defs[0]}
	}

	contentType := resp.ContentType()
	for _, def := range defs {
		if def.Status == resp.StatusCode && MediaType(def.ContentType) == contentType {
			return MatchResult{Kind: MatchExact, Definition: def}
		}
	}
	return MatchResult{Kind: MatchNone}
}

// MatchError returns the first declared error shape with the reply's
// status and content type. Unlike MatchResponse there is no
// single-declaration shortcut: an error is only raised on an exact match.
func MatchError(resp *Response, defs []ErrorDefinition) (ErrorDefinition, bool) {
	contentType := resp.ContentType()
	for _, def := range defs {
		if def.Status == resp.StatusCode && MediaType(def.ContentType) == contentType {
			return def, true
		}
	}
	return ErrorDefinition{}, false
}
