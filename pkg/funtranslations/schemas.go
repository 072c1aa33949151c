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

import "github.com/tombee/funtranslations/pkg/request"

var (
	translationSchema = request.MustCompileSchema("translation", `{
		"type": "object"
	}`)

	errorSchema = request.MustCompileSchema("error", `{
		"type": "object",
		"properties": {
			"error": {
				"type": "object",
				"properties": {
					"code": {"type": "integer"},
					"message": {"type": "string"}
				}
			}
		}
	}`)
)

// KindUnauthorized is the APIError kind raised for a 401 reply.
const KindUnauthorized = "Unauthorized"

func translationResponses() []request.ResponseDefinition {
	return []request.ResponseDefinition{{
		Schema:      translationSchema,
		ContentType: request.ContentTypeJSON,
		Status:      200,
	}}
}

func translationErrors() []request.ErrorDefinition {
	return []request.ErrorDefinition{{
		Kind:        KindUnauthorized,
		Schema:      errorSchema,
		ContentType: request.ContentTypeJSON,
		Status:      401,
	}}
}
