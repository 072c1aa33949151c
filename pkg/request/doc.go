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

// Package request builds outbound API requests and resolves their responses.
//
// A call flows through the package in four steps:
//
//  1. A Builder collects the method, base URL, path template, parameters,
//     body, authentication and the declared response and error shapes.
//     Build freezes them into an immutable Descriptor.
//  2. Execute hands the Descriptor to a Sender up to RetryPolicy.Attempts
//     times, sleeping RetryPolicy.Delay between failed attempts.
//  3. MatchError and MatchResponse decide which declared shape the raw
//     Response takes.
//  4. ValidateBody checks the decoded body against the matched shape's
//     schema when response validation is enabled.
//
// The Sender is the only component that performs I/O. Everything else is
// pure and safe to use from concurrent goroutines.
//
// # Parameter serialization
//
// Parameters follow the OpenAPI serialization styles. Path and header
// parameters default to the simple style, query parameters to the form
// style with explode enabled:
//
//	b := request.NewBuilder().
//		WithBaseURL("https://api.funtranslations.com").
//		WithMethod(http.MethodGet).
//		WithPath("/translate/{lang}").
//		AddPathParam(request.Path("lang", "morse")).
//		AddQueryParam(request.Query("text", "hello world"))
//	d, err := b.Build()
//	// d.URL() == "https://api.funtranslations.com/translate/morse?text=hello%20world"
package request
