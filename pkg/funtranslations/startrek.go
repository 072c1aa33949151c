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

import "context"

var (
	opVulcan  = translation("startrek", "vulcan", "vulcan", "Translate from English to Startrek Vulcan Language.")
	opKlingon = translation("startrek", "klingon", "klingon", "Translate from English to Startrek Klingon Language.")
)

// StartrekService translates into Star Trek languages.
type StartrekService struct {
	client *Client
}

// Vulcan translates text. Empty text is omitted from the request.
func (s *StartrekService) Vulcan(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opVulcan, params, rc)
}

func (s *StartrekService) Klingon(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opKlingon, params, rc)
}
