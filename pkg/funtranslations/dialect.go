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
	opValspeak = translation("dialect", "valspeak", "valspeak", "Translate from English to Valley Speak.")
	opJive     = translation("dialect", "jive", "jive", "Translate from normal English to Jive Speak.")
	opCockney  = translation("dialect", "cockney", "cockney", "Translate from English to Cockney Speak.")
	opBrooklyn = translation("dialect", "brooklyn", "brooklyn", "Translate from English to Brooklyn Speak.")
)

// DialectService translates into regional English dialects.
type DialectService struct {
	client *Client
}

// Valspeak translates text. Empty text is omitted from the request.
func (s *DialectService) Valspeak(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opValspeak, params, rc)
}

func (s *DialectService) Jive(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opJive, params, rc)
}

func (s *DialectService) Cockney(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opCockney, params, rc)
}

func (s *DialectService) Brooklyn(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opBrooklyn, params, rc)
}
