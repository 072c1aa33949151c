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
	opOldEnglish  = translation("english", "oldEnglish", "oldenglish", "Translate from English to Old English.")
	opShakespeare = translation("english", "shakespeare", "shakespeare", "Translate from English to Shakespeare English.")
	opUS2UK       = translation("english", "us2uk", "us2uk", "Translate from US English to UK English.")
	opUK2US       = translation("english", "uk2us", "uk2us", "Translate from UK English to US English.")
)

// EnglishService translates between varieties of English.
type EnglishService struct {
	client *Client
}

// OldEnglish translates text. Empty text is omitted from the request.
func (s *EnglishService) OldEnglish(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opOldEnglish, params, rc)
}

func (s *EnglishService) Shakespeare(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opShakespeare, params, rc)
}

// US2UK rewrites US spelling and vocabulary as UK English.
func (s *EnglishService) US2UK(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opUS2UK, params, rc)
}

// UK2US rewrites UK spelling and vocabulary as US English.
func (s *EnglishService) UK2US(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opUK2US, params, rc)
}
