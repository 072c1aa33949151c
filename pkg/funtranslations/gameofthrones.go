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
	opDothraki = translation("gameOfThrones", "dothraki", "dothraki", "Translate from English to Dothraki.")
	opValyrian = translation("gameOfThrones", "valyrian", "valyrian", "Translate from English to Valyrian.")
)

// GameOfThronesService translates into the languages of Game of Thrones.
type GameOfThronesService struct {
	client *Client
}

// Dothraki translates text. Empty text is omitted from the request.
func (s *GameOfThronesService) Dothraki(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opDothraki, params, rc)
}

func (s *GameOfThronesService) Valyrian(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opValyrian, params, rc)
}
