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
	opPirate    = translation("characters", "pirate", "pirate", "Translate from English to Pirate Speak.")
	opMinion    = translation("characters", "minion", "minion", "Translate from English to Minion Speak.")
	opFerbLatin = translation("characters", "ferblatin", "ferblatin", "Translate from English to Ferb Latin.")
	opChef      = translation("characters", "chef", "chef", "Translate from English to Swedish Chef speak.")
	opDolan     = translation("characters", "dolan", "dolan", "Translate from English to Dolan Speak.")
	opFudd      = translation("characters", "fudd", "fudd", "Translate from English to Fudd Speak.")
)

// CharactersService translates into the speech of fictional characters.
type CharactersService struct {
	client *Client
}

// Pirate translates text. Empty text is omitted from the request.
func (s *CharactersService) Pirate(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opPirate, params, rc)
}

func (s *CharactersService) Minion(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opMinion, params, rc)
}

func (s *CharactersService) FerbLatin(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opFerbLatin, params, rc)
}

func (s *CharactersService) Chef(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opChef, params, rc)
}

func (s *CharactersService) Dolan(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opDolan, params, rc)
}

func (s *CharactersService) Fudd(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opFudd, params, rc)
}
