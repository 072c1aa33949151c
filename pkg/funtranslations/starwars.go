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
	opYoda        = translation("starwars", "yoda", "yoda", "Translate from English to Yoda Speak.")
	opSith        = translation("starwars", "sith", "sith", "Translate from English to Sith Speak.")
	opCheunh      = translation("starwars", "cheunh", "cheunh", "Translate from English to Starwars cheunh.")
	opGungan      = translation("starwars", "gungan", "gungan", "Translate from English to Starwars Gungan Language.")
	opMandalorian = translation("starwars", "mandalorian", "mandalorian", "Translate from English to Starwars Mandalorian Language.")
	opHuttese     = translation("starwars", "huttese", "huttese", "Translate from English to Starwars Huttese Language.")
)

// StarwarsService translates into Star Wars languages.
type StarwarsService struct {
	client *Client
}

// Yoda translates text. Empty text is omitted from the request.
func (s *StarwarsService) Yoda(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opYoda, params, rc)
}

func (s *StarwarsService) Sith(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opSith, params, rc)
}

func (s *StarwarsService) Cheunh(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opCheunh, params, rc)
}

func (s *StarwarsService) Gungan(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opGungan, params, rc)
}

func (s *StarwarsService) Mandalorian(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opMandalorian, params, rc)
}

func (s *StarwarsService) Huttese(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opHuttese, params, rc)
}
