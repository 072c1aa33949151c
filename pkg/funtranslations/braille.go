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
	opBrailleTranslate = translation("braille", "translate", "braille",
		"Translate from English to Braille. This is what you use if you have a braille display. This API translates the English text into characters that a braille display understands and you can feed the translated text directly to the display.")
	opBrailleDots      = translation("braille", "dots", "braille/dots",
		"Use this to see which dots are enabled for each Braille letters. This is highly educational to see which dots are enabled and can potentially drive a non braille display which works on individual dots.")
	opBrailleUnicode   = translation("braille", "unicode", "braille/unicode", "Translate from English to Braille Unicode characters.")
	opBrailleImage     = translation("braille", "image", "braille/image",
		"Translate from English to Braille image characters. This is probably what you want to use if you are displaying braille in a browser.")
	opBrailleHTML      = translation("braille", "html", "braille/html",
		"Translate from English to Braille Image characters. This is probably what you want to use if you are displaying braille in a browser.")
)

// BrailleService translates English into the Braille representations the API supports.
type BrailleService struct {
	client *Client
}

// Translate returns characters a braille display understands.
func (s *BrailleService) Translate(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opBrailleTranslate, params, rc)
}

// Dots returns which dots are raised for each Braille letter.
func (s *BrailleService) Dots(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opBrailleDots, params, rc)
}

// Unicode translates into Braille Unicode characters.
func (s *BrailleService) Unicode(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opBrailleUnicode, params, rc)
}

// Image translates into Braille image characters.
func (s *BrailleService) Image(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opBrailleImage, params, rc)
}

// HTML translates into Braille image markup.
func (s *BrailleService) HTML(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opBrailleHTML, params, rc)
}
