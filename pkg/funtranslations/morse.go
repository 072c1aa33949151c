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
	opMorseTranslate = translation("morse", "translate", "morse", "Translate from English to morse code.")
	opMorseToEnglish = translation("morse", "toEnglish", "morse2english", "Translate from Morse code to English.")
	opMorseAudio     = &Operation{
		Name:        "morse.audio",
		Tool:        "get_translate_morse_audio",
		Service:     "morse",
		Path:        "/translate/morse/audio",
		Description: "Translate from English to morse code and get the result as an audio file.",
		Params:      morseAudioParams,
		decode:      decodeInto[MorseAudioParams],
	}
)

// MorseService translates to and from Morse code.
type MorseService struct {
	client *Client
}

// Translate translates English into Morse code.
func (s *MorseService) Translate(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opMorseTranslate, params, rc)
}

// ToEnglish translates Morse code into English.
func (s *MorseService) ToEnglish(ctx context.Context, params TranslateParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opMorseToEnglish, params, rc)
}

// Audio renders text as Morse code audio. Speed and Tone are optional.
func (s *MorseService) Audio(ctx context.Context, params MorseAudioParams, rc *RequestConfig) (*Response, error) {
	return s.client.call(ctx, opMorseAudio, params, rc)
}
