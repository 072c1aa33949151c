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

// TranslateParams are the query parameters shared by every translation.
type TranslateParams struct {
	// Text to translate. Empty text is omitted from the request.
	Text string `json:"text,omitempty" schema:"text"`
}

func (p TranslateParams) query() []request.Parameter {
	return []request.Parameter{request.Query("text", p.Text)}
}

// MorseAudioParams are the query parameters of MorseService.Audio.
type MorseAudioParams struct {
	Text string `json:"text,omitempty" schema:"text"`

	// Speed in words per minute.
	Speed *float64 `json:"speed,omitempty" schema:"speed"`

	// Tone frequency in Hz.
	Tone *float64 `json:"tone,omitempty" schema:"tone"`
}

func (p MorseAudioParams) query() []request.Parameter {
	return []request.Parameter{
		request.Query("text", p.Text),
		request.Query("speed", p.Speed),
		request.Query("tone", p.Tone),
	}
}

// queryParams is implemented by every parameter struct.
type queryParams interface {
	query() []request.Parameter
}
