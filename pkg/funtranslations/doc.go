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


// Package funtranslations is a client for the FunTranslations API.
//
// The API exposes one GET endpoint per translation, grouped here into
// services:
//
//	client, err := funtranslations.New(funtranslations.Config{
//	    APIKey: os.Getenv("API_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.Starwars.Yoda(ctx, funtranslations.TranslateParams{
//	    Text: "Master Obiwan has lost a planet.",
//	}, nil)
//
// Every method accepts an optional *RequestConfig overriding the retry
// policy, response validation and base URL for that call only. Client-wide
// settings can be changed at any time with the Set* methods; calls already
// in flight keep the settings they started with.
//
// Errors are classified by request.ErrorKind: a *request.TransportError
// when no reply could be obtained, a *request.APIError when the reply
// matched a declared error (401 Unauthorized), and a
// *request.ValidationError when the reply body failed its schema.
package funtranslations
