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


package errors

import (
	"errors"
	"fmt"

	"github.com/tombee/funtranslations/pkg/request"
)

// Wrap annotates err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf annotates err with a formatted message. A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New wraps errors.New.
func New(message string) error {
	return errors.New(message)
}

// Describe returns a user-facing message and an optional suggestion for
// err.
func Describe(err error) (message, suggestion string) {
	var (
		uv UserVisibleError
		ae *request.APIError
		te *request.TransportError
		ve *request.ValidationError
	)

	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &uv):
		return uv.UserMessage(), uv.Suggestion()
	case errors.As(err, &ae) && ae.StatusCode == 401:
		return ae.Error(), "Set API_KEY or TOKEN, or pass --api-key."
	case errors.As(err, &ae):
		return ae.Error(), ""
	case errors.As(err, &te) && te.StatusCode == 429:
		return te.Error(), "The API rate limit was reached. Wait before retrying or configure an API key."
	case errors.As(err, &te):
		return te.Error(), "Check the network connection and the base URL."
	case errors.As(err, &ve):
		return ve.Error(), "The API replied with an unexpected body. Retry with --no-validate to see it."
	default:
		return err.Error(), ""
	}
}
