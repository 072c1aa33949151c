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


package shared

import (
	"errors"
	"fmt"
	"io"
	"os"

	fterrors "github.com/tombee/funtranslations/pkg/errors"
	"github.com/tombee/funtranslations/pkg/request"
)

// Exit codes
const (
	ExitSuccess   = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitAuth      = 3
	ExitTransport = 4
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for invalid arguments or flags
func NewUsageError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: msg, Cause: cause}
}

// ExitCodeFor maps err to a process exit code. An *ExitError keeps its
// own code; API and transport failures get dedicated codes.
func ExitCodeFor(err error) int {
	var (
		exitErr  *ExitError
		usageErr *fterrors.UsageError
		apiErr   *request.APIError
		tErr     *request.TransportError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403):
		return ExitAuth
	case errors.As(err, &tErr):
		return ExitTransport
	default:
		return ExitFailure
	}
}

// HandleExitError prints err with any suggestion to stderr and exits
// with the matching code.
func HandleExitError(err error) {
	if err == nil {
		return
	}
	os.Exit(PrintError(os.Stderr, err))
}

// PrintError writes err and its suggestion to w and returns the exit
// code for it.
func PrintError(w io.Writer, err error) int {
	msg, suggestion := fterrors.Describe(err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		msg = exitErr.Error()
	}

	if msg != "" {
		fmt.Fprintln(w, RenderError("Error: "+msg))
	}
	if suggestion != "" {
		fmt.Fprintf(w, "\nSuggestion: %s\n", suggestion)
	}
	return ExitCodeFor(err)
}
