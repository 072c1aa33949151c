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


package transport

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
)

// transientKeywords mark connection failures worth another attempt when
// the error carries no structured timeout information.
var transientKeywords = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"network unreachable",
	"temporary failure in name resolution",
	"eof",
}

// isRetryableError determines if a send failure could succeed on retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	// Per-attempt timeouts, including the client timeout, surface as
	// net.Error. A caller deadline is ruled out by Send before we get here.
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, keyword := range transientKeywords {
		if strings.Contains(errMsg, keyword) {
			return true
		}
	}

	return false
}

// failureMessage renders err without the request URL, which url.Error
// embeds verbatim and may carry credentials.
func failureMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
