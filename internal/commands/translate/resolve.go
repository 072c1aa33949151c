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


package translate

import (
	"strings"

	fterrors "github.com/tombee/funtranslations/pkg/errors"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

const pathPrefix = "/translate/"

// Resolve finds the operation for a dialect name. It accepts the tool
// name, "<service>.<method>", or the endpoint path with or without the
// /translate/ prefix. Matching ignores case.
func Resolve(name string) (*funtranslations.Operation, error) {
	if op, ok := funtranslations.LookupTool(name); ok {
		return op, nil
	}

	want := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), pathPrefix))
	for _, op := range funtranslations.Operations() {
		if strings.ToLower(op.Name) == want ||
			strings.ToLower(strings.TrimPrefix(op.Path, pathPrefix)) == want {
			return op, nil
		}
	}

	return nil, &fterrors.NotFoundError{
		Resource: "dialect",
		ID:       name,
		Hint:     "Run 'funtranslations dialects' to list the available dialects.",
	}
}
