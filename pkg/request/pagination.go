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

package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// pageQuery renders PagePath as a jq path expression, e.g. .["data"]["items"].
func (p Pagination) pageQuery() (string, error) {
	if len(p.PagePath) == 0 {
		return ".", nil
	}
	var b strings.Builder
	b.WriteByte('.')
	for _, key := range p.PagePath {
		quoted, err := json.Marshal(key)
		if err != nil {
			return "", err
		}
		b.WriteString("[" + string(quoted) + "]")
	}
	return b.String(), nil
}

// ExtractPage returns the value at p.PagePath inside a decoded JSON body
// and checks it against p.PageSchema when one is declared. A missing path
// yields nil.
func ExtractPage(body any, p Pagination) (any, error) {
	src, err := p.pageQuery()
	if err != nil {
		return nil, fmt.Errorf("page path: %w", err)
	}
	query, err := gojq.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("page path %s: %w", src, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("page path %s: %w", src, err)
	}

	iter := code.Run(body)
	v, ok := iter.Next()
	if !ok {
		return nil, nil
	}
	if err, ok := v.(error); ok {
		return nil, fmt.Errorf("page path %s: %w", src, err)
	}

	if err := p.PageSchema.Validate(v); err != nil {
		return nil, &ValidationError{Schema: p.PageSchema.Name(), Cause: err}
	}
	return v, nil
}
