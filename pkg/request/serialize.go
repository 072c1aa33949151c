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
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// ErrDuplicateHeader is returned when two header parameters resolve to the
// same canonical header name.
var ErrDuplicateHeader = errors.New("duplicate header")

// Entry is one wire-ready key/value pair of a query string.
type Entry struct {
	Key   string
	Value string
}

// SerializePath substitutes {name} tokens in template with the serialized
// path parameters. Only the first occurrence of each token is replaced.
// Tokens without a matching parameter are left as they are.
func SerializePath(template string, params []Parameter) (string, error) {
	path := template
	for _, p := range params {
		if p.Key == "" {
			continue
		}
		value, err := serializeValue(p, p.Style.or(StyleSimple))
		if err != nil {
			return "", err
		}
		path = strings.Replace(path, "{"+p.Key+"}", value, 1)
	}
	return path, nil
}

// QueryEntries returns the query entries for params in order. Absent values
// are skipped. Exploded form sequences and maps produce one entry per item.
func QueryEntries(params []Parameter) ([]Entry, error) {
	entries := make([]Entry, 0, len(params))
	for _, p := range params {
		if IsEmpty(p.Value) {
			continue
		}

		style := p.Style.or(StyleForm)
		rv, _ := indirect(p.Value)
		key := p.Key
		if p.Encode {
			key = escape(key)
		}

		switch {
		case style == StyleForm && p.Explode && isSequence(rv):
			items, err := sequenceItems(rv, p.Encode)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Key, err)
			}
			for _, item := range items {
				entries = append(entries, Entry{Key: key, Value: item})
			}
		case style == StyleForm && p.Explode && rv.Kind() == reflect.Map:
			pairs, err := mapPairs(rv, p.Encode)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Key, err)
			}
			for _, kv := range pairs {
				entries = append(entries, Entry{Key: kv[0], Value: kv[1]})
			}
		case style == StyleDeepObject && rv.Kind() == reflect.Map:
			pairs, err := mapPairs(rv, p.Encode)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Key, err)
			}
			for _, kv := range pairs {
				entries = append(entries, Entry{Key: key + "[" + kv[0] + "]", Value: kv[1]})
			}
		default:
			value, err := serializeValue(p, style)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: key, Value: value})
		}
	}
	return entries, nil
}

// SerializeQuery renders params as a query string without the leading "?".
func SerializeQuery(params []Parameter) (string, error) {
	entries, err := QueryEntries(params)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Key + "=" + e.Value
	}
	return strings.Join(parts, "&"), nil
}

// SerializeHeaders renders params as request headers. Absent values are
// skipped. Two parameters with the same canonical name are an error.
func SerializeHeaders(params []Parameter) (http.Header, error) {
	h := make(http.Header, len(params))
	for _, p := range params {
		if IsEmpty(p.Value) {
			continue
		}
		name := http.CanonicalHeaderKey(p.Key)
		if _, exists := h[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHeader, name)
		}
		value, err := serializeValue(p, p.Style.or(StyleSimple))
		if err != nil {
			return nil, err
		}
		h[name] = []string{value}
	}
	return h, nil
}
