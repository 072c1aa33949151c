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
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedValue is returned when a parameter value is a nested
// composite (a sequence of sequences, a map of maps, a struct) that has no
// flat wire representation.
var ErrUnsupportedValue = errors.New("unsupported parameter value")

// Style names how a composite parameter value is flattened to text.
// The names follow the OpenAPI parameter serialization styles.
type Style string

const (
	// StyleSimple joins items with commas. Default for path and header parameters.
	StyleSimple Style = "simple"
	// StyleForm renders key=value pairs. Default for query parameters.
	StyleForm Style = "form"
	// StyleLabel prefixes the value with a dot.
	StyleLabel Style = "label"
	// StyleMatrix prefixes the value with ;key=.
	StyleMatrix Style = "matrix"
	// StyleSpaceDelimited joins items with an encoded space.
	StyleSpaceDelimited Style = "spaceDelimited"
	// StylePipeDelimited joins items with a pipe.
	StylePipeDelimited Style = "pipeDelimited"
	// StyleDeepObject renders map entries as key[name]=value query entries.
	StyleDeepObject Style = "deepObject"
)

// Parameter is one named value destined for a path segment, the query
// string, or a header.
type Parameter struct {
	// Key is the parameter name. Empty for positional parameters.
	Key string

	// Value is a scalar, a sequence of scalars, or a flat map of scalars.
	// nil, nil pointers and "" mean "absent" and are never sent.
	Value any

	// Explode renders sequences and maps as repeated entries instead of
	// one delimited string.
	Explode bool

	// Encode percent-encodes the serialized text.
	Encode bool

	// Style selects the delimiter and prefix rules. Empty means the
	// location default.
	Style Style

	// IsLimit tags the page-size parameter for pagination.
	IsLimit bool

	// IsOffset tags the page-offset parameter for pagination.
	IsOffset bool
}

// Path returns a path parameter with the default path serialization.
func Path(key string, value any) Parameter {
	return Parameter{Key: key, Value: value, Style: StyleSimple, Encode: true}
}

// Query returns a query parameter with the default query serialization.
func Query(key string, value any) Parameter {
	return Parameter{Key: key, Value: value, Style: StyleForm, Explode: true, Encode: true}
}

// Header returns a header parameter with the default header serialization.
func Header(key string, value any) Parameter {
	return Parameter{Key: key, Value: value, Style: StyleSimple}
}

// IsEmpty reports whether v is absent for wire purposes: nil, a nil
// pointer or interface, or the empty string.
func IsEmpty(v any) bool {
	rv, ok := indirect(v)
	if !ok {
		return true
	}
	return rv.Kind() == reflect.String && rv.Len() == 0
}

// SerializeValue converts one parameter into its wire string. The key is
// only part of the output for styles that embed it (matrix). Absent values
// serialize to the empty string; callers decide whether to omit them.
func SerializeValue(p Parameter) (string, error) {
	return serializeValue(p, p.Style.or(StyleSimple))
}

func serializeValue(p Parameter, style Style) (string, error) {
	rv, ok := indirect(p.Value)
	if !ok {
		return "", nil
	}

	key := p.Key
	if p.Encode {
		key = escape(key)
	}

	switch {
	case isSequence(rv):
		items, err := sequenceItems(rv, p.Encode)
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", p.Key, err)
		}
		return joinSequence(style, key, items, p.Explode), nil
	case rv.Kind() == reflect.Map:
		pairs, err := mapPairs(rv, p.Encode)
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", p.Key, err)
		}
		return joinMap(style, key, pairs, p.Explode), nil
	default:
		s, err := scalarString(rv)
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", p.Key, err)
		}
		if p.Encode {
			s = escape(s)
		}
		switch style {
		case StyleLabel:
			return "." + s, nil
		case StyleMatrix:
			return ";" + key + "=" + s, nil
		}
		return s, nil
	}
}

func (s Style) or(def Style) Style {
	if s == "" {
		return def
	}
	return s
}

func joinSequence(style Style, key string, items []string, explode bool) string {
	switch style {
	case StyleLabel:
		if explode {
			return "." + strings.Join(items, ".")
		}
		return "." + strings.Join(items, ",")
	case StyleMatrix:
		if explode {
			var b strings.Builder
			for _, item := range items {
				b.WriteString(";" + key + "=" + item)
			}
			return b.String()
		}
		return ";" + key + "=" + strings.Join(items, ",")
	case StyleSpaceDelimited:
		return strings.Join(items, "%20")
	case StylePipeDelimited:
		return strings.Join(items, "|")
	default:
		return strings.Join(items, ",")
	}
}

func joinMap(style Style, key string, pairs [][2]string, explode bool) string {
	parts := make([]string, 0, len(pairs)*2)
	for _, kv := range pairs {
		if explode {
			parts = append(parts, kv[0]+"="+kv[1])
		} else {
			parts = append(parts, kv[0], kv[1])
		}
	}

	switch style {
	case StyleLabel:
		if explode {
			return "." + strings.Join(parts, ".")
		}
		return "." + strings.Join(parts, ",")
	case StyleMatrix:
		if explode {
			return ";" + strings.Join(parts, ";")
		}
		return ";" + key + "=" + strings.Join(parts, ",")
	case StyleSpaceDelimited:
		return strings.Join(parts, "%20")
	case StylePipeDelimited:
		return strings.Join(parts, "|")
	default:
		return strings.Join(parts, ",")
	}
}

// escape percent-encodes everything outside the RFC 3986 unreserved set.
// Spaces become %20, never +.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// indirect dereferences pointers and interfaces. ok is false when the
// value is nil at any level.
func indirect(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func isSequence(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

func sequenceItems(rv reflect.Value, encode bool) ([]string, error) {
	items := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, ok := indirect(rv.Index(i).Interface())
		if !ok {
			continue
		}
		s, err := scalarString(item)
		if err != nil {
			return nil, err
		}
		if encode {
			s = escape(s)
		}
		items = append(items, s)
	}
	return items, nil
}

// mapPairs returns the map entries sorted by key so that output does not
// depend on map iteration order.
func mapPairs(rv reflect.Value, encode bool) ([][2]string, error) {
	pairs := make([][2]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := scalarString(iter.Key())
		if err != nil {
			return nil, err
		}
		val, ok := indirect(iter.Value().Interface())
		if !ok {
			continue
		}
		v, err := scalarString(val)
		if err != nil {
			return nil, err
		}
		if encode {
			k, v = escape(k), escape(v)
		}
		pairs = append(pairs, [2]string{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs, nil
}

func scalarString(rv reflect.Value) (string, error) {
	if rv.CanInterface() {
		switch v := rv.Interface().(type) {
		case time.Time:
			return v.Format(time.RFC3339Nano), nil
		case fmt.Stringer:
			return v.String(), nil
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
}
