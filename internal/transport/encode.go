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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/gorilla/schema"

	"github.com/tombee/funtranslations/pkg/request"
)

var formEncoder = schema.NewEncoder()

// encodeBody serializes a descriptor body for its content type. Readers,
// byte slices and strings are sent as-is whatever the content type.
func encodeBody(body any, contentType string) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return b, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	}

	mediaType := request.MediaType(contentType)
	switch {
	case mediaType == "" || mediaType == request.ContentTypeJSON || strings.HasSuffix(mediaType, "+json"):
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode json body: %w", err)
		}
		return bytes.NewReader(data), nil

	case mediaType == request.ContentTypeForm:
		values, err := formValues(body)
		if err != nil {
			return nil, fmt.Errorf("encode form body: %w", err)
		}
		return strings.NewReader(values.Encode()), nil

	case strings.HasPrefix(mediaType, "text/"):
		return strings.NewReader(fmt.Sprint(body)), nil

	default:
		return nil, fmt.Errorf("cannot encode %T as %s", body, mediaType)
	}
}

// formValues converts url.Values, flat maps and structs tagged with
// `schema:"..."` into form values.
func formValues(body any) (url.Values, error) {
	switch b := body.(type) {
	case url.Values:
		return b, nil
	case map[string][]string:
		return url.Values(b), nil
	case map[string]string:
		values := url.Values{}
		for k, v := range b {
			values.Set(k, v)
		}
		return values, nil
	case map[string]any:
		values := url.Values{}
		keys := make([]string, 0, len(b))
		for k := range b {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if request.IsEmpty(b[k]) {
				continue
			}
			values.Set(k, fmt.Sprint(b[k]))
		}
		return values, nil
	}

	rv := reflect.ValueOf(body)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return url.Values{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported form body %T", body)
	}

	values := url.Values{}
	if err := formEncoder.Encode(rv.Interface(), values); err != nil {
		return nil, err
	}
	return values, nil
}
