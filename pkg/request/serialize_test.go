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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeValue(t *testing.T) {
	speed := 12

	tests := []struct {
		name  string
		param Parameter
		want  string
	}{
		{"string", Header("X", "plain"), "plain"},
		{"int", Header("X", 42), "42"},
		{"float", Header("X", 1.5), "1.5"},
		{"bool", Header("X", true), "true"},
		{"pointer", Header("X", &speed), "12"},
		{"bytes", Header("X", []byte("raw")), "raw"},
		{"encoded", Path("id", "abc def/ghi"), "abc%20def%2Fghi"},
		{"unencoded", Parameter{Key: "id", Value: "a b", Style: StyleSimple}, "a b"},
		{"simple sequence", Path("ids", []int{1, 2, 3}), "1,2,3"},
		{"simple sequence exploded", Parameter{Key: "ids", Value: []int{1, 2}, Style: StyleSimple, Explode: true}, "1,2"},
		{"form sequence", Parameter{Key: "ids", Value: []string{"a", "b"}, Style: StyleForm}, "a,b"},
		{"label scalar", Parameter{Key: "id", Value: 5, Style: StyleLabel}, ".5"},
		{"label sequence", Parameter{Key: "id", Value: []int{1, 2}, Style: StyleLabel}, ".1,2"},
		{"label sequence exploded", Parameter{Key: "id", Value: []int{1, 2}, Style: StyleLabel, Explode: true}, ".1.2"},
		{"matrix scalar", Parameter{Key: "id", Value: 5, Style: StyleMatrix}, ";id=5"},
		{"matrix sequence", Parameter{Key: "id", Value: []int{3, 4}, Style: StyleMatrix}, ";id=3,4"},
		{"matrix sequence exploded", Parameter{Key: "id", Value: []int{3, 4}, Style: StyleMatrix, Explode: true}, ";id=3;id=4"},
		{"space delimited", Parameter{Key: "k", Value: []string{"a", "b"}, Style: StyleSpaceDelimited}, "a%20b"},
		{"pipe delimited", Parameter{Key: "k", Value: []string{"a", "b"}, Style: StylePipeDelimited}, "a|b"},
		{"map", Header("X", map[string]int{"b": 2, "a": 1}), "a,1,b,2"},
		{"map exploded", Parameter{Key: "X", Value: map[string]int{"b": 2, "a": 1}, Explode: true}, "a=1,b=2"},
		{"nil", Header("X", nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializeValue(tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeValue_NestedCompositeFails(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"sequence of sequences", [][]string{{"a"}, {"b"}}},
		{"map of maps", map[string]map[string]int{"a": {"b": 1}}},
		{"struct", struct{ A int }{A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SerializeValue(Query("k", tt.value))
			assert.ErrorIs(t, err, ErrUnsupportedValue)
		})
	}
}

func TestSerializePath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   []Parameter
		want     string
	}{
		{
			name:     "single token",
			template: "/translate/{lang}",
			params:   []Parameter{Path("lang", "morse")},
			want:     "/translate/morse",
		},
		{
			name:     "encoded value",
			template: "/items/{id}",
			params:   []Parameter{Path("id", "abc def")},
			want:     "/items/abc%20def",
		},
		{
			name:     "only first occurrence replaced",
			template: "/a/{x}/{x}",
			params:   []Parameter{Path("x", "1")},
			want:     "/a/1/{x}",
		},
		{
			name:     "unmatched token left verbatim",
			template: "/a/{x}/{y}",
			params:   []Parameter{Path("x", "1")},
			want:     "/a/1/{y}",
		},
		{
			name:     "empty value removes token",
			template: "/a/{x}",
			params:   []Parameter{Path("x", "")},
			want:     "/a/",
		},
		{
			name:     "insertion order does not matter",
			template: "/{b}/{a}",
			params:   []Parameter{Path("a", "1"), Path("b", "2")},
			want:     "/2/1",
		},
		{
			name:     "positional parameter ignored",
			template: "/a/{x}",
			params:   []Parameter{{Value: "1"}},
			want:     "/a/{x}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializePath(tt.template, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializePath_NeverContainsLiteralSpace(t *testing.T) {
	got, err := SerializePath("/items/{id}", []Parameter{Path("id", "abc def")})
	require.NoError(t, err)
	assert.NotContains(t, got, " ")
	assert.Contains(t, got, "abc%20def")
}

func TestSerializeQuery(t *testing.T) {
	tests := []struct {
		name   string
		params []Parameter
		want   string
	}{
		{
			name:   "single",
			params: []Parameter{Query("text", "hi")},
			want:   "text=hi",
		},
		{
			name:   "empty and nil omitted",
			params: []Parameter{Query("a", ""), Query("b", nil), Query("c", "x"), Query("d", (*int)(nil))},
			want:   "c=x",
		},
		{
			name:   "exploded form sequence keeps order",
			params: []Parameter{Query("tags", []string{"a", "b"})},
			want:   "tags=a&tags=b",
		},
		{
			name:   "non exploded form sequence",
			params: []Parameter{{Key: "tags", Value: []string{"a", "b"}, Style: StyleForm, Encode: true}},
			want:   "tags=a,b",
		},
		{
			name:   "exploded form map",
			params: []Parameter{Query("point", map[string]int{"y": 2, "x": 1})},
			want:   "x=1&y=2",
		},
		{
			name:   "deep object",
			params: []Parameter{{Key: "filter", Value: map[string]string{"color": "red"}, Style: StyleDeepObject}},
			want:   "filter[color]=red",
		},
		{
			name:   "pipe delimited",
			params: []Parameter{{Key: "k", Value: []string{"a", "b"}, Style: StylePipeDelimited}},
			want:   "k=a|b",
		},
		{
			name:   "values and keys encoded",
			params: []Parameter{Query("the text", "hello world&more")},
			want:   "the%20text=hello%20world%26more",
		},
		{
			name:   "parameter order preserved",
			params: []Parameter{Query("text", "hi"), Query("speed", 5), Query("tone", 700)},
			want:   "text=hi&speed=5&tone=700",
		},
		{
			name: "none",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializeQuery(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeQuery_OmitsEmptyWithoutKeyArtifact(t *testing.T) {
	got, err := SerializeQuery([]Parameter{Query("text", ""), Query("other", nil)})
	require.NoError(t, err)
	assert.NotContains(t, got, "text=")
	assert.NotContains(t, got, "other=")
	assert.Empty(t, got)
}

func TestSerializeHeaders(t *testing.T) {
	h, err := SerializeHeaders([]Parameter{
		Header("x-api-key", "secret"),
		Header("Accept", ""),
		Header("X-Ids", []int{1, 2}),
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", h.Get("X-Api-Key"))
	assert.Equal(t, "1,2", h.Get("X-Ids"))
	_, hasAccept := h["Accept"]
	assert.False(t, hasAccept)
}

func TestSerializeHeaders_DuplicateIsError(t *testing.T) {
	_, err := SerializeHeaders([]Parameter{
		Header("X-Api-Key", "a"),
		Header("x-api-key", "b"),
	})
	assert.ErrorIs(t, err, ErrDuplicateHeader)
}

func TestIsEmpty(t *testing.T) {
	var nilPtr *string
	empty := ""
	value := "v"

	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(nilPtr))
	assert.True(t, IsEmpty(&empty))
	assert.False(t, IsEmpty(&value))
	assert.False(t, IsEmpty(0))
	assert.False(t, IsEmpty(false))
}
