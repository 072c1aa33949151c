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


package funtranslations

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

// Param describes one query parameter of an Operation.
type Param struct {
	Name        string
	Type        string
	Description string
}

// Operation describes one API endpoint.
type Operation struct {
	// Name is "<service>.<method>", e.g. "starwars.yoda".
	Name string

	// Tool is the MCP tool name, e.g. "get_translate_yoda".
	Tool string

	Service     string
	Path        string
	Description string
	Params      []Param

	decode func(values map[string][]string) (queryParams, error)
}

var (
	textParams = []Param{
		{Name: "text", Type: "string", Description: "Text to translate"},
	}

	morseAudioParams = []Param{
		{Name: "text", Type: "string", Description: "Text to translate"},
		{Name: "speed", Type: "number", Description: "Audio Speed WordsMinute"},
		{Name: "tone", Type: "number", Description: "Audio Tone FrequencyHz"},
	}
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func decodeInto[T queryParams](values map[string][]string) (queryParams, error) {
	var p T
	if err := decoder.Decode(&p, values); err != nil {
		return nil, err
	}
	return p, nil
}

// translation declares a GET /translate/<path> endpoint taking text.
func translation(service, method, path, description string) *Operation {
	return &Operation{
		Name:        service + "." + method,
		Tool:        "get_translate_" + strings.ReplaceAll(path, "/", "_"),
		Service:     service,
		Path:        "/translate/" + path,
		Description: description,
		Params:      textParams,
		decode:      decodeInto[TranslateParams],
	}
}

var operations = []*Operation{
	opMorseTranslate, opMorseToEnglish, opMorseAudio,
	opBrailleTranslate, opBrailleDots, opBrailleUnicode, opBrailleImage, opBrailleHTML,
	opYoda, opSith, opCheunh, opGungan, opMandalorian, opHuttese,
	opVulcan, opKlingon,
	opSindarin, opQuenya,
	opPirate, opMinion, opFerbLatin, opChef, opDolan, opFudd,
	opValspeak, opJive, opCockney, opBrooklyn,
	opPigLatin,
	opDothraki, opValyrian,
	opOldEnglish, opShakespeare, opUS2UK, opUK2US,
	opErmahgerd,
}

var operationsByTool = func() map[string]*Operation {
	m := make(map[string]*Operation, len(operations))
	for _, op := range operations {
		m[op.Tool] = op
	}
	return m
}()

// Operations returns every endpoint in registration order.
func Operations() []*Operation {
	out := make([]*Operation, len(operations))
	copy(out, operations)
	return out
}

// LookupTool returns the operation exposed as the named MCP tool.
func LookupTool(tool string) (*Operation, bool) {
	op, ok := operationsByTool[tool]
	return op, ok
}

// Services returns the distinct service names, sorted.
func Services() []string {
	seen := make(map[string]bool)
	var out []string
	for _, op := range operations {
		if !seen[op.Service] {
			seen[op.Service] = true
			out = append(out, op.Service)
		}
	}
	sort.Strings(out)
	return out
}

// Invoke calls the operation exposed as tool with loosely typed arguments,
// as received from MCP or the command line. Nil and empty string values
// are dropped.
func (c *Client) Invoke(ctx context.Context, tool string, args map[string]any, rc *RequestConfig) (*Response, error) {
	op, ok := LookupTool(tool)
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", tool)
	}

	params, err := op.decode(argValues(args))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid parameters: %w", op.Tool, err)
	}
	return c.call(ctx, op, params, rc)
}

// argValues flattens args into the form gorilla/schema decodes.
func argValues(args map[string]any) map[string][]string {
	values := make(map[string][]string, len(args))
	for k, v := range args {
		var s string
		switch v := v.(type) {
		case nil:
			continue
		case string:
			s = v
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			s = fmt.Sprint(v)
		}
		if s == "" {
			continue
		}
		values[k] = []string{s}
	}
	return values
}
