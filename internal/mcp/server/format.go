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


package server

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	fterrors "github.com/tombee/funtranslations/pkg/errors"
)

// formatSuccess renders objects and arrays as indented JSON and anything
// else as text.
func formatSuccess(data any) (*mcp.CallToolResult, error) {
	var text string
	switch v := data.(type) {
	case nil:
		text = ""
	case string:
		text = v
	case []byte:
		text = string(v)
	case map[string]any, []any:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("format result: %w", err)
		}
		text = string(b)
	default:
		text = fmt.Sprint(v)
	}
	return textResponse(text), nil
}

// formatError renders err as "Error: <message>" with the error flag set.
func formatError(err error) *mcp.CallToolResult {
	msg, _ := fterrors.Describe(err)
	return errorResponse("Error: " + msg)
}

func errorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}
