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


// Package dialects implements the dialects command.
package dialects

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tombee/funtranslations/internal/commands/shared"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

// Dialect is the JSON form of one operation.
type Dialect struct {
	Name        string  `json:"name"`
	Tool        string  `json:"tool"`
	Service     string  `json:"service"`
	Path        string  `json:"path"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
}

// Param is the JSON form of one operation parameter.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Response is the JSON output of the dialects command.
type Response struct {
	shared.JSONResponse
	Dialects []Dialect `json:"dialects"`
}

// NewCommand creates the dialects command
func NewCommand() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:     "dialects",
		Aliases: []string{"list"},
		Short:   "List the available translations",
		Long: `List every translation endpoint grouped by service.

The name in the first column is accepted by 'funtranslations translate'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := filter(funtranslations.Operations(), service)
			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), toResponse(ops))
			}
			return printTable(cmd.OutOrStdout(), ops)
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "Only list dialects of this service, e.g. starwars")

	return cmd
}

func filter(ops []*funtranslations.Operation, service string) []*funtranslations.Operation {
	if service == "" {
		return ops
	}
	var out []*funtranslations.Operation
	for _, op := range ops {
		if strings.EqualFold(op.Service, service) {
			out = append(out, op)
		}
	}
	return out
}

func toResponse(ops []*funtranslations.Operation) Response {
	resp := Response{
		JSONResponse: shared.JSONResponse{Version: "1.0", Command: "dialects", Success: true},
		Dialects:     make([]Dialect, 0, len(ops)),
	}
	for _, op := range ops {
		d := Dialect{
			Name:        strings.TrimPrefix(op.Path, "/translate/"),
			Tool:        op.Tool,
			Service:     op.Service,
			Path:        op.Path,
			Description: op.Description,
		}
		for _, p := range op.Params {
			d.Params = append(d.Params, Param{Name: p.Name, Type: p.Type, Description: p.Description})
		}
		resp.Dialects = append(resp.Dialects, d)
	}
	return resp
}

func printTable(w io.Writer, ops []*funtranslations.Operation) error {
	title := cases.Title(language.English, cases.NoLower)

	width := 0
	for _, op := range ops {
		width = max(width, len(strings.TrimPrefix(op.Path, "/translate/")))
	}

	service := ""
	for _, op := range ops {
		if op.Service != service {
			if service != "" {
				fmt.Fprintln(w)
			}
			service = op.Service
			fmt.Fprintln(w, shared.Header.Render(title.String(service)))
		}
		name := strings.TrimPrefix(op.Path, "/translate/")
		fmt.Fprintf(w, "  %s  %s %s\n",
			shared.Bold.Render(fmt.Sprintf("%-*s", width, name)),
			op.Description,
			shared.RenderLabel("("+op.Tool+")"),
		)
	}
	return nil
}
