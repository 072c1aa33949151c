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


// Package translate implements the translate command.
package translate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tombee/funtranslations/internal/commands/shared"
	"github.com/tombee/funtranslations/internal/jq"
	fterrors "github.com/tombee/funtranslations/pkg/errors"
	"github.com/tombee/funtranslations/pkg/funtranslations"
	"github.com/tombee/funtranslations/pkg/request"
)

type options struct {
	speed         float64
	tone          float64
	jqExpr        string
	raw           bool
	retryAttempts int
	retryDelay    time.Duration
}

// NewCommand creates the translate command
func NewCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "translate <dialect> [text...]",
		Short: "Translate text into a dialect",
		Long: `Translate text with one of the FunTranslations endpoints.

The dialect is a name such as "yoda", a service and method such as
"starwars.yoda", or an MCP tool name such as "get_translate_yoda".
Run 'funtranslations dialects' to list them.

Text is read from the remaining arguments, or from stdin when it is
piped.`,
		Example: `  funtranslations translate yoda "Master Obiwan has lost a planet."
  echo "hello" | funtranslations translate pirate
  funtranslations translate morse/audio SOS --speed 20 --tone 700
  funtranslations translate shakespeare "good morning" --jq .contents.translated`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().Float64Var(&opts.speed, "speed", 0, "Audio speed in words per minute (morse/audio)")
	cmd.Flags().Float64Var(&opts.tone, "tone", 0, "Audio tone frequency in Hz (morse/audio)")
	cmd.Flags().StringVar(&opts.jqExpr, "jq", "", "Filter the JSON reply with a jq expression")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print the undecoded reply body")
	cmd.Flags().IntVar(&opts.retryAttempts, "retry-attempts", 0, "Maximum attempts for this call")
	cmd.Flags().DurationVar(&opts.retryDelay, "retry-delay", 0, "Delay between attempts for this call")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	op, err := Resolve(args[0])
	if err != nil {
		return err
	}

	text, err := readText(cmd.InOrStdin(), args[1:])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, _, err := shared.NewClient(ctx)
	if err != nil {
		return err
	}

	callArgs := map[string]any{"text": text}
	if cmd.Flags().Changed("speed") {
		callArgs["speed"] = opts.speed
	}
	if cmd.Flags().Changed("tone") {
		callArgs["tone"] = opts.tone
	}

	resp, err := client.Invoke(ctx, op.Tool, callArgs, requestConfig(cmd, opts))
	if err != nil {
		return err
	}
	return render(ctx, cmd.OutOrStdout(), resp, opts)
}

// requestConfig builds the per-call overrides from the flags that were
// set explicitly.
func requestConfig(cmd *cobra.Command, opts options) *funtranslations.RequestConfig {
	var retry *request.RetryOverride
	if cmd.Flags().Changed("retry-attempts") || cmd.Flags().Changed("retry-delay") {
		retry = &request.RetryOverride{}
		if cmd.Flags().Changed("retry-attempts") {
			retry.Attempts = &opts.retryAttempts
		}
		if cmd.Flags().Changed("retry-delay") {
			retry.Delay = &opts.retryDelay
		}
	}
	if retry == nil {
		return nil
	}
	return &funtranslations.RequestConfig{Retry: retry}
}

// readText joins args, or reads stdin when no text argument is given and
// stdin is not a terminal.
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", &fterrors.UsageError{
			Message: "no text to translate",
			Hint:    "Pass the text as arguments or pipe it on stdin.",
		}
	}

	data, err := io.ReadAll(bufio.NewReader(stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", &fterrors.UsageError{
			Message: "no text to translate",
			Hint:    "Pass the text as arguments or pipe it on stdin.",
		}
	}
	return text, nil
}

func render(ctx context.Context, w io.Writer, resp *funtranslations.Response, opts options) error {
	switch {
	case opts.raw:
		_, err := w.Write(resp.Raw)
		return err

	case opts.jqExpr != "":
		out, err := jq.NewExecutor(0, 0).Execute(ctx, opts.jqExpr, resp.Data)
		if err != nil {
			return shared.NewUsageError("jq filter failed", err)
		}
		if s, ok := out.(string); ok {
			_, err := fmt.Fprintln(w, s)
			return err
		}
		return shared.EmitJSON(w, out)

	case shared.GetJSON():
		return shared.EmitJSON(w, resp.Data)
	}

	if translated := resp.Translated(); translated != "" {
		_, err := fmt.Fprintln(w, translated)
		return err
	}

	switch data := resp.Data.(type) {
	case string:
		_, err := fmt.Fprintln(w, data)
		return err
	case []byte:
		_, err := w.Write(data)
		return err
	default:
		return shared.EmitJSON(w, data)
	}
}
