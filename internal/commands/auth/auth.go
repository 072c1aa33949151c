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


// Package auth implements the auth command, which keeps API credentials
// in the system keychain.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tombee/funtranslations/internal/commands/shared"
	"github.com/tombee/funtranslations/internal/config"
	ftlog "github.com/tombee/funtranslations/internal/log"
	"github.com/tombee/funtranslations/internal/params"
	fterrors "github.com/tombee/funtranslations/pkg/errors"
)

func newKeychain() *params.KeychainSource {
	return params.NewKeychainSource(params.KeychainService)
}

// NewCommand creates the auth command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API credentials in the system keychain",
		Long: `Store, inspect and remove the FunTranslations credentials kept in the
system keychain (macOS Keychain, Linux Secret Service, Windows Credential
Manager).

Stored credentials are used when auth.use_keychain is enabled in the
configuration file and no token or API key is set elsewhere.`,
	}

	cmd.AddCommand(newSetCommand("set-token", config.KeychainToken, "bearer token"))
	cmd.AddCommand(newSetCommand("set-api-key", config.KeychainAPIKey, "API key"))
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newClearCommand())

	return cmd
}

func newSetCommand(use, entry, label string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [value]",
		Short: "Store the " + label,
		Long: fmt.Sprintf(`Store the %s in the system keychain.

The value can be passed as an argument, piped on stdin, or typed at a
hidden prompt.`, label),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 1 {
				value = args[0]
			} else {
				var err error
				value, err = readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Enter "+label+" (hidden): ")
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", label, err)
				}
			}
			value = strings.TrimSpace(value)
			if value == "" {
				return &fterrors.UsageError{Message: label + " cannot be empty"}
			}

			kc := newKeychain()
			if err := kc.Set(cmd.Context(), entry, value); err != nil {
				return keychainError(err)
			}

			if !shared.GetQuiet() {
				fmt.Fprintln(cmd.OutOrStdout(), shared.RenderOK("Stored "+label+" in the keychain"))
			}
			return nil
		},
	}
}

// Status is the JSON output of auth status.
type Status struct {
	shared.JSONResponse
	Available bool              `json:"available"`
	Entries   map[string]string `json:"entries"`
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which credentials are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kc := newKeychain()
			status := Status{
				JSONResponse: shared.JSONResponse{Version: "1.0", Command: "auth status", Success: true},
				Available:    kc.Available(),
				Entries:      map[string]string{},
			}

			if status.Available {
				for _, entry := range []string{config.KeychainToken, config.KeychainAPIKey} {
					v, err := kc.Lookup(cmd.Context(), entry)
					switch {
					case errors.Is(err, params.ErrNotFound):
						continue
					case err != nil:
						return keychainError(err)
					}
					status.Entries[entry] = ftlog.SanitizeSecret(v)
				}
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), status)
			}

			w := cmd.OutOrStdout()
			if !status.Available {
				fmt.Fprintln(w, shared.RenderWarn("System keychain is not available"))
				return nil
			}
			for _, entry := range []string{config.KeychainToken, config.KeychainAPIKey} {
				if v, ok := status.Entries[entry]; ok {
					fmt.Fprintf(w, "%s %s %s\n", shared.RenderOK(entry), shared.RenderLabel("="), v)
				} else {
					fmt.Fprintf(w, "%s %s\n", shared.RenderLabel(entry), shared.RenderLabel("(not set)"))
				}
			}
			return nil
		},
	}
}

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kc := newKeychain()
			removed := 0
			for _, entry := range []string{config.KeychainToken, config.KeychainAPIKey} {
				err := kc.Delete(cmd.Context(), entry)
				switch {
				case errors.Is(err, params.ErrNotFound):
					continue
				case err != nil:
					return keychainError(err)
				}
				removed++
			}

			if !shared.GetQuiet() {
				fmt.Fprintln(cmd.OutOrStdout(), shared.RenderOK(fmt.Sprintf("Removed %d credential(s)", removed)))
			}
			return nil
		},
	}
}

// readSecret reads a line from stdin when it is piped, or prompts with
// hidden input on a terminal.
func readSecret(stdin io.Reader, prompt io.Writer, label string) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

func keychainError(err error) error {
	if errors.Is(err, params.ErrSourceUnavailable) {
		return &fterrors.ConfigError{
			Key:    "auth.use_keychain",
			Reason: "system keychain is not available",
			Cause:  err,
		}
	}
	return err
}
