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


/*
Package cli provides the root command of the funtranslations CLI.

# Command Tree

	funtranslations
	├── translate     Translate text into a dialect
	├── dialects      List the available translations
	├── mcp-server    Serve every translation as an MCP tool
	├── auth          Manage keychain credentials
	├── version       Show version
	└── help          Show help, optionally as JSON

# Usage

From main.go:

	cli.SetVersion(version, commit, date)
	rootCmd := cli.NewRootCommand()
	rootCmd.AddCommand(translate.NewCommand())
	if err := rootCmd.Execute(); err != nil {
	    cli.HandleExitError(err)
	}

# Global Flags

	--verbose, -v    Enable debug logging
	--quiet, -q      Suppress non-error output
	--json           Output in JSON format
	--config         Path to config file
	--base-url       Override the API base URL
	--api-key        API key sent with every request
	--no-validate    Skip response schema validation
*/
package cli
