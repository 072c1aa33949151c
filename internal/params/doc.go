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


// Package params fills in missing tool parameters from the environment.
//
// An MCP client often omits parameters the operator wants fixed for every
// call, such as the text of a canned translation. Before a tool runs, the
// Resolver looks up each declared parameter that is missing or empty in a
// chain of Sources:
//
//   - MapSource: values given on the command line (highest priority)
//   - EnvSource: environment variables, under several naming conventions
//   - KeychainSource: the system keychain
//
// For a parameter named "apiKey", EnvSource tries apiKey, APIKEY, apikey,
// API_KEY, api-key and, for names already in kebab or snake case, their
// SNAKE_CASE and squashed lowercase forms. The first non-empty variable
// wins.
//
// After defaults are applied, parameters that are still empty are removed
// so they never reach the wire.
package params
